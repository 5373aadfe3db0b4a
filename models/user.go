package models

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model

	Email    string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	Wallet *Wallet `gorm:"foreignKey:UserID" json:"wallet,omitempty"`
	Bets   []Bet   `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeSave hashes the password whenever it changes. A bcrypt hash always
// starts with "$2", so an already-hashed value is left alone.
func (u *User) BeforeSave(tx *gorm.DB) error {
	if u.Password == "" || len(u.Password) >= 2 && u.Password[:2] == "$2" {
		return nil
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

// CheckPassword compares a plaintext candidate against the stored hash.
func (u *User) CheckPassword(candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(candidate)) == nil
}
