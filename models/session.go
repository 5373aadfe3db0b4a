package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Session is one login. The SID is embedded in the issued token so a
// session can be revoked server-side.
type Session struct {
	gorm.Model

	SID       string    `gorm:"size:36;uniqueIndex;not null" json:"sid"`
	UserID    uint      `gorm:"index" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	UserAgent string    `gorm:"size:255" json:"user_agent"`
	IPAddress string    `gorm:"size:64" json:"ip_address"`
	ExpiresAt time.Time `gorm:"index" json:"expires_at"`
}

func (s *Session) BeforeCreate(tx *gorm.DB) (err error) {
	if s.SID == "" {
		s.SID = strings.ToLower(uuid.New().String())
	}
	return nil
}
