package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"dicebet/apperr"
	"dicebet/helpers"
	"dicebet/models"
)

// AuthService handles login. A login either fully succeeds (user row, bonus
// ledger entry, session row) or leaves nothing behind.
type AuthService struct {
	db       *gorm.DB
	secret   string
	tokenTTL time.Duration
}

func NewAuthService(db *gorm.DB, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{db: db, secret: secret, tokenTTL: tokenTTL}
}

type LoginResult struct {
	User          *models.User
	Wallet        *models.Wallet
	WalletCreated bool
	Token         string
	ExpiresAt     time.Time
}

// Login finds the user by email, creating the account on first sight, and
// rejects a wrong password for an existing account. The login bonus and the
// session row are written in the same transaction.
func (s *AuthService) Login(ctx context.Context, email, password, userAgent, ipAddress string) (*LoginResult, error) {
	var result LoginResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		err := tx.Where("email = ?", email).First(&user).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			user = models.User{Email: email, Password: password, IsActive: true}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			if !user.CheckPassword(password) {
				return apperr.New(apperr.KindUnauthorized, "INVALID_CREDENTIALS")
			}
		}

		bonus, err := applyLoginBonus(tx, user.ID)
		if err != nil {
			return err
		}

		session := models.Session{
			UserID:    user.ID,
			UserAgent: userAgent,
			IPAddress: ipAddress,
			ExpiresAt: time.Now().Add(s.tokenTTL),
		}
		if err := tx.Create(&session).Error; err != nil {
			return err
		}

		token, expiresAt, err := helpers.GenerateToken(s.secret, user.ID, session.SID, s.tokenTTL)
		if err != nil {
			return err
		}

		result = LoginResult{
			User:          &user,
			Wallet:        bonus.Wallet,
			WalletCreated: bonus.WalletCreated,
			Token:         token,
			ExpiresAt:     expiresAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
