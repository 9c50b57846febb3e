package services

import (
	"context"
	"crypto/rand"
	"math/big"

	"niddle_backend/internal/auth"
	"niddle_backend/internal/email"
	"niddle_backend/internal/logger"
	"niddle_backend/internal/models"
	"niddle_backend/internal/repositories"
	"niddle_backend/internal/services/dto"
	"niddle_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// Reset codes are drawn from [99999, 1000000].
// TODO: tighten the bounds to [100000, 999999] so codes are always six
// digits; the mobile client currently accepts 5-7 digit input so this is
// not urgent.
const (
	resetCodeMin = 99999
	resetCodeMax = 1000000
)

type PasswordResetService interface {
	Request(ctx context.Context, db *gorm.DB, email string) error
	Reset(ctx context.Context, db *gorm.DB, req *dto.PasswordResetRequest) error
}

type PasswordResetServiceImpl struct {
	users  repositories.UserRepository
	resets repositories.PasswordResetRepository
	mailer email.Provider
}

func NewPasswordResetService(users repositories.UserRepository, resets repositories.PasswordResetRepository, mailer email.Provider) PasswordResetService {
	return &PasswordResetServiceImpl{users: users, resets: resets, mailer: mailer}
}

// Request issues a fresh reset code for the account behind the address.
// The mail goes out before the old code is touched: a failed delivery
// leaves the previous code live. Once mailed, any earlier code is
// discarded in the same transaction that stores the new one, so exactly
// one code is live per user. Nothing is mailed when the address is
// unknown.
func (s *PasswordResetServiceImpl) Request(ctx context.Context, db *gorm.DB, address string) error {
	user, err := s.users.FindByEmail(db, address)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	code, err := generateResetCode()
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.mailer.SendResetCode(user.Email, code); err != nil {
		return apperrors.MailError(err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.resets.DeleteByUser(tx, user.ID); err != nil {
			return err
		}
		return s.resets.Create(tx, &models.PasswordReset{UserID: user.ID, Code: code})
	})
	if err != nil {
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "password reset requested", "user_id", user.ID)
	return nil
}

// Reset consumes a code and replaces the password. The password pair is
// checked before any lookup; the password update and the code deletion
// commit together, so a code can never be spent without the new password
// taking effect.
func (s *PasswordResetServiceImpl) Reset(ctx context.Context, db *gorm.DB, req *dto.PasswordResetRequest) error {
	if req.Password != req.ConfirmPassword {
		return apperrors.ErrPasswordMismatch
	}

	user, err := s.users.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	reset, err := s.resets.FindByUser(db, user.ID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrResetNotFound) {
			return apperrors.ErrResetNotFound
		}
		return apperrors.InternalError(err)
	}

	if reset.Code != req.Code {
		return apperrors.ErrInvalidCode
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperrors.InternalError(err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.users.UpdatePassword(tx, user.ID, hashed); err != nil {
			return err
		}
		return s.resets.Delete(tx, reset.ID)
	})
	if err != nil {
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "password reset completed", "user_id", user.ID)
	return nil
}

func generateResetCode() (int, error) {
	span := int64(resetCodeMax - resetCodeMin + 1)
	n, err := rand.Int(rand.Reader, big.NewInt(span))
	if err != nil {
		return 0, err
	}
	return resetCodeMin + int(n.Int64()), nil
}
