package services

import (
	"context"
	"mime/multipart"

	"niddle_backend/internal/auth"
	"niddle_backend/internal/email"
	"niddle_backend/internal/logger"
	"niddle_backend/internal/models"
	"niddle_backend/internal/repositories"
	"niddle_backend/internal/services/dto"
	"niddle_backend/internal/storage"
	"niddle_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, db *gorm.DB, req *dto.RegisterRequest, image *multipart.FileHeader) (*models.User, error)
	Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	VerifyEmail(ctx context.Context, db *gorm.DB, email string) error
}

type AuthServiceImpl struct {
	users   repositories.UserRepository
	storage storage.Storage
	mailer  email.Provider
}

func NewAuthService(users repositories.UserRepository, store storage.Storage, mailer email.Provider) AuthService {
	return &AuthServiceImpl{users: users, storage: store, mailer: mailer}
}

// Register creates an unverified account and sends the confirmation
// link. The profile image, when present, is written to storage before
// the row is committed; a failed commit removes the file again.
func (s *AuthServiceImpl) Register(ctx context.Context, db *gorm.DB, req *dto.RegisterRequest, image *multipart.FileHeader) (*models.User, error) {
	if req.Password != req.ConfirmPassword {
		return nil, apperrors.ErrPasswordMismatch
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	profileImage := storage.DefaultAvatar
	if image != nil {
		path, err := s.saveUpload(image)
		if err != nil {
			return nil, err
		}
		profileImage = path
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		Password:     hashed,
		PhoneNumber:  req.PhoneNumber,
		Address:      req.Address,
		ProfileImage: profileImage,
		Status:       false,
	}

	if err := s.users.Create(db, user); err != nil {
		if profileImage != storage.DefaultAvatar {
			if delErr := s.storage.Delete(profileImage); delErr != nil {
				logger.CtxWarn(ctx, "failed to remove orphaned profile image", "path", profileImage, "error", delErr)
			}
		}
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.mailer.SendVerification(user.Email); err != nil {
		// The account stays usable; the user can request another link.
		logger.CtxWarn(ctx, "failed to send verification mail", "email", user.Email, "error", err)
	}

	logger.CtxInfo(ctx, "user registered", "user_id", user.ID)
	return user, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if !user.Status {
		return nil, apperrors.ErrUserNotVerified
	}

	if !auth.CheckPasswordHash(req.Password, user.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "user logged in", "user_id", user.ID)
	return &dto.AuthResponse{
		AccessToken: token,
		User:        dto.NewUserResponse(user),
	}, nil
}

func (s *AuthServiceImpl) VerifyEmail(ctx context.Context, db *gorm.DB, address string) error {
	if err := s.users.Verify(db, address); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "email verified", "email", address)
	return nil
}

func (s *AuthServiceImpl) saveUpload(image *multipart.FileHeader) (string, error) {
	src, err := image.Open()
	if err != nil {
		return "", apperrors.NewBadRequestError("Cannot read uploaded file")
	}
	defer src.Close()

	path := storage.ImageFilename(storage.CategoryProfileImage, image.Filename)
	if err := s.storage.Save(path, src); err != nil {
		return "", apperrors.StorageError(err)
	}
	return path, nil
}
