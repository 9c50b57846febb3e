package services

import (
	"context"

	"niddle_backend/internal/logger"
	"niddle_backend/internal/models"
	"niddle_backend/internal/repositories"
	"niddle_backend/internal/services/dto"
	"niddle_backend/internal/storage"
	"niddle_backend/pkg/apperrors"
	"niddle_backend/pkg/paging"

	"gorm.io/gorm"
)

type UserService interface {
	GetByID(ctx context.Context, db *gorm.DB, id uint) (*models.User, error)
	Delete(ctx context.Context, db *gorm.DB, id uint) error
	List(ctx context.Context, db *gorm.DB, page, pageSize int) (*dto.UserListResponse, error)
}

type UserServiceImpl struct {
	users   repositories.UserRepository
	storage storage.Storage
}

func NewUserService(users repositories.UserRepository, store storage.Storage) UserService {
	return &UserServiceImpl{users: users, storage: store}
}

func (s *UserServiceImpl) GetByID(ctx context.Context, db *gorm.DB, id uint) (*models.User, error) {
	user, err := s.users.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// Delete removes the account and its owned rows. The profile image file
// is deleted only after the commit succeeds.
func (s *UserServiceImpl) Delete(ctx context.Context, db *gorm.DB, id uint) error {
	user, err := s.users.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	if err := s.users.Delete(db, id); err != nil {
		return apperrors.InternalError(err)
	}

	if user.ProfileImage != "" && user.ProfileImage != storage.DefaultAvatar {
		if err := s.storage.Delete(user.ProfileImage); err != nil {
			logger.CtxWarn(ctx, "failed to remove profile image", "path", user.ProfileImage, "error", err)
		}
	}

	logger.CtxInfo(ctx, "user deleted", "user_id", id)
	return nil
}

func (s *UserServiceImpl) List(ctx context.Context, db *gorm.DB, page, pageSize int) (*dto.UserListResponse, error) {
	total, err := s.users.CountAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	window := paging.Paginate(total, page, pageSize)
	users, err := s.users.FindPage(db, window.PageSize, window.Offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.UserListResponse{
		Users: make([]dto.UserResponse, 0, len(users)),
		Meta: dto.PageMeta{
			Page:       window.Page,
			PageSize:   window.PageSize,
			TotalPages: window.TotalPages,
			TotalCount: total,
		},
	}
	for i := range users {
		resp.Users = append(resp.Users, dto.NewUserResponse(&users[i]))
	}
	return resp, nil
}
