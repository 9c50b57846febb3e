package services

import (
	"context"
	"mime/multipart"

	"niddle_backend/internal/logger"
	"niddle_backend/internal/models"
	"niddle_backend/internal/repositories"
	"niddle_backend/internal/services/dto"
	"niddle_backend/internal/storage"
	"niddle_backend/pkg/apperrors"
	"niddle_backend/pkg/paging"

	"gorm.io/gorm"
)

type RestaurantService interface {
	Create(ctx context.Context, db *gorm.DB, req *dto.CreateRestaurantRequest, logo, background *multipart.FileHeader) (*models.Restaurant, error)
	Update(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdateRestaurantRequest) (*models.Restaurant, error)
	UpdateLogo(ctx context.Context, db *gorm.DB, id uint, image *multipart.FileHeader) (*models.Restaurant, error)
	UpdateBackground(ctx context.Context, db *gorm.DB, id uint, image *multipart.FileHeader) (*models.Restaurant, error)
	GetByID(ctx context.Context, db *gorm.DB, id uint) (*models.Restaurant, error)
	Delete(ctx context.Context, db *gorm.DB, id uint) error
	List(ctx context.Context, db *gorm.DB, page, pageSize int) (*dto.RestaurantListResponse, error)
	AddWorkTime(ctx context.Context, db *gorm.DB, id uint, req *dto.WorkTimeRequest) (*models.WorkTime, error)
}

type RestaurantServiceImpl struct {
	restaurants repositories.RestaurantRepository
	storage     storage.Storage
}

func NewRestaurantService(restaurants repositories.RestaurantRepository, store storage.Storage) RestaurantService {
	return &RestaurantServiceImpl{restaurants: restaurants, storage: store}
}

// Create stores the restaurant with its logo and background images.
// Files are written before the row is committed; a failed commit removes
// them again.
func (s *RestaurantServiceImpl) Create(ctx context.Context, db *gorm.DB, req *dto.CreateRestaurantRequest, logo, background *multipart.FileHeader) (*models.Restaurant, error) {
	restaurant := &models.Restaurant{
		Name:        req.Name,
		Kind:        req.Kind,
		Description: req.Description,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		Rating:      req.Rating,
	}

	var saved []string
	cleanup := func() {
		for _, path := range saved {
			if err := s.storage.Delete(path); err != nil {
				logger.CtxWarn(ctx, "failed to remove orphaned image", "path", path, "error", err)
			}
		}
	}

	if logo != nil {
		path, err := saveImage(s.storage, storage.CategoryLogo, logo)
		if err != nil {
			return nil, err
		}
		saved = append(saved, path)
		restaurant.Logo = path
	}
	if background != nil {
		path, err := saveImage(s.storage, storage.CategoryBackground, background)
		if err != nil {
			cleanup()
			return nil, err
		}
		saved = append(saved, path)
		restaurant.BackgroundImage = path
	}

	if err := s.restaurants.Create(db, restaurant); err != nil {
		cleanup()
		if apperrors.Is(err, repositories.ErrRestaurantEmailTaken) {
			return nil, apperrors.ErrConflict(err, "restaurant", "Restaurant email already exists")
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "restaurant created", "restaurant_id", restaurant.ID)
	return restaurant, nil
}

func (s *RestaurantServiceImpl) Update(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdateRestaurantRequest) (*models.Restaurant, error) {
	restaurant, err := s.GetByID(ctx, db, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		restaurant.Name = *req.Name
	}
	if req.Kind != nil {
		restaurant.Kind = *req.Kind
	}
	if req.Description != nil {
		restaurant.Description = *req.Description
	}
	if req.Email != nil {
		restaurant.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		restaurant.PhoneNumber = *req.PhoneNumber
	}
	if req.Address != nil {
		restaurant.Address = *req.Address
	}
	if req.Rating != nil {
		restaurant.Rating = *req.Rating
	}

	if err := s.restaurants.Update(db, restaurant); err != nil {
		if apperrors.Is(err, repositories.ErrRestaurantEmailTaken) {
			return nil, apperrors.ErrConflict(err, "restaurant", "Restaurant email already exists")
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "restaurant updated", "restaurant_id", restaurant.ID)
	return restaurant, nil
}

// UpdateLogo replaces the logo file, removing the old one only after the
// row commit succeeds.
func (s *RestaurantServiceImpl) UpdateLogo(ctx context.Context, db *gorm.DB, id uint, image *multipart.FileHeader) (*models.Restaurant, error) {
	return s.replaceImage(ctx, db, id, storage.CategoryLogo, image)
}

// UpdateBackground replaces the background image with the same contract
// as UpdateLogo.
func (s *RestaurantServiceImpl) UpdateBackground(ctx context.Context, db *gorm.DB, id uint, image *multipart.FileHeader) (*models.Restaurant, error) {
	return s.replaceImage(ctx, db, id, storage.CategoryBackground, image)
}

func (s *RestaurantServiceImpl) replaceImage(ctx context.Context, db *gorm.DB, id uint, category string, image *multipart.FileHeader) (*models.Restaurant, error) {
	restaurant, err := s.GetByID(ctx, db, id)
	if err != nil {
		return nil, err
	}

	path, err := saveImage(s.storage, category, image)
	if err != nil {
		return nil, err
	}

	var oldImage string
	switch category {
	case storage.CategoryLogo:
		oldImage = restaurant.Logo
		restaurant.Logo = path
	case storage.CategoryBackground:
		oldImage = restaurant.BackgroundImage
		restaurant.BackgroundImage = path
	}

	if err := s.restaurants.Update(db, restaurant); err != nil {
		if delErr := s.storage.Delete(path); delErr != nil {
			logger.CtxWarn(ctx, "failed to remove orphaned image", "path", path, "error", delErr)
		}
		return nil, apperrors.InternalError(err)
	}

	if oldImage != "" {
		if err := s.storage.Delete(oldImage); err != nil {
			logger.CtxWarn(ctx, "failed to remove replaced image", "path", oldImage, "error", err)
		}
	}

	logger.CtxInfo(ctx, "restaurant image updated", "restaurant_id", restaurant.ID, "category", category)
	return restaurant, nil
}

func (s *RestaurantServiceImpl) GetByID(ctx context.Context, db *gorm.DB, id uint) (*models.Restaurant, error) {
	restaurant, err := s.restaurants.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRestaurantNotFound) {
			return nil, apperrors.ErrNotFound(err, "restaurant", "Restaurant not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return restaurant, nil
}

func (s *RestaurantServiceImpl) Delete(ctx context.Context, db *gorm.DB, id uint) error {
	restaurant, err := s.GetByID(ctx, db, id)
	if err != nil {
		return err
	}

	if err := s.restaurants.Delete(db, id); err != nil {
		return apperrors.InternalError(err)
	}

	for _, path := range []string{restaurant.Logo, restaurant.BackgroundImage} {
		if path == "" {
			continue
		}
		if err := s.storage.Delete(path); err != nil {
			logger.CtxWarn(ctx, "failed to remove image", "path", path, "error", err)
		}
	}

	logger.CtxInfo(ctx, "restaurant deleted", "restaurant_id", id)
	return nil
}

func (s *RestaurantServiceImpl) List(ctx context.Context, db *gorm.DB, page, pageSize int) (*dto.RestaurantListResponse, error) {
	total, err := s.restaurants.CountAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	window := paging.Paginate(total, page, pageSize)
	restaurants, err := s.restaurants.FindPage(db, window.PageSize, window.Offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if restaurants == nil {
		restaurants = []models.Restaurant{}
	}

	return &dto.RestaurantListResponse{
		Restaurants: restaurants,
		Meta: dto.PageMeta{
			Page:       window.Page,
			PageSize:   window.PageSize,
			TotalPages: window.TotalPages,
			TotalCount: total,
		},
	}, nil
}

func (s *RestaurantServiceImpl) AddWorkTime(ctx context.Context, db *gorm.DB, id uint, req *dto.WorkTimeRequest) (*models.WorkTime, error) {
	if _, err := s.GetByID(ctx, db, id); err != nil {
		return nil, err
	}

	workTime := &models.WorkTime{
		DayOfWeek:    req.DayOfWeek,
		OpeningTime:  req.OpeningTime,
		ClosingTime:  req.ClosingTime,
		RestaurantID: id,
	}
	if err := db.Create(workTime).Error; err != nil {
		return nil, apperrors.InternalError(err)
	}
	return workTime, nil
}

// saveImage writes an upload under the given category and returns the
// stored path.
func saveImage(store storage.Storage, category string, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", apperrors.NewBadRequestError("Cannot read uploaded file")
	}
	defer src.Close()

	path := storage.ImageFilename(category, file.Filename)
	if err := store.Save(path, src); err != nil {
		return "", apperrors.StorageError(err)
	}
	return path, nil
}
