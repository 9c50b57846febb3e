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

type FoodService interface {
	Create(ctx context.Context, db *gorm.DB, restaurantID uint, req *dto.CreateFoodRequest, image *multipart.FileHeader) (*models.Food, error)
	Update(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdateFoodRequest) (*models.Food, error)
	UpdateImage(ctx context.Context, db *gorm.DB, id uint, image *multipart.FileHeader) (*models.Food, error)
	GetByID(ctx context.Context, db *gorm.DB, id uint) (*models.Food, error)
	Delete(ctx context.Context, db *gorm.DB, id uint) error
	List(ctx context.Context, db *gorm.DB, restaurantID uint, kind string, page, pageSize int) (*dto.FoodListResponse, error)
}

type FoodServiceImpl struct {
	foods       repositories.FoodRepository
	restaurants repositories.RestaurantRepository
	storage     storage.Storage
}

func NewFoodService(foods repositories.FoodRepository, restaurants repositories.RestaurantRepository, store storage.Storage) FoodService {
	return &FoodServiceImpl{foods: foods, restaurants: restaurants, storage: store}
}

func (s *FoodServiceImpl) Create(ctx context.Context, db *gorm.DB, restaurantID uint, req *dto.CreateFoodRequest, image *multipart.FileHeader) (*models.Food, error) {
	if _, err := s.restaurants.FindByID(db, restaurantID); err != nil {
		if apperrors.Is(err, repositories.ErrRestaurantNotFound) {
			return nil, apperrors.ErrNotFound(err, "restaurant", "Restaurant not found")
		}
		return nil, apperrors.InternalError(err)
	}

	food := &models.Food{
		Name:         req.Name,
		Kind:         req.Kind,
		Price:        req.Price,
		CookTime:     req.CookTime,
		Description:  req.Description,
		Rating:       req.Rating,
		RestaurantID: restaurantID,
	}

	if image != nil {
		path, err := saveImage(s.storage, storage.CategoryFood, image)
		if err != nil {
			return nil, err
		}
		food.Image = path
	}

	if err := s.foods.Create(db, food); err != nil {
		if food.Image != "" {
			if delErr := s.storage.Delete(food.Image); delErr != nil {
				logger.CtxWarn(ctx, "failed to remove orphaned image", "path", food.Image, "error", delErr)
			}
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "food created", "food_id", food.ID, "restaurant_id", food.RestaurantID)
	return food, nil
}

func (s *FoodServiceImpl) Update(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdateFoodRequest) (*models.Food, error) {
	food, err := s.GetByID(ctx, db, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		food.Name = *req.Name
	}
	if req.Kind != nil {
		food.Kind = *req.Kind
	}
	if req.Price != nil {
		food.Price = *req.Price
	}
	if req.CookTime != nil {
		food.CookTime = *req.CookTime
	}
	if req.Description != nil {
		food.Description = *req.Description
	}
	if req.Rating != nil {
		food.Rating = *req.Rating
	}

	if err := s.foods.Update(db, food); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "food updated", "food_id", food.ID)
	return food, nil
}

// UpdateImage replaces the stored image file. The new file is written
// first; the old one is removed only after the row commit succeeds.
func (s *FoodServiceImpl) UpdateImage(ctx context.Context, db *gorm.DB, id uint, image *multipart.FileHeader) (*models.Food, error) {
	food, err := s.GetByID(ctx, db, id)
	if err != nil {
		return nil, err
	}

	path, err := saveImage(s.storage, storage.CategoryFood, image)
	if err != nil {
		return nil, err
	}

	oldImage := food.Image
	food.Image = path

	if err := s.foods.Update(db, food); err != nil {
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

	logger.CtxInfo(ctx, "food image updated", "food_id", food.ID)
	return food, nil
}

func (s *FoodServiceImpl) GetByID(ctx context.Context, db *gorm.DB, id uint) (*models.Food, error) {
	food, err := s.foods.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrFoodNotFound) {
			return nil, apperrors.ErrNotFound(err, "food", "Food not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return food, nil
}

func (s *FoodServiceImpl) Delete(ctx context.Context, db *gorm.DB, id uint) error {
	food, err := s.GetByID(ctx, db, id)
	if err != nil {
		return err
	}

	if err := s.foods.Delete(db, id); err != nil {
		return apperrors.InternalError(err)
	}

	if food.Image != "" {
		if err := s.storage.Delete(food.Image); err != nil {
			logger.CtxWarn(ctx, "failed to remove image", "path", food.Image, "error", err)
		}
	}

	logger.CtxInfo(ctx, "food deleted", "food_id", id)
	return nil
}

func (s *FoodServiceImpl) List(ctx context.Context, db *gorm.DB, restaurantID uint, kind string, page, pageSize int) (*dto.FoodListResponse, error) {
	total, err := s.foods.Count(db, restaurantID, kind)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	window := paging.Paginate(total, page, pageSize)
	foods, err := s.foods.FindPage(db, restaurantID, kind, window.PageSize, window.Offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if foods == nil {
		foods = []models.Food{}
	}

	return &dto.FoodListResponse{
		Foods: foods,
		Meta: dto.PageMeta{
			Page:       window.Page,
			PageSize:   window.PageSize,
			TotalPages: window.TotalPages,
			TotalCount: total,
		},
	}, nil
}
