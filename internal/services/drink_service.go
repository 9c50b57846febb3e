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

type DrinkService interface {
	Create(ctx context.Context, db *gorm.DB, restaurantID uint, req *dto.CreateDrinkRequest, image *multipart.FileHeader) (*models.Drink, error)
	Update(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdateDrinkRequest) (*models.Drink, error)
	UpdateImage(ctx context.Context, db *gorm.DB, id uint, image *multipart.FileHeader) (*models.Drink, error)
	GetByID(ctx context.Context, db *gorm.DB, id uint) (*models.Drink, error)
	Delete(ctx context.Context, db *gorm.DB, id uint) error
	List(ctx context.Context, db *gorm.DB, restaurantID uint, kind string, page, pageSize int) (*dto.DrinkListResponse, error)
}

type DrinkServiceImpl struct {
	drinks      repositories.DrinkRepository
	restaurants repositories.RestaurantRepository
	storage     storage.Storage
}

func NewDrinkService(drinks repositories.DrinkRepository, restaurants repositories.RestaurantRepository, store storage.Storage) DrinkService {
	return &DrinkServiceImpl{drinks: drinks, restaurants: restaurants, storage: store}
}

func (s *DrinkServiceImpl) Create(ctx context.Context, db *gorm.DB, restaurantID uint, req *dto.CreateDrinkRequest, image *multipart.FileHeader) (*models.Drink, error) {
	if _, err := s.restaurants.FindByID(db, restaurantID); err != nil {
		if apperrors.Is(err, repositories.ErrRestaurantNotFound) {
			return nil, apperrors.ErrNotFound(err, "restaurant", "Restaurant not found")
		}
		return nil, apperrors.InternalError(err)
	}

	drink := &models.Drink{
		Name:         req.Name,
		Kind:         req.Kind,
		Price:        req.Price,
		Description:  req.Description,
		Rating:       req.Rating,
		RestaurantID: restaurantID,
	}

	if image != nil {
		path, err := saveImage(s.storage, storage.CategoryDrink, image)
		if err != nil {
			return nil, err
		}
		drink.Image = path
	}

	if err := s.drinks.Create(db, drink); err != nil {
		if drink.Image != "" {
			if delErr := s.storage.Delete(drink.Image); delErr != nil {
				logger.CtxWarn(ctx, "failed to remove orphaned image", "path", drink.Image, "error", delErr)
			}
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "drink created", "drink_id", drink.ID, "restaurant_id", drink.RestaurantID)
	return drink, nil
}

func (s *DrinkServiceImpl) Update(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdateDrinkRequest) (*models.Drink, error) {
	drink, err := s.GetByID(ctx, db, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		drink.Name = *req.Name
	}
	if req.Kind != nil {
		drink.Kind = *req.Kind
	}
	if req.Price != nil {
		drink.Price = *req.Price
	}
	if req.Description != nil {
		drink.Description = *req.Description
	}
	if req.Rating != nil {
		drink.Rating = *req.Rating
	}

	if err := s.drinks.Update(db, drink); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "drink updated", "drink_id", drink.ID)
	return drink, nil
}

// UpdateImage replaces the stored image file, removing the old one only
// after the row commit succeeds.
func (s *DrinkServiceImpl) UpdateImage(ctx context.Context, db *gorm.DB, id uint, image *multipart.FileHeader) (*models.Drink, error) {
	drink, err := s.GetByID(ctx, db, id)
	if err != nil {
		return nil, err
	}

	path, err := saveImage(s.storage, storage.CategoryDrink, image)
	if err != nil {
		return nil, err
	}

	oldImage := drink.Image
	drink.Image = path

	if err := s.drinks.Update(db, drink); err != nil {
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

	logger.CtxInfo(ctx, "drink image updated", "drink_id", drink.ID)
	return drink, nil
}

func (s *DrinkServiceImpl) GetByID(ctx context.Context, db *gorm.DB, id uint) (*models.Drink, error) {
	drink, err := s.drinks.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrDrinkNotFound) {
			return nil, apperrors.ErrNotFound(err, "drink", "Drink not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return drink, nil
}

func (s *DrinkServiceImpl) Delete(ctx context.Context, db *gorm.DB, id uint) error {
	drink, err := s.GetByID(ctx, db, id)
	if err != nil {
		return err
	}

	if err := s.drinks.Delete(db, id); err != nil {
		return apperrors.InternalError(err)
	}

	if drink.Image != "" {
		if err := s.storage.Delete(drink.Image); err != nil {
			logger.CtxWarn(ctx, "failed to remove image", "path", drink.Image, "error", err)
		}
	}

	logger.CtxInfo(ctx, "drink deleted", "drink_id", id)
	return nil
}

// List filters by a single kind query value. The carbonation and alcohol
// axes are independent, so "carbonated" does not exclude alcoholic rows.
func (s *DrinkServiceImpl) List(ctx context.Context, db *gorm.DB, restaurantID uint, kind string, page, pageSize int) (*dto.DrinkListResponse, error) {
	var kinds []string
	if kind != "" {
		kinds = []string{kind}
	}

	total, err := s.drinks.Count(db, restaurantID, kinds)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	window := paging.Paginate(total, page, pageSize)
	drinks, err := s.drinks.FindPage(db, restaurantID, kinds, window.PageSize, window.Offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if drinks == nil {
		drinks = []models.Drink{}
	}

	return &dto.DrinkListResponse{
		Drinks: drinks,
		Meta: dto.PageMeta{
			Page:       window.Page,
			PageSize:   window.PageSize,
			TotalPages: window.TotalPages,
			TotalCount: total,
		},
	}, nil
}
