package services

import (
	"context"

	"niddle_backend/internal/logger"
	"niddle_backend/internal/models"
	"niddle_backend/internal/repositories"
	"niddle_backend/internal/services/dto"
	"niddle_backend/pkg/apperrors"
	"niddle_backend/pkg/paging"

	"gorm.io/gorm"
)

type FavoriteService interface {
	AddFood(ctx context.Context, db *gorm.DB, userID, foodID uint) (bool, error)
	RemoveFood(ctx context.Context, db *gorm.DB, userID, foodID uint) error
	ListFood(ctx context.Context, db *gorm.DB, userID uint, page, pageSize int) (*dto.FavoriteFoodListResponse, error)

	AddRestaurant(ctx context.Context, db *gorm.DB, userID, restaurantID uint) (bool, error)
	RemoveRestaurant(ctx context.Context, db *gorm.DB, userID, restaurantID uint) error
	ListRestaurants(ctx context.Context, db *gorm.DB, userID uint, page, pageSize int) (*dto.FavoriteRestaurantListResponse, error)
}

type FavoriteServiceImpl struct {
	favorites   repositories.FavoriteRepository
	foods       repositories.FoodRepository
	restaurants repositories.RestaurantRepository
}

func NewFavoriteService(favorites repositories.FavoriteRepository, foods repositories.FoodRepository, restaurants repositories.RestaurantRepository) FavoriteService {
	return &FavoriteServiceImpl{favorites: favorites, foods: foods, restaurants: restaurants}
}

// AddFood bookmarks a food. Bookmarking the same food twice is a no-op;
// the false return tells the handler the row already existed.
func (s *FavoriteServiceImpl) AddFood(ctx context.Context, db *gorm.DB, userID, foodID uint) (bool, error) {
	if _, err := s.foods.FindByID(db, foodID); err != nil {
		if apperrors.Is(err, repositories.ErrFoodNotFound) {
			return false, apperrors.ErrNotFound(err, "food", "Food not found")
		}
		return false, apperrors.InternalError(err)
	}

	if _, err := s.favorites.FindFood(db, userID, foodID); err == nil {
		return false, nil
	} else if !apperrors.Is(err, repositories.ErrFavoriteNotFound) {
		return false, apperrors.InternalError(err)
	}

	if err := s.favorites.CreateFood(db, &models.FavoriteFood{UserID: userID, FoodID: foodID}); err != nil {
		return false, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "favorite food added", "user_id", userID, "food_id", foodID)
	return true, nil
}

func (s *FavoriteServiceImpl) RemoveFood(ctx context.Context, db *gorm.DB, userID, foodID uint) error {
	if err := s.favorites.DeleteFood(db, userID, foodID); err != nil {
		if apperrors.Is(err, repositories.ErrFavoriteNotFound) {
			return apperrors.ErrNotFound(err, "favorite", "Favorite not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *FavoriteServiceImpl) ListFood(ctx context.Context, db *gorm.DB, userID uint, page, pageSize int) (*dto.FavoriteFoodListResponse, error) {
	total, err := s.favorites.CountFood(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	window := paging.Paginate(total, page, pageSize)
	favs, err := s.favorites.FindFoodPage(db, userID, window.PageSize, window.Offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	foods := make([]models.Food, 0, len(favs))
	for i := range favs {
		foods = append(foods, favs[i].Food)
	}

	return &dto.FavoriteFoodListResponse{
		Foods: foods,
		Meta: dto.PageMeta{
			Page:       window.Page,
			PageSize:   window.PageSize,
			TotalPages: window.TotalPages,
			TotalCount: total,
		},
	}, nil
}

// AddRestaurant bookmarks a restaurant with the same no-op-on-duplicate
// contract as AddFood.
func (s *FavoriteServiceImpl) AddRestaurant(ctx context.Context, db *gorm.DB, userID, restaurantID uint) (bool, error) {
	if _, err := s.restaurants.FindByID(db, restaurantID); err != nil {
		if apperrors.Is(err, repositories.ErrRestaurantNotFound) {
			return false, apperrors.ErrNotFound(err, "restaurant", "Restaurant not found")
		}
		return false, apperrors.InternalError(err)
	}

	if _, err := s.favorites.FindRestaurant(db, userID, restaurantID); err == nil {
		return false, nil
	} else if !apperrors.Is(err, repositories.ErrFavoriteNotFound) {
		return false, apperrors.InternalError(err)
	}

	if err := s.favorites.CreateRestaurant(db, &models.FavoriteRestaurant{UserID: userID, RestaurantID: restaurantID}); err != nil {
		return false, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "favorite restaurant added", "user_id", userID, "restaurant_id", restaurantID)
	return true, nil
}

func (s *FavoriteServiceImpl) RemoveRestaurant(ctx context.Context, db *gorm.DB, userID, restaurantID uint) error {
	if err := s.favorites.DeleteRestaurant(db, userID, restaurantID); err != nil {
		if apperrors.Is(err, repositories.ErrFavoriteNotFound) {
			return apperrors.ErrNotFound(err, "favorite", "Favorite not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *FavoriteServiceImpl) ListRestaurants(ctx context.Context, db *gorm.DB, userID uint, page, pageSize int) (*dto.FavoriteRestaurantListResponse, error) {
	total, err := s.favorites.CountRestaurant(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	window := paging.Paginate(total, page, pageSize)
	favs, err := s.favorites.FindRestaurantPage(db, userID, window.PageSize, window.Offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	restaurants := make([]models.Restaurant, 0, len(favs))
	for i := range favs {
		restaurants = append(restaurants, favs[i].Restaurant)
	}

	return &dto.FavoriteRestaurantListResponse{
		Restaurants: restaurants,
		Meta: dto.PageMeta{
			Page:       window.Page,
			PageSize:   window.PageSize,
			TotalPages: window.TotalPages,
			TotalCount: total,
		},
	}, nil
}
