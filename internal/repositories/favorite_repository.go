package repositories

import (
	"errors"

	"niddle_backend/internal/models"

	"gorm.io/gorm"
)

var ErrFavoriteNotFound = errors.New("favorite not found")

type FavoriteRepository interface {
	FindFood(db *gorm.DB, userID, foodID uint) (*models.FavoriteFood, error)
	CreateFood(db *gorm.DB, fav *models.FavoriteFood) error
	DeleteFood(db *gorm.DB, userID, foodID uint) error
	FindFoodPage(db *gorm.DB, userID uint, limit, offset int) ([]models.FavoriteFood, error)
	CountFood(db *gorm.DB, userID uint) (int64, error)

	FindRestaurant(db *gorm.DB, userID, restaurantID uint) (*models.FavoriteRestaurant, error)
	CreateRestaurant(db *gorm.DB, fav *models.FavoriteRestaurant) error
	DeleteRestaurant(db *gorm.DB, userID, restaurantID uint) error
	FindRestaurantPage(db *gorm.DB, userID uint, limit, offset int) ([]models.FavoriteRestaurant, error)
	CountRestaurant(db *gorm.DB, userID uint) (int64, error)
}

type FavoriteRepositoryImpl struct{}

func NewFavoriteRepository() FavoriteRepository {
	return &FavoriteRepositoryImpl{}
}

func (r *FavoriteRepositoryImpl) FindFood(db *gorm.DB, userID, foodID uint) (*models.FavoriteFood, error) {
	var fav models.FavoriteFood
	err := db.First(&fav, "user_id = ? AND food_id = ?", userID, foodID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFavoriteNotFound
		}
		return nil, err
	}
	return &fav, nil
}

func (r *FavoriteRepositoryImpl) CreateFood(db *gorm.DB, fav *models.FavoriteFood) error {
	return db.Create(fav).Error
}

func (r *FavoriteRepositoryImpl) DeleteFood(db *gorm.DB, userID, foodID uint) error {
	result := db.Where("user_id = ? AND food_id = ?", userID, foodID).Delete(&models.FavoriteFood{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

func (r *FavoriteRepositoryImpl) FindFoodPage(db *gorm.DB, userID uint, limit, offset int) ([]models.FavoriteFood, error) {
	var favs []models.FavoriteFood
	err := db.Preload("Food").Where("user_id = ?", userID).
		Order("id ASC").Limit(limit).Offset(offset).Find(&favs).Error
	return favs, err
}

func (r *FavoriteRepositoryImpl) CountFood(db *gorm.DB, userID uint) (int64, error) {
	var count int64
	err := db.Model(&models.FavoriteFood{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *FavoriteRepositoryImpl) FindRestaurant(db *gorm.DB, userID, restaurantID uint) (*models.FavoriteRestaurant, error) {
	var fav models.FavoriteRestaurant
	err := db.First(&fav, "user_id = ? AND restaurant_id = ?", userID, restaurantID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFavoriteNotFound
		}
		return nil, err
	}
	return &fav, nil
}

func (r *FavoriteRepositoryImpl) CreateRestaurant(db *gorm.DB, fav *models.FavoriteRestaurant) error {
	return db.Create(fav).Error
}

func (r *FavoriteRepositoryImpl) DeleteRestaurant(db *gorm.DB, userID, restaurantID uint) error {
	result := db.Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).Delete(&models.FavoriteRestaurant{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

func (r *FavoriteRepositoryImpl) FindRestaurantPage(db *gorm.DB, userID uint, limit, offset int) ([]models.FavoriteRestaurant, error) {
	var favs []models.FavoriteRestaurant
	err := db.Preload("Restaurant").Preload("Restaurant.WorkTimes").Where("user_id = ?", userID).
		Order("id ASC").Limit(limit).Offset(offset).Find(&favs).Error
	return favs, err
}

func (r *FavoriteRepositoryImpl) CountRestaurant(db *gorm.DB, userID uint) (int64, error) {
	var count int64
	err := db.Model(&models.FavoriteRestaurant{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
