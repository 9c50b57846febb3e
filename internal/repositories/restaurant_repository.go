package repositories

import (
	"errors"

	"niddle_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrRestaurantNotFound   = errors.New("restaurant not found")
	ErrRestaurantEmailTaken = errors.New("restaurant email already taken")
)

type RestaurantRepository interface {
	FindByID(db *gorm.DB, id uint) (*models.Restaurant, error)
	Create(db *gorm.DB, restaurant *models.Restaurant) error
	Update(db *gorm.DB, restaurant *models.Restaurant) error
	Delete(db *gorm.DB, id uint) error
	FindPage(db *gorm.DB, limit, offset int) ([]models.Restaurant, error)
	CountAll(db *gorm.DB) (int64, error)
}

type RestaurantRepositoryImpl struct{}

func NewRestaurantRepository() RestaurantRepository {
	return &RestaurantRepositoryImpl{}
}

func (r *RestaurantRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := db.Preload("WorkTimes").First(&restaurant, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return &restaurant, nil
}

func (r *RestaurantRepositoryImpl) Create(db *gorm.DB, restaurant *models.Restaurant) error {
	if err := db.Create(restaurant).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrRestaurantEmailTaken
		}
		return err
	}
	return nil
}

func (r *RestaurantRepositoryImpl) Update(db *gorm.DB, restaurant *models.Restaurant) error {
	if err := db.Save(restaurant).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrRestaurantEmailTaken
		}
		return err
	}
	return nil
}

func (r *RestaurantRepositoryImpl) Delete(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("restaurant_id = ?", id).Delete(&models.WorkTime{}).Error; err != nil {
			return err
		}
		if err := tx.Where("restaurant_id = ?", id).Delete(&models.FavoriteRestaurant{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Restaurant{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrRestaurantNotFound
		}
		return nil
	})
}

func (r *RestaurantRepositoryImpl) FindPage(db *gorm.DB, limit, offset int) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	err := db.Preload("WorkTimes").Order("id ASC").Limit(limit).Offset(offset).Find(&restaurants).Error
	return restaurants, err
}

func (r *RestaurantRepositoryImpl) CountAll(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Restaurant{}).Count(&count).Error
	return count, err
}
