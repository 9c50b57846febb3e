package repositories

import (
	"errors"

	"niddle_backend/internal/models"

	"gorm.io/gorm"
)

var ErrFoodNotFound = errors.New("food not found")

type FoodRepository interface {
	FindByID(db *gorm.DB, id uint) (*models.Food, error)
	Create(db *gorm.DB, food *models.Food) error
	Update(db *gorm.DB, food *models.Food) error
	Delete(db *gorm.DB, id uint) error
	FindPage(db *gorm.DB, restaurantID uint, kind string, limit, offset int) ([]models.Food, error)
	Count(db *gorm.DB, restaurantID uint, kind string) (int64, error)
}

type FoodRepositoryImpl struct{}

func NewFoodRepository() FoodRepository {
	return &FoodRepositoryImpl{}
}

func (r *FoodRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Food, error) {
	var food models.Food
	err := db.First(&food, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFoodNotFound
		}
		return nil, err
	}
	return &food, nil
}

func (r *FoodRepositoryImpl) Create(db *gorm.DB, food *models.Food) error {
	return db.Create(food).Error
}

func (r *FoodRepositoryImpl) Update(db *gorm.DB, food *models.Food) error {
	return db.Save(food).Error
}

func (r *FoodRepositoryImpl) Delete(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("food_id = ?", id).Delete(&models.FavoriteFood{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Food{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrFoodNotFound
		}
		return nil
	})
}

// FindPage filters by restaurant when restaurantID is non-zero and by
// kind when kind is non-empty.
func (r *FoodRepositoryImpl) FindPage(db *gorm.DB, restaurantID uint, kind string, limit, offset int) ([]models.Food, error) {
	var foods []models.Food
	err := foodFilter(db, restaurantID, kind).
		Order("id ASC").Limit(limit).Offset(offset).Find(&foods).Error
	return foods, err
}

func (r *FoodRepositoryImpl) Count(db *gorm.DB, restaurantID uint, kind string) (int64, error) {
	var count int64
	err := foodFilter(db.Model(&models.Food{}), restaurantID, kind).Count(&count).Error
	return count, err
}

func foodFilter(query *gorm.DB, restaurantID uint, kind string) *gorm.DB {
	if restaurantID != 0 {
		query = query.Where("restaurant_id = ?", restaurantID)
	}
	if kind != "" {
		query = query.Where("kind = ?", kind)
	}
	return query
}
