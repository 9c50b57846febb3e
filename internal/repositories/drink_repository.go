package repositories

import (
	"errors"

	"niddle_backend/internal/models"

	"gorm.io/gorm"
)

var ErrDrinkNotFound = errors.New("drink not found")

type DrinkRepository interface {
	FindByID(db *gorm.DB, id uint) (*models.Drink, error)
	Create(db *gorm.DB, drink *models.Drink) error
	Update(db *gorm.DB, drink *models.Drink) error
	Delete(db *gorm.DB, id uint) error
	FindPage(db *gorm.DB, restaurantID uint, kinds []string, limit, offset int) ([]models.Drink, error)
	Count(db *gorm.DB, restaurantID uint, kinds []string) (int64, error)
}

type DrinkRepositoryImpl struct{}

func NewDrinkRepository() DrinkRepository {
	return &DrinkRepositoryImpl{}
}

func (r *DrinkRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Drink, error) {
	var drink models.Drink
	err := db.First(&drink, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDrinkNotFound
		}
		return nil, err
	}
	return &drink, nil
}

func (r *DrinkRepositoryImpl) Create(db *gorm.DB, drink *models.Drink) error {
	return db.Create(drink).Error
}

func (r *DrinkRepositoryImpl) Update(db *gorm.DB, drink *models.Drink) error {
	return db.Save(drink).Error
}

func (r *DrinkRepositoryImpl) Delete(db *gorm.DB, id uint) error {
	result := db.Delete(&models.Drink{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDrinkNotFound
	}
	return nil
}

// FindPage filters by restaurant when restaurantID is non-zero and by
// any of the given kinds when kinds is non-empty.
func (r *DrinkRepositoryImpl) FindPage(db *gorm.DB, restaurantID uint, kinds []string, limit, offset int) ([]models.Drink, error) {
	var drinks []models.Drink
	err := drinkFilter(db, restaurantID, kinds).
		Order("id ASC").Limit(limit).Offset(offset).Find(&drinks).Error
	return drinks, err
}

func (r *DrinkRepositoryImpl) Count(db *gorm.DB, restaurantID uint, kinds []string) (int64, error) {
	var count int64
	err := drinkFilter(db.Model(&models.Drink{}), restaurantID, kinds).Count(&count).Error
	return count, err
}

func drinkFilter(query *gorm.DB, restaurantID uint, kinds []string) *gorm.DB {
	if restaurantID != 0 {
		query = query.Where("restaurant_id = ?", restaurantID)
	}
	if len(kinds) > 0 {
		query = query.Where("kind IN ?", kinds)
	}
	return query
}
