package repositories

import (
	"errors"

	"niddle_backend/internal/models"

	"gorm.io/gorm"
)

var ErrCardNotFound = errors.New("card not found")

type CardRepository interface {
	FindByID(db *gorm.DB, id uint) (*models.Card, error)
	FindMainByUser(db *gorm.DB, userID uint) (*models.Card, error)
	ListByUser(db *gorm.DB, userID uint) ([]models.Card, error)
	Create(db *gorm.DB, card *models.Card) error
	Delete(db *gorm.DB, id uint) error
	SetMainFlag(db *gorm.DB, id uint, main bool) error
}

type CardRepositoryImpl struct{}

func NewCardRepository() CardRepository {
	return &CardRepositoryImpl{}
}

func (r *CardRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Card, error) {
	var card models.Card
	err := db.First(&card, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	return &card, nil
}

// FindMainByUser returns nil, nil when the user has no main card.
func (r *CardRepositoryImpl) FindMainByUser(db *gorm.DB, userID uint) (*models.Card, error) {
	var card models.Card
	err := db.First(&card, "user_id = ? AND main = ?", userID, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &card, nil
}

func (r *CardRepositoryImpl) ListByUser(db *gorm.DB, userID uint) ([]models.Card, error) {
	var cards []models.Card
	err := db.Order("id ASC").Find(&cards, "user_id = ?", userID).Error
	return cards, err
}

func (r *CardRepositoryImpl) Create(db *gorm.DB, card *models.Card) error {
	return db.Create(card).Error
}

func (r *CardRepositoryImpl) Delete(db *gorm.DB, id uint) error {
	result := db.Delete(&models.Card{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	return nil
}

func (r *CardRepositoryImpl) SetMainFlag(db *gorm.DB, id uint, main bool) error {
	result := db.Model(&models.Card{}).Where("id = ?", id).Update("main", main)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	return nil
}
