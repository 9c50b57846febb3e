package repositories

import (
	"errors"

	"niddle_backend/internal/models"

	"gorm.io/gorm"
)

var ErrResetNotFound = errors.New("password reset not found")

type PasswordResetRepository interface {
	FindByUser(db *gorm.DB, userID uint) (*models.PasswordReset, error)
	Create(db *gorm.DB, reset *models.PasswordReset) error
	DeleteByUser(db *gorm.DB, userID uint) error
	Delete(db *gorm.DB, id uint) error
	CountByUser(db *gorm.DB, userID uint) (int64, error)
}

type PasswordResetRepositoryImpl struct{}

func NewPasswordResetRepository() PasswordResetRepository {
	return &PasswordResetRepositoryImpl{}
}

func (r *PasswordResetRepositoryImpl) FindByUser(db *gorm.DB, userID uint) (*models.PasswordReset, error) {
	var reset models.PasswordReset
	err := db.Order("id DESC").First(&reset, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResetNotFound
		}
		return nil, err
	}
	return &reset, nil
}

func (r *PasswordResetRepositoryImpl) Create(db *gorm.DB, reset *models.PasswordReset) error {
	return db.Create(reset).Error
}

func (r *PasswordResetRepositoryImpl) DeleteByUser(db *gorm.DB, userID uint) error {
	return db.Where("user_id = ?", userID).Delete(&models.PasswordReset{}).Error
}

func (r *PasswordResetRepositoryImpl) Delete(db *gorm.DB, id uint) error {
	return db.Delete(&models.PasswordReset{}, id).Error
}

func (r *PasswordResetRepositoryImpl) CountByUser(db *gorm.DB, userID uint) (int64, error) {
	var count int64
	err := db.Model(&models.PasswordReset{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
