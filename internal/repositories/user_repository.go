package repositories

import (
	"errors"

	"niddle_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserRepository is stateless; every method operates on the per-request
// handle (pool or transaction) passed in by the caller.
type UserRepository interface {
	FindByID(db *gorm.DB, id uint) (*models.User, error)
	FindByEmail(db *gorm.DB, email string) (*models.User, error)
	Create(db *gorm.DB, user *models.User) error
	UpdatePassword(db *gorm.DB, userID uint, hashed string) error
	Verify(db *gorm.DB, email string) error
	Delete(db *gorm.DB, userID uint) error
	FindPage(db *gorm.DB, limit, offset int) ([]models.User, error)
	CountAll(db *gorm.DB) (int64, error)
}

type UserRepositoryImpl struct{}

func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

func (r *UserRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	err := db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Create relies on the unique email index; the duplicated-key error the
// driver translates covers concurrent registrations too.
func (r *UserRepositoryImpl) Create(db *gorm.DB, user *models.User) error {
	if err := db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r *UserRepositoryImpl) UpdatePassword(db *gorm.DB, userID uint, hashed string) error {
	result := db.Model(&models.User{}).Where("id = ?", userID).
		Update("password", hashed)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) Verify(db *gorm.DB, email string) error {
	result := db.Model(&models.User{}).Where("email = ?", email).
		Update("status", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) Delete(db *gorm.DB, userID uint) error {
	// Owned rows go first; the schema does not enforce cascades.
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.Card{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.PasswordReset{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.FavoriteFood{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.FavoriteRestaurant{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.User{}, userID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}
		return nil
	})
}

func (r *UserRepositoryImpl) FindPage(db *gorm.DB, limit, offset int) ([]models.User, error) {
	var users []models.User
	err := db.Order("id ASC").Limit(limit).Offset(offset).Find(&users).Error
	return users, err
}

func (r *UserRepositoryImpl) CountAll(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.User{}).Count(&count).Error
	return count, err
}
