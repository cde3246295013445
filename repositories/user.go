package repositories

import (
	"gorm.io/gorm"

	"github.com/shopcore-api/models"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByID retrieves a user by primary key
func (r *UserRepository) FindByID(id uint) (models.User, error) {
	var user models.User
	result := r.db.First(&user, "id = ?", id)
	return user, result.Error
}

// FindByEmail retrieves a user by email address
func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	result := r.db.First(&user, "email = ?", email)
	return user, result.Error
}

// ExistsByEmail reports whether the email is already registered
func (r *UserRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// Create inserts a new user into the database
func (r *UserRepository) Create(user models.User) (models.User, error) {
	result := r.db.Create(&user)
	return user, result.Error
}

// Save persists all fields of an existing user
func (r *UserRepository) Save(user models.User) (models.User, error) {
	result := r.db.Save(&user)
	return user, result.Error
}
