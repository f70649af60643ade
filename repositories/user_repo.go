// Data-access layer. Only talks to the database (via GORM here), no HTTP/JSON.
package repositories

import (
	"github.com/Modassir22/dream-home-hub/models"

	"gorm.io/gorm"
)

// UserRepository defines the operations the auth service expects.
type UserRepository interface {
	Create(user *models.User) error // ErrDuplicate when the username is taken
	FindByUsername(username string) (*models.User, error)
	FindByID(id uint) (*models.User, error)
}

type userRepo struct{ db *gorm.DB }

// NewUserRepository injects *gorm.DB and returns the interface so main.go can
// wire dependencies without exposing concrete types.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(u *models.User) error {
	return translate(r.db.Create(u).Error)
}

// FindByUsername uses a parameterized WHERE, compiled safely for each dialect.
func (r *userRepo) FindByUsername(username string) (*models.User, error) {
	var u models.User
	if err := r.db.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) FindByID(id uint) (*models.User, error) {
	var u models.User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
