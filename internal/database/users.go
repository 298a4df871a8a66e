package database

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/mrlokans/learnvocab/internal/entities"
)

// ErrUsernameTaken is returned when creating a user whose username
// already exists.
var ErrUsernameTaken = errors.New("username already taken")

// CreateUser inserts a new user and populates the generated id.
func (d *Database) CreateUser(user *entities.User) error {
	err := d.DB.Create(user).Error
	if err != nil && isUniqueViolation(err) {
		return ErrUsernameTaken
	}
	return err
}

// GetUserByID returns the user with the given id, or nil when no such
// row exists.
func (d *Database) GetUserByID(id uint) (*entities.User, error) {
	var user entities.User
	err := d.DB.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername returns the user with the given username, or nil
// when no such row exists.
func (d *Database) GetUserByUsername(username string) (*entities.User, error) {
	var user entities.User
	err := d.DB.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
