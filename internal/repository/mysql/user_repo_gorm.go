package mysql

import (
	"checkout-service/internal/domain"
	"checkout-service/internal/repository"

	"gorm.io/gorm"
)

type userRepo struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) FindEmailByID(id uint64) (string, error) {
	var u domain.User
	if err := r.db.Select("email").First(&u, id).Error; err != nil {
		return "", err
	}
	return u.Email, nil
}
