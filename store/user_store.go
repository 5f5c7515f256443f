package store

import (
	"gorm.io/gorm"

	"github.com/foodgram-ru/foodgram-backend/model"
)

type UserStore interface {
	Get(id string) (*model.User, error)
}

type GormUserStore struct {
	db *gorm.DB
}

func NewGormUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{db: db}
}

func (s *GormUserStore) Get(id string) (*model.User, error) {
	user := model.User{}
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translateDBError(err)
	}
	return &user, nil
}
