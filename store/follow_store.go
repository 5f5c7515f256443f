package store

import (
	"gorm.io/gorm"

	"github.com/foodgram-ru/foodgram-backend/model"
)

// FollowStore maintains follower → author edges.
type FollowStore interface {
	Follow(userID, authorID string) error
	Unfollow(userID, authorID string) error
	Subscriptions(userID string) ([]*model.User, error)
	IsFollowing(userID, authorID string) (bool, error)
}

type GormFollowStore struct {
	db *gorm.DB
}

func NewGormFollowStore(db *gorm.DB) *GormFollowStore {
	return &GormFollowStore{db: db}
}

// Follow creates the edge. Self-follows are rejected before touching
// the DB; duplicate edges surface as ErrAlreadyExists either from the
// pre-check or from the composite key under racing requests.
func (s *GormFollowStore) Follow(userID, authorID string) error {
	if userID == authorID {
		return ErrSelfFollow
	}
	exists, err := s.IsFollowing(userID, authorID)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyExists
	}
	return translateDBError(s.db.Create(&model.Follow{
		UserID:   userID,
		AuthorID: authorID,
	}).Error)
}

func (s *GormFollowStore) Unfollow(userID, authorID string) error {
	result := s.db.
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&model.Follow{})
	if result.Error != nil {
		return translateDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Subscriptions returns the authors the user follows, with their
// recipes preloaded for the subscription listing.
func (s *GormFollowStore) Subscriptions(userID string) ([]*model.User, error) {
	authors := []*model.User{}
	err := s.db.
		Preload("Recipes").
		Where("id IN (?)", s.db.Model(&model.Follow{}).
			Select("author_id").
			Where("user_id = ?", userID)).
		Order("email").
		Find(&authors).Error
	if err != nil {
		return nil, translateDBError(err)
	}
	return authors, nil
}

func (s *GormFollowStore) IsFollowing(userID, authorID string) (bool, error) {
	var count int64
	err := s.db.Model(&model.Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error
	if err != nil {
		return false, translateDBError(err)
	}
	return count > 0, nil
}
