package store

import (
	"gorm.io/gorm"

	"github.com/foodgram-ru/foodgram-backend/model"
)

// RelationStore maintains the two per-user recipe sets (favorites and
// the shopping cart). The aggregator reads the cart exclusively through
// CartEntriesForUser, so it never touches gorm directly.
type RelationStore interface {
	Add(userID, recipeID string, kind model.RelationKind) error
	Remove(userID, recipeID string, kind model.RelationKind) error
	Exists(userID, recipeID string, kind model.RelationKind) (bool, error)
	CartEntriesForUser(userID string) ([]*model.UserRecipeRelation, error)
}

type GormRelationStore struct {
	db *gorm.DB
}

func NewGormRelationStore(db *gorm.DB) *GormRelationStore {
	return &GormRelationStore{db: db}
}

// Add creates the (user, recipe, kind) row. Returns ErrAlreadyExists if
// the row is present, whether caught by the pre-check or by the
// composite primary key when two adds race.
func (s *GormRelationStore) Add(userID, recipeID string, kind model.RelationKind) error {
	exists, err := s.Exists(userID, recipeID, kind)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyExists
	}
	return translateDBError(s.db.Create(&model.UserRecipeRelation{
		UserID:   userID,
		RecipeID: recipeID,
		Kind:     kind,
	}).Error)
}

// Remove deletes the row, ErrNotFound when it was never there.
func (s *GormRelationStore) Remove(userID, recipeID string, kind model.RelationKind) error {
	result := s.db.
		Where("user_id = ? AND recipe_id = ? AND kind = ?", userID, recipeID, kind).
		Delete(&model.UserRecipeRelation{})
	if result.Error != nil {
		return translateDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormRelationStore) Exists(userID, recipeID string, kind model.RelationKind) (bool, error) {
	var count int64
	err := s.db.Model(&model.UserRecipeRelation{}).
		Where("user_id = ? AND recipe_id = ? AND kind = ?", userID, recipeID, kind).
		Count(&count).Error
	if err != nil {
		return false, translateDBError(err)
	}
	return count > 0, nil
}

// CartEntriesForUser loads the user's cart rows with recipe, lines and
// products resolved, ready for aggregation. An empty cart is an empty
// slice, not an error.
func (s *GormRelationStore) CartEntriesForUser(userID string) ([]*model.UserRecipeRelation, error) {
	entries := []*model.UserRecipeRelation{}
	err := s.db.
		Preload("Recipe").
		Preload("Recipe.Ingredients").
		Preload("Recipe.Ingredients.Product").
		Where("user_id = ? AND kind = ?", userID, model.RelationShoppingCart).
		Order("recipe_id").
		Find(&entries).Error
	if err != nil {
		return nil, translateDBError(err)
	}
	return entries, nil
}
