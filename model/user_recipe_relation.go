package model

import (
	"time"
)

// RelationKind tags a UserRecipeRelation row as one of the two
// user-recipe sets the API maintains.
type RelationKind string

const (
	RelationFavorite     RelationKind = "FAVORITE"
	RelationShoppingCart RelationKind = "SHOPPING_CART"
)

/*

UserRecipeRelation is a "many-to-many" relation of a user keeping a
recipe in one of their sets: favorites or the shopping cart. The two
sets share one table and are told apart by Kind.

UserID: user id, part of the composite primary key
RecipeID: recipe id, part of the composite primary key
Kind: which set this row belongs to, part of the composite primary key
CreatedAt: time when relation is created

The composite key is the uniqueness constraint: a recipe can be in a
user's cart at most once, and in their favorites at most once. Recipe
deletion cascades to these rows.

*/

type UserRecipeRelation struct {
	UserID    string       `gorm:"primaryKey"`
	RecipeID  string       `gorm:"primaryKey;constraint:OnDelete:CASCADE;"`
	Kind      RelationKind `gorm:"primaryKey"`
	CreatedAt time.Time    `gorm:"<-:create"`

	Recipe Recipe `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
