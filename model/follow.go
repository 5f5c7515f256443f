package model

import (
	"gorm.io/gorm"
)

/*

Follow is a "many-to-many" relation of a user subscribing to an author

UserID: the follower, part of the composite primary key
AuthorID: the followed author, part of the composite primary key

A user cannot follow themselves; the check lives in the store layer so
it is enforced no matter which handler creates the row.

*/

type Follow struct {
	UserID   string `gorm:"primaryKey"`
	AuthorID string `gorm:"primaryKey;constraint:OnDelete:CASCADE;"`
}

func (Follow) BeforeCreate(db *gorm.DB) error {
	return nil
}
