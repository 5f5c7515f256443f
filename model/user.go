package model

import (
	"time"
)

/*

User is a data model for a registered user

Id: primary key, use to identify a user
CreatedAt: time when entity is created

Username: unique login handle
Email: unique email address
FirstName, LastName: display name parts

Recipes: recipes this user authored, "has-many" relation
Relations: cart/favorite rows owned by this user, "has-many" relation

*/

type User struct {
	Id        string    `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"<-:create"`
	Username  string    `gorm:"uniqueIndex"`
	Email     string    `gorm:"uniqueIndex"`
	FirstName string
	LastName  string

	Recipes   []*Recipe             `json:"recipes" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE;"`
	Relations []*UserRecipeRelation `json:"relations" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}
