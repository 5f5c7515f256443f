package model

import (
	"time"
)

/*

Recipe is a data model for a published recipe

Id: primary key
CreatedAt: publication time, list ordering key
AuthorID, Author: owning user, "belongs-to" relation. Deleting the
author deletes their recipes.

Name: recipe title
Image: path of the uploaded image, the file itself lives outside the DB
Text: cooking instructions
CookingTime: minutes, must be >= 1
Tags: labels, "many-to-many" relation
Ingredients: (product, amount) lines, "has-many" relation. Deleting the
recipe deletes its lines and its cart/favorite rows.

*/

type Recipe struct {
	Id          string    `gorm:"primaryKey"`
	CreatedAt   time.Time `gorm:"<-:create"`
	AuthorID    string    `gorm:"index;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Author      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Name        string
	Image       string
	Text        string
	CookingTime int
	Tags        []*Tag            `json:"tags" gorm:"many2many:recipe_tags;constraint:OnDelete:CASCADE;"`
	Ingredients []*IngredientLine `json:"ingredients" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE;"`
}
