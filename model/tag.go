package model

/*

Tag is a label attached to recipes, e.g. "breakfast"

Id: primary key
Name: display name
Color: hex color used by the frontend, e.g. "#49B64E"
Slug: unique url-safe identifier, used as the recipe list filter value

*/

type Tag struct {
	Id    string `gorm:"primaryKey"`
	Name  string
	Color string
	Slug  string `gorm:"uniqueIndex"`
}
