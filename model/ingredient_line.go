package model

/*

IngredientLine records that a recipe needs Amount of a product

Id: primary key. Lines get their own key instead of a composite
(recipe, product) key: a recipe may list the same product twice and the
shopping list sums such lines instead of overwriting them.
RecipeID: owning recipe, cascades on delete
ProductID, Product: catalog item, "belongs-to" relation
Amount: how much of the product is needed, > 0, may be fractional

*/

type IngredientLine struct {
	Id        string  `gorm:"primaryKey"`
	RecipeID  string  `gorm:"index;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	ProductID string  `gorm:"index;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Product   Product `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Amount    float64
}
