package server

import (
	"time"

	"github.com/jinzhu/copier"

	"github.com/foodgram-ru/foodgram-backend/model"
)

// Response schemas. Field-to-field mapping from the models is defined
// once, here; handlers never reshape maps ad hoc.

type TagResponse struct {
	Id    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Slug  string `json:"slug"`
}

type ProductResponse struct {
	Id              string `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

// IngredientResponse flattens an ingredient line with its product: the
// id is the product id, the amount comes from the line.
type IngredientResponse struct {
	Id              string  `json:"id"`
	Name            string  `json:"name"`
	MeasurementUnit string  `json:"measurement_unit"`
	Amount          float64 `json:"amount"`
}

type AuthorResponse struct {
	Id           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsSubscribed bool   `json:"is_subscribed"`
}

type RecipeResponse struct {
	Id               string               `json:"id"`
	Author           AuthorResponse       `json:"author"`
	Name             string               `json:"name"`
	Image            string               `json:"image"`
	Text             string               `json:"text"`
	CookingTime      int                  `json:"cooking_time"`
	CreatedAt        time.Time            `json:"created_at"`
	Tags             []TagResponse        `json:"tags"`
	Ingredients      []IngredientResponse `json:"ingredients"`
	IsFavorited      bool                 `json:"is_favorited"`
	IsInShoppingCart bool                 `json:"is_in_shopping_cart"`
}

// ShortRecipeResponse is the compact representation returned by the
// cart/favorite toggles and embedded in subscription listings.
type ShortRecipeResponse struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

type SubscriptionResponse struct {
	AuthorResponse
	Recipes      []ShortRecipeResponse `json:"recipes"`
	RecipesCount int                   `json:"recipes_count"`
}

func NewTagResponse(tag *model.Tag) TagResponse {
	resp := TagResponse{}
	copier.Copy(&resp, tag)
	return resp
}

func NewProductResponse(product *model.Product) ProductResponse {
	resp := ProductResponse{}
	copier.Copy(&resp, product)
	return resp
}

func NewAuthorResponse(user *model.User, isSubscribed bool) AuthorResponse {
	resp := AuthorResponse{}
	copier.Copy(&resp, user)
	resp.IsSubscribed = isSubscribed
	return resp
}

func NewShortRecipeResponse(recipe *model.Recipe) ShortRecipeResponse {
	resp := ShortRecipeResponse{}
	copier.Copy(&resp, recipe)
	return resp
}

func NewRecipeResponse(recipe *model.Recipe, isFavorited, isInShoppingCart, isSubscribed bool) RecipeResponse {
	resp := RecipeResponse{}
	copier.Copy(&resp, recipe)
	resp.Author = NewAuthorResponse(&recipe.Author, isSubscribed)
	// assign, don't append: copier already walked the model slices and
	// its field-name mapping is not the wire schema
	resp.Tags = make([]TagResponse, 0, len(recipe.Tags))
	for _, tag := range recipe.Tags {
		resp.Tags = append(resp.Tags, NewTagResponse(tag))
	}
	resp.Ingredients = make([]IngredientResponse, 0, len(recipe.Ingredients))
	for _, line := range recipe.Ingredients {
		resp.Ingredients = append(resp.Ingredients, IngredientResponse{
			Id:              line.ProductID,
			Name:            line.Product.Name,
			MeasurementUnit: line.Product.MeasurementUnit,
			Amount:          line.Amount,
		})
	}
	resp.IsFavorited = isFavorited
	resp.IsInShoppingCart = isInShoppingCart
	return resp
}

func NewSubscriptionResponse(author *model.User, isSubscribed bool) SubscriptionResponse {
	resp := SubscriptionResponse{
		AuthorResponse: NewAuthorResponse(author, isSubscribed),
		Recipes:        []ShortRecipeResponse{},
	}
	for _, recipe := range author.Recipes {
		resp.Recipes = append(resp.Recipes, NewShortRecipeResponse(recipe))
	}
	resp.RecipesCount = len(resp.Recipes)
	return resp
}
