package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/foodgram-ru/foodgram-backend/model"
	"github.com/foodgram-ru/foodgram-backend/store"
	"github.com/foodgram-ru/foodgram-backend/utils"
	Logger "github.com/foodgram-ru/foodgram-backend/utils/log"
)

type IngredientPayload struct {
	Id     string  `json:"id" binding:"required"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type RecipePayload struct {
	Name        string              `json:"name" binding:"required"`
	Image       string              `json:"image"`
	Text        string              `json:"text" binding:"required"`
	CookingTime int                 `json:"cooking_time" binding:"required,min=1"`
	Tags        []string            `json:"tags" binding:"required,min=1"`
	Ingredients []IngredientPayload `json:"ingredients" binding:"required,min=1,dive"`
}

func (p *RecipePayload) toModel(authorID string) *model.Recipe {
	recipe := &model.Recipe{
		Id:          uuid.New().String(),
		AuthorID:    authorID,
		Name:        p.Name,
		Image:       p.Image,
		Text:        p.Text,
		CookingTime: p.CookingTime,
	}
	for _, tagID := range p.Tags {
		recipe.Tags = append(recipe.Tags, &model.Tag{Id: tagID})
	}
	for _, ing := range p.Ingredients {
		recipe.Ingredients = append(recipe.Ingredients, &model.IngredientLine{
			ProductID: ing.Id,
			Amount:    ing.Amount,
		})
	}
	return recipe
}

// recipeFlags resolves the per-viewer response fields. Anonymous
// viewers get all-false flags. Lookup failures degrade to false but are
// logged; the recipe itself still renders.
func recipeFlags(viewerID string, relations store.RelationStore, follows store.FollowStore, recipe *model.Recipe) (isFavorited, isInShoppingCart, isSubscribed bool) {
	if viewerID == "" {
		return false, false, false
	}
	var err error
	if isFavorited, err = relations.Exists(viewerID, recipe.Id, model.RelationFavorite); err != nil {
		Logger.LogV2.Error(fmt.Sprintf("favorite flag lookup failed for recipe %s: %v", recipe.Id, err))
	}
	if isInShoppingCart, err = relations.Exists(viewerID, recipe.Id, model.RelationShoppingCart); err != nil {
		Logger.LogV2.Error(fmt.Sprintf("cart flag lookup failed for recipe %s: %v", recipe.Id, err))
	}
	if isSubscribed, err = follows.IsFollowing(viewerID, recipe.AuthorID); err != nil {
		Logger.LogV2.Error(fmt.Sprintf("subscription flag lookup failed for author %s: %v", recipe.AuthorID, err))
	}
	return
}

func RecipeListHandler(recipes store.RecipeStore, relations store.RelationStore, follows store.FollowStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewerID := c.GetHeader("sub")
		filter := store.RecipeFilter{
			AuthorID: c.Query("author"),
			TagSlugs: c.QueryArray("tags"),
		}
		if c.Query("is_favorited") == "1" && viewerID != "" {
			filter.FavoritedBy = viewerID
		}
		if c.Query("is_in_shopping_cart") == "1" && viewerID != "" {
			filter.InCartOf = viewerID
		}
		filter.Limit, _ = strconv.Atoi(c.Query("limit"))
		filter.Offset, _ = strconv.Atoi(c.Query("offset"))

		found, err := recipes.List(filter)
		if err != nil {
			renderStoreError(c, err)
			return
		}
		resp := []RecipeResponse{}
		for _, recipe := range found {
			isFavorited, isInShoppingCart, isSubscribed := recipeFlags(viewerID, relations, follows, recipe)
			resp = append(resp, NewRecipeResponse(recipe, isFavorited, isInShoppingCart, isSubscribed))
		}
		c.JSON(http.StatusOK, resp)
	}
}

func RecipeGetHandler(recipes store.RecipeStore, relations store.RelationStore, follows store.FollowStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		recipe, err := recipes.Get(c.Param("id"))
		if err != nil {
			renderStoreError(c, err)
			return
		}
		isFavorited, isInShoppingCart, isSubscribed := recipeFlags(c.GetHeader("sub"), relations, follows, recipe)
		c.JSON(http.StatusOK, NewRecipeResponse(recipe, isFavorited, isInShoppingCart, isSubscribed))
	}
}

func RecipeCreateHandler(recipes store.RecipeStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload := RecipePayload{}
		if err := c.ShouldBindJSON(&payload); err != nil {
			renderInvalidPayload(c, err)
			return
		}
		recipe := payload.toModel(c.GetHeader("sub"))
		if err := recipes.Create(recipe); err != nil {
			renderStoreError(c, err)
			return
		}
		// re-read so tags and products come back resolved
		created, err := recipes.Get(recipe.Id)
		if err != nil {
			renderStoreError(c, err)
			return
		}
		c.JSON(http.StatusCreated, NewRecipeResponse(created, false, false, false))
	}
}

func RecipeUpdateHandler(recipes store.RecipeStore, relations store.RelationStore, follows store.FollowStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewerID := c.GetHeader("sub")
		existing, err := recipes.Get(c.Param("id"))
		if err != nil {
			renderStoreError(c, err)
			return
		}
		if existing.AuthorID != viewerID {
			renderNotOwner(c)
			return
		}
		payload := RecipePayload{}
		if err := c.ShouldBindJSON(&payload); err != nil {
			renderInvalidPayload(c, err)
			return
		}
		recipe := payload.toModel(viewerID)
		recipe.Id = existing.Id
		recipe.CreatedAt = existing.CreatedAt
		if err := recipes.Update(recipe); err != nil {
			renderStoreError(c, err)
			return
		}
		updated, err := recipes.Get(recipe.Id)
		if err != nil {
			renderStoreError(c, err)
			return
		}
		isFavorited, isInShoppingCart, isSubscribed := recipeFlags(viewerID, relations, follows, updated)
		c.JSON(http.StatusOK, NewRecipeResponse(updated, isFavorited, isInShoppingCart, isSubscribed))
	}
}

func RecipeDeleteHandler(recipes store.RecipeStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		existing, err := recipes.Get(c.Param("id"))
		if err != nil {
			renderStoreError(c, err)
			return
		}
		if existing.AuthorID != c.GetHeader("sub") {
			renderNotOwner(c)
			return
		}
		if err := recipes.Delete(existing.Id); err != nil {
			renderStoreError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func renderNotOwner(c *gin.Context) {
	c.JSON(http.StatusForbidden, gin.H{
		"code": utils.ErrorInvalidInput,
		"msg":  "only the author can modify a recipe",
	})
}
