package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/foodgram-ru/foodgram-backend/model"
	"github.com/foodgram-ru/foodgram-backend/shopping"
	"github.com/foodgram-ru/foodgram-backend/store"
)

// AddRelationHandler serves POST /recipes/:id/{shopping_cart,favorite}.
// Adding a recipe that is already in the set is a validation error, not
// a silent no-op.
func AddRelationHandler(relations store.RelationStore, recipes store.RecipeStore, kind model.RelationKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		recipe, err := recipes.Get(c.Param("id"))
		if err != nil {
			renderStoreError(c, err)
			return
		}
		if err := relations.Add(c.GetHeader("sub"), recipe.Id, kind); err != nil {
			renderStoreError(c, err)
			return
		}
		c.JSON(http.StatusCreated, NewShortRecipeResponse(recipe))
	}
}

// RemoveRelationHandler serves the matching DELETE. Removing a recipe
// that is not in the set is NotFound.
func RemoveRelationHandler(relations store.RelationStore, kind model.RelationKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := relations.Remove(c.GetHeader("sub"), c.Param("id"), kind); err != nil {
			renderStoreError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// DownloadShoppingCartHandler renders the user's aggregated shopping
// list as a downloadable text file. The list is recomputed from the
// current cart on every call; nothing is persisted.
func DownloadShoppingCartHandler(relations store.RelationStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := relations.CartEntriesForUser(c.GetHeader("sub"))
		if err != nil {
			renderStoreError(c, err)
			return
		}
		items := shopping.Aggregate(shopping.LinesFromCart(entries))
		report := shopping.FormatReport(items, time.Now(), shopping.DefaultLabels)

		c.Header("Content-Disposition", `attachment; filename="shopping_list.txt"`)
		c.Data(http.StatusOK, "text/plain; charset=UTF-8", []byte(report))
	}
}
