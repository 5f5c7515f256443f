package server

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/foodgram-ru/foodgram-backend/model"
	"github.com/foodgram-ru/foodgram-backend/server/middlewares"
	"github.com/foodgram-ru/foodgram-backend/store"
)

// RegisterRoutes wires every API endpoint onto the router. Reads are
// public (anonymous viewers get all-false relation flags); mutations
// and everything cart-related require an authenticated subject.
func RegisterRoutes(router *gin.Engine, db *gorm.DB) {
	catalog := store.NewGormCatalogStore(db)
	recipes := store.NewGormRecipeStore(db)
	relations := store.NewGormRelationStore(db)
	follows := store.NewGormFollowStore(db)
	users := store.NewGormUserStore(db)

	api := router.Group("/api")
	api.Use(middlewares.JWT())

	api.GET("/tags", TagListHandler(catalog))
	api.GET("/tags/:id", TagGetHandler(catalog))
	api.GET("/ingredients", ProductListHandler(catalog))
	api.GET("/ingredients/:id", ProductGetHandler(catalog))

	api.GET("/recipes", RecipeListHandler(recipes, relations, follows))
	api.GET("/recipes/:id", RecipeGetHandler(recipes, relations, follows))

	authed := api.Group("")
	authed.Use(middlewares.RequireAuth())

	authed.POST("/recipes", RecipeCreateHandler(recipes))
	authed.PATCH("/recipes/:id", RecipeUpdateHandler(recipes, relations, follows))
	authed.DELETE("/recipes/:id", RecipeDeleteHandler(recipes))

	// not under /recipes: a static segment there would collide with the
	// :id wildcard in gin's route tree
	authed.GET("/shopping_cart/download", DownloadShoppingCartHandler(relations))
	authed.POST("/recipes/:id/shopping_cart", AddRelationHandler(relations, recipes, model.RelationShoppingCart))
	authed.DELETE("/recipes/:id/shopping_cart", RemoveRelationHandler(relations, model.RelationShoppingCart))
	authed.POST("/recipes/:id/favorite", AddRelationHandler(relations, recipes, model.RelationFavorite))
	authed.DELETE("/recipes/:id/favorite", RemoveRelationHandler(relations, model.RelationFavorite))

	authed.GET("/users/subscriptions", SubscriptionsHandler(follows))
	authed.POST("/users/:id/subscribe", SubscribeHandler(follows, users))
	authed.DELETE("/users/:id/subscribe", UnsubscribeHandler(follows, users))
}
