package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodgram-ru/foodgram-backend/store"
)

func ProductListHandler(catalog store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := catalog.ListProducts(c.Query("name"))
		if err != nil {
			renderStoreError(c, err)
			return
		}
		resp := []ProductResponse{}
		for _, product := range products {
			resp = append(resp, NewProductResponse(product))
		}
		c.JSON(http.StatusOK, resp)
	}
}

func ProductGetHandler(catalog store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := catalog.GetProduct(c.Param("id"))
		if err != nil {
			renderStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, NewProductResponse(product))
	}
}

func TagListHandler(catalog store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		tags, err := catalog.ListTags()
		if err != nil {
			renderStoreError(c, err)
			return
		}
		resp := []TagResponse{}
		for _, tag := range tags {
			resp = append(resp, NewTagResponse(tag))
		}
		c.JSON(http.StatusOK, resp)
	}
}

func TagGetHandler(catalog store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		tag, err := catalog.GetTag(c.Param("id"))
		if err != nil {
			renderStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, NewTagResponse(tag))
	}
}
