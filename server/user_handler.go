package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodgram-ru/foodgram-backend/store"
)

func SubscribeHandler(follows store.FollowStore, users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		author, err := users.Get(c.Param("id"))
		if err != nil {
			renderStoreError(c, err)
			return
		}
		if err := follows.Follow(c.GetHeader("sub"), author.Id); err != nil {
			renderStoreError(c, err)
			return
		}
		c.JSON(http.StatusCreated, NewAuthorResponse(author, true))
	}
}

func UnsubscribeHandler(follows store.FollowStore, users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		author, err := users.Get(c.Param("id"))
		if err != nil {
			renderStoreError(c, err)
			return
		}
		if err := follows.Unfollow(c.GetHeader("sub"), author.Id); err != nil {
			renderStoreError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func SubscriptionsHandler(follows store.FollowStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authors, err := follows.Subscriptions(c.GetHeader("sub"))
		if err != nil {
			renderStoreError(c, err)
			return
		}
		resp := []SubscriptionResponse{}
		for _, author := range authors {
			resp = append(resp, NewSubscriptionResponse(author, true))
		}
		c.JSON(http.StatusOK, resp)
	}
}
