package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodgram-ru/foodgram-backend/store"
	"github.com/foodgram-ru/foodgram-backend/utils"
	Logger "github.com/foodgram-ru/foodgram-backend/utils/log"
)

// renderStoreError maps store sentinels onto HTTP responses. Anything
// unexpected is logged and hidden behind a 500: driver errors never
// reach the client.
func renderStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"code": utils.ErrorNotFound,
			"msg":  "not found",
		})
	case errors.Is(err, store.ErrAlreadyExists):
		c.JSON(http.StatusBadRequest, gin.H{
			"code": utils.ErrorAlreadyExists,
			"msg":  "already exists",
		})
	case errors.Is(err, store.ErrSelfFollow):
		c.JSON(http.StatusBadRequest, gin.H{
			"code": utils.ErrorInvalidInput,
			"msg":  "you cannot subscribe to yourself",
		})
	default:
		Logger.LogV2.Error(fmt.Sprint("unexpected store error: ", err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"code": utils.ErrorInternal,
			"msg":  "internal error",
		})
	}
}

func renderInvalidPayload(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"code": utils.ErrorInvalidInput,
		"msg":  err.Error(),
	})
}
