package server

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/foodgram-ru/foodgram-backend/model"
	"github.com/foodgram-ru/foodgram-backend/store"
	Logger "github.com/foodgram-ru/foodgram-backend/utils/log"
)

// cascadeRecipeStore deletes a recipe together with every user's
// relation rows, the way the real store's transaction does.
type cascadeRecipeStore struct {
	recipes   map[string]*model.Recipe
	relations *fakeRelationStore
}

func (s *cascadeRecipeStore) Get(id string) (*model.Recipe, error) {
	recipe, ok := s.recipes[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return recipe, nil
}

func (s *cascadeRecipeStore) Delete(id string) error {
	if _, ok := s.recipes[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.recipes, id)
	for key, row := range s.relations.rows {
		if row.RecipeID == id {
			delete(s.relations.rows, key)
		}
	}
	return nil
}

func (s *cascadeRecipeStore) List(store.RecipeFilter) ([]*model.Recipe, error) { return nil, nil }
func (s *cascadeRecipeStore) Create(*model.Recipe) error                       { return nil }
func (s *cascadeRecipeStore) Update(*model.Recipe) error                       { return nil }

func putInCart(relations *fakeRelationStore, userID string, recipe *model.Recipe) {
	relations.rows[relationKey(userID, recipe.Id, model.RelationShoppingCart)] = &model.UserRecipeRelation{
		UserID:   userID,
		RecipeID: recipe.Id,
		Kind:     model.RelationShoppingCart,
		Recipe:   *recipe,
	}
}

// Deleting a recipe that sits in two users' carts drops it from both
// carts' next reports.
func TestDeleteRecipeRemovesItFromAllCarts(t *testing.T) {
	recipeA := recipeFixtures["r-a"]
	recipeB := recipeFixtures["r-b"]
	relations := newFakeRelationStore()
	recipes := &cascadeRecipeStore{
		recipes:   map[string]*model.Recipe{"r-a": recipeA, "r-b": recipeB},
		relations: relations,
	}
	putInCart(relations, "user-1", recipeA)
	putInCart(relations, "user-1", recipeB)
	putInCart(relations, "user-2", recipeA)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.DELETE("/api/recipes/:id", RecipeDeleteHandler(recipes))
	router.GET("/api/shopping_cart/download", DownloadShoppingCartHandler(relations))

	do := func(method, path, sub string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		req.Header.Set("sub", sub)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		return recorder
	}

	// recipeFixtures carry no author; the deleting caller must own them
	recipeA.AuthorID = "chef-1"
	resp := do(http.MethodDelete, "/api/recipes/r-a", "chef-1")
	require.Equal(t, http.StatusNoContent, resp.Code)

	bodyOne := do(http.MethodGet, "/api/shopping_cart/download", "user-1").Body.String()
	require.NotContains(t, bodyOne, "RecipeA")
	require.Contains(t, bodyOne, "1) RecipeB")

	bodyTwo := do(http.MethodGet, "/api/shopping_cart/download", "user-2").Body.String()
	require.NotContains(t, bodyTwo, "RecipeA")
	require.NotContains(t, bodyTwo, "1)")
}

type failingRelationStore struct{}

func (failingRelationStore) Add(string, string, model.RelationKind) error    { return errors.New("db down") }
func (failingRelationStore) Remove(string, string, model.RelationKind) error { return errors.New("db down") }
func (failingRelationStore) Exists(string, string, model.RelationKind) (bool, error) {
	return false, errors.New("db down")
}
func (failingRelationStore) CartEntriesForUser(string) ([]*model.UserRecipeRelation, error) {
	return nil, errors.New("db down")
}

type failingFollowStore struct{}

func (failingFollowStore) Follow(string, string) error   { return errors.New("db down") }
func (failingFollowStore) Unfollow(string, string) error { return errors.New("db down") }
func (failingFollowStore) Subscriptions(string) ([]*model.User, error) {
	return nil, errors.New("db down")
}
func (failingFollowStore) IsFollowing(string, string) (bool, error) {
	return false, errors.New("db down")
}

// Flag lookups degrade to false when the store fails, but the failure
// is logged rather than swallowed.
func TestRecipeGetLogsFailedFlagLookups(t *testing.T) {
	hook := test.NewLocal(Logger.LogV2.Logger)
	defer hook.Reset()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/recipes/:id", RecipeGetHandler(fakeRecipeStore{}, failingRelationStore{}, failingFollowStore{}))

	req := httptest.NewRequest(http.MethodGet, "/api/recipes/r-a", nil)
	req.Header.Set("sub", "user-1")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Contains(t, recorder.Body.String(), `"is_favorited":false`)
	require.Contains(t, recorder.Body.String(), `"is_in_shopping_cart":false`)

	var logged int
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.ErrorLevel {
			logged++
		}
	}
	require.Equal(t, 3, logged)
}
