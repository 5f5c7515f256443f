package store

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/foodgram-ru/foodgram-backend/model"
)

const (
	insertRecipeSQL    = `INSERT INTO "recipes"`
	insertRecipeTagSQL = `INSERT INTO "recipe_tags"`
	insertLineSQL      = `INSERT INTO "ingredient_lines"`
	updateRecipeSQL    = `UPDATE "recipes" SET`
	deleteRecipeSQL    = `DELETE FROM "recipes"`
	deleteLinesSQL     = `DELETE FROM "ingredient_lines"`
	deleteRelationsSQL = `DELETE FROM "user_recipe_relations"`
	deleteRecipeTagSQL = `DELETE FROM "recipe_tags"`
)

func draftRecipe() *model.Recipe {
	return &model.Recipe{
		AuthorID:    "user-1",
		Name:        "Mashed potatoes",
		Text:        "Boil, then mash.",
		CookingTime: 30,
		Tags:        []*model.Tag{{Id: "tag-dinner"}},
		Ingredients: []*model.IngredientLine{
			{ProductID: "p-potato", Amount: 500},
		},
	}
}

// Create writes the recipe, the tag links and the lines — and nothing
// into the tags table itself: the catalog is reference data. The
// ordered expectations fail the test if a tags upsert sneaks in.
func TestRecipeCreateDoesNotUpsertTags(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewGormRecipeStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(insertRecipeSQL)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(insertLineSQL)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(insertRecipeTagSQL)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	recipe := draftRecipe()
	require.NoError(t, s.Create(recipe))
	require.NotEmpty(t, recipe.Id)
	require.Equal(t, recipe.Id, recipe.Ingredients[0].RecipeID)
	require.NoError(t, mock.ExpectationsWereMet())
}

// An unknown tag id trips the recipe_tags foreign key and surfaces as
// NotFound instead of planting a blank row in the catalog.
func TestRecipeCreateUnknownTagFails(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewGormRecipeStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(insertRecipeSQL)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(insertRecipeTagSQL)).
		WillReturnError(&pgconn.PgError{Code: "23503"})
	mock.ExpectRollback()

	recipe := draftRecipe()
	recipe.Ingredients = nil
	recipe.Tags = []*model.Tag{{Id: "bogus-tag"}}

	require.ErrorIs(t, s.Create(recipe), ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

// Update rewrites scalars, swaps the tag links and replaces every
// ingredient line inside one transaction.
func TestRecipeUpdateReplacesLinesAndTagLinks(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewGormRecipeStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(updateRecipeSQL)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(insertRecipeTagSQL)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(deleteRecipeTagSQL)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(deleteLinesSQL)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(insertLineSQL)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	recipe := draftRecipe()
	recipe.Id = "r-1"
	require.NoError(t, s.Update(recipe))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeUpdateMissingRecipeIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewGormRecipeStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(updateRecipeSQL)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	recipe := draftRecipe()
	recipe.Id = "gone"
	require.ErrorIs(t, s.Update(recipe), ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeUpdateUnknownTagFails(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewGormRecipeStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(updateRecipeSQL)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(insertRecipeTagSQL)).
		WillReturnError(&pgconn.PgError{Code: "23503"})
	mock.ExpectRollback()

	recipe := draftRecipe()
	recipe.Id = "r-1"
	recipe.Tags = []*model.Tag{{Id: "bogus-tag"}}
	require.ErrorIs(t, s.Update(recipe), ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

// Delete takes the recipe and everything hanging off it: lines, every
// user's cart/favorite rows and the tag links.
func TestRecipeDeleteCascades(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewGormRecipeStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(deleteRecipeSQL)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(deleteLinesSQL)).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(deleteRelationsSQL)).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(deleteRecipeTagSQL)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, s.Delete("r-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeDeleteMissingRecipeIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewGormRecipeStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(deleteRecipeSQL)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	require.ErrorIs(t, s.Delete("gone"), ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
