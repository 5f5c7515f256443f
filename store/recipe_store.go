package store

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/foodgram-ru/foodgram-backend/model"
)

// RecipeFilter narrows the recipe list. Zero values mean "no filter".
// TagSlugs are OR-ed: a recipe matches when it carries any of them.
type RecipeFilter struct {
	AuthorID    string
	TagSlugs    []string
	FavoritedBy string
	InCartOf    string
	Limit       int
	Offset      int
}

type RecipeStore interface {
	List(filter RecipeFilter) ([]*model.Recipe, error)
	Get(id string) (*model.Recipe, error)
	Create(recipe *model.Recipe) error
	Update(recipe *model.Recipe) error
	Delete(id string) error
}

type GormRecipeStore struct {
	db *gorm.DB
}

func NewGormRecipeStore(db *gorm.DB) *GormRecipeStore {
	return &GormRecipeStore{db: db}
}

func (s *GormRecipeStore) withAssociations() *gorm.DB {
	return s.db.
		Preload("Author").
		Preload("Tags").
		Preload("Ingredients").
		Preload("Ingredients.Product")
}

func (s *GormRecipeStore) List(filter RecipeFilter) ([]*model.Recipe, error) {
	query := s.withAssociations()
	if filter.AuthorID != "" {
		query = query.Where("recipes.author_id = ?", filter.AuthorID)
	}
	if len(filter.TagSlugs) > 0 {
		query = query.Where(
			"recipes.id IN (?)",
			s.db.Table("recipe_tags").
				Select("recipe_tags.recipe_id").
				Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
				Where("tags.slug IN ?", filter.TagSlugs),
		)
	}
	if filter.FavoritedBy != "" {
		query = query.Where("recipes.id IN (?)", relationSubquery(s.db, filter.FavoritedBy, model.RelationFavorite))
	}
	if filter.InCartOf != "" {
		query = query.Where("recipes.id IN (?)", relationSubquery(s.db, filter.InCartOf, model.RelationShoppingCart))
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	recipes := []*model.Recipe{}
	if err := query.Order("recipes.created_at").Find(&recipes).Error; err != nil {
		return nil, translateDBError(err)
	}
	return recipes, nil
}

func relationSubquery(db *gorm.DB, userID string, kind model.RelationKind) *gorm.DB {
	return db.Model(&model.UserRecipeRelation{}).
		Select("recipe_id").
		Where("user_id = ? AND kind = ?", userID, kind)
}

func (s *GormRecipeStore) Get(id string) (*model.Recipe, error) {
	recipe := model.Recipe{}
	err := s.withAssociations().Where("recipes.id = ?", id).First(&recipe).Error
	if err != nil {
		return nil, translateDBError(err)
	}
	return &recipe, nil
}

// Create persists the recipe together with its tags and ingredient
// lines. Ids are assigned here; callers pass lines with product refs
// and amounts only. Tag rows are never upserted: the catalog is
// reference data, so only the recipe_tags link is written and an
// unknown tag id fails on the foreign key instead of planting a blank
// tag.
func (s *GormRecipeStore) Create(recipe *model.Recipe) error {
	if recipe.Id == "" {
		recipe.Id = uuid.New().String()
	}
	for _, line := range recipe.Ingredients {
		if line.Id == "" {
			line.Id = uuid.New().String()
		}
		line.RecipeID = recipe.Id
	}
	return translateDBError(s.db.Omit("Tags.*").Create(recipe).Error)
}

// Update replaces the stored recipe wholesale: scalar fields, the tag
// set and every ingredient line. Old lines are dropped and the incoming
// ones inserted fresh inside one transaction, so a failed update leaves
// the previous state intact.
func (s *GormRecipeStore) Update(recipe *model.Recipe) error {
	return translateDBError(s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Recipe{}).Where("id = ?", recipe.Id).Updates(map[string]interface{}{
			"name":         recipe.Name,
			"image":        recipe.Image,
			"text":         recipe.Text,
			"cooking_time": recipe.CookingTime,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		// Omit the tag rows themselves, same as Create: only links move
		if err := tx.Model(&model.Recipe{Id: recipe.Id}).Omit("Tags.*").Association("Tags").Replace(recipe.Tags); err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.Id).Delete(&model.IngredientLine{}).Error; err != nil {
			return err
		}
		for _, line := range recipe.Ingredients {
			line.Id = uuid.New().String()
			line.RecipeID = recipe.Id
		}
		if len(recipe.Ingredients) == 0 {
			return nil
		}
		return tx.Create(recipe.Ingredients).Error
	}))
}

// Delete removes the recipe and everything hanging off it: ingredient
// lines, tag links and every user's cart/favorite rows, in one
// transaction. The DB-level cascades cover the same ground; deleting
// explicitly keeps the behavior identical under test doubles.
func (s *GormRecipeStore) Delete(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", id).Delete(&model.Recipe{})
		if result.Error != nil {
			return translateDBError(result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&model.IngredientLine{}).Error; err != nil {
			return translateDBError(err)
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&model.UserRecipeRelation{}).Error; err != nil {
			return translateDBError(err)
		}
		return translateDBError(tx.Exec(`DELETE FROM "recipe_tags" WHERE recipe_id = ?`, id).Error)
	})
}
