package store

import (
	"strings"

	"gorm.io/gorm"

	"github.com/foodgram-ru/foodgram-backend/model"
)

// CatalogStore serves the read-only reference data: the product catalog
// and the tag list.
type CatalogStore interface {
	ListProducts(namePrefix string) ([]*model.Product, error)
	GetProduct(id string) (*model.Product, error)
	ListTags() ([]*model.Tag, error)
	GetTag(id string) (*model.Tag, error)
}

type GormCatalogStore struct {
	db *gorm.DB
}

func NewGormCatalogStore(db *gorm.DB) *GormCatalogStore {
	return &GormCatalogStore{db: db}
}

// likeEscaper neutralizes pattern metacharacters in user input so a
// search for "%" matches a literal percent sign, not everything.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (s *GormCatalogStore) ListProducts(namePrefix string) ([]*model.Product, error) {
	products := []*model.Product{}
	query := s.db.Order("name, measurement_unit")
	if namePrefix != "" {
		query = query.Where("name ILIKE ?", likeEscaper.Replace(namePrefix)+"%")
	}
	if err := query.Find(&products).Error; err != nil {
		return nil, translateDBError(err)
	}
	return products, nil
}

func (s *GormCatalogStore) GetProduct(id string) (*model.Product, error) {
	product := model.Product{}
	if err := s.db.Where("id = ?", id).First(&product).Error; err != nil {
		return nil, translateDBError(err)
	}
	return &product, nil
}

func (s *GormCatalogStore) ListTags() ([]*model.Tag, error) {
	tags := []*model.Tag{}
	if err := s.db.Order("slug").Find(&tags).Error; err != nil {
		return nil, translateDBError(err)
	}
	return tags, nil
}

func (s *GormCatalogStore) GetTag(id string) (*model.Tag, error) {
	tag := model.Tag{}
	if err := s.db.Where("id = ?", id).First(&tag).Error; err != nil {
		return nil, translateDBError(err)
	}
	return &tag, nil
}
