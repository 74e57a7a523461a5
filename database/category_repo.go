package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/OmarHamdi11/blog-rest-api/models"
)

type CategoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db}
}

// FindByID returns a category by its ID, or nil when it does not exist.
func (r *CategoryRepo) FindByID(id int64) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// FindAll returns all categories ordered by id.
func (r *CategoryRepo) FindAll() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order("id ASC").Find(&categories).Error
	return categories, err
}

// Add inserts a new category into the database
func (r *CategoryRepo) Add(category *models.Category) error {
	return r.db.Create(category).Error
}

// Update updates an existing category in the database
func (r *CategoryRepo) Update(category *models.Category) error {
	return r.db.Save(category).Error
}

// Delete removes a category from the database by id. Posts referencing it
// are left as they are.
func (r *CategoryRepo) Delete(id int64) error {
	return r.db.Delete(&models.Category{}, id).Error
}
