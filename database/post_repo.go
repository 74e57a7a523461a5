package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/OmarHamdi11/blog-rest-api/models"
	"github.com/OmarHamdi11/blog-rest-api/services"
)

type PostRepo struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) *PostRepo {
	return &PostRepo{db}
}

// FindByID returns a post by its ID, or nil when it does not exist.
func (r *PostRepo) FindByID(id int64) (*models.Post, error) {
	var post models.Post
	err := r.db.First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// FindPage returns one page of posts under the resolved ordering, plus the
// total number of posts across all pages.
func (r *PostRepo) FindPage(p services.Pageable) ([]models.Post, int64, error) {
	var total int64
	if err := r.db.Model(&models.Post{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.Post
	err := r.db.
		Order(p.OrderClause()).
		Limit(p.PageSize).
		Offset(p.Offset()).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// FindByCategoryID returns all posts referencing the given category.
func (r *PostRepo) FindByCategoryID(categoryID int64) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Where("category_id = ?", categoryID).Order("id ASC").Find(&posts).Error
	return posts, err
}

// ExistsByTitle reports whether another post already uses the given title.
func (r *PostRepo) ExistsByTitle(title string, excludeID int64) (bool, error) {
	var count int64
	err := r.db.Model(&models.Post{}).
		Where("title = ? AND id <> ?", title, excludeID).
		Count(&count).Error
	return count > 0, err
}

// Add inserts a new post into the database
func (r *PostRepo) Add(post *models.Post) error {
	return r.db.Create(post).Error
}

// Update updates an existing post in the database
func (r *PostRepo) Update(post *models.Post) error {
	return r.db.Save(post).Error
}

// Delete removes a post and its comments in a single transaction.
func (r *PostRepo) Delete(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
}
