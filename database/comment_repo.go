package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/OmarHamdi11/blog-rest-api/models"
	"github.com/OmarHamdi11/blog-rest-api/services"
)

type CommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *CommentRepo {
	return &CommentRepo{db}
}

// FindByID returns a comment by its ID, or nil when it does not exist.
func (r *CommentRepo) FindByID(id int64) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.First(&comment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// FindPageByPostID returns one page of a post's comments under the resolved
// ordering, plus the post's total comment count.
func (r *CommentRepo) FindPageByPostID(postID int64, p services.Pageable) ([]models.Comment, int64, error) {
	var total int64
	if err := r.db.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []models.Comment
	err := r.db.
		Where("post_id = ?", postID).
		Order(p.OrderClause()).
		Limit(p.PageSize).
		Offset(p.Offset()).
		Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

// Add inserts a new comment into the database
func (r *CommentRepo) Add(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// Update updates an existing comment in the database
func (r *CommentRepo) Update(comment *models.Comment) error {
	return r.db.Save(comment).Error
}

// Delete removes a comment from the database by id
func (r *CommentRepo) Delete(id int64) error {
	return r.db.Delete(&models.Comment{}, id).Error
}
