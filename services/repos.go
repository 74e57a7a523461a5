package services

import (
	"github.com/OmarHamdi11/blog-rest-api/models"
)

// Repository collaborators, injected into each service's constructor. The
// database package provides the gorm-backed implementations; tests provide
// in-memory ones. Finders return (nil, nil) when the entity does not exist.

type PostRepository interface {
	FindByID(id int64) (*models.Post, error)
	FindPage(p Pageable) ([]models.Post, int64, error)
	FindByCategoryID(categoryID int64) ([]models.Post, error)
	ExistsByTitle(title string, excludeID int64) (bool, error)
	Add(post *models.Post) error
	Update(post *models.Post) error
	Delete(id int64) error
}

type CommentRepository interface {
	FindByID(id int64) (*models.Comment, error)
	FindPageByPostID(postID int64, p Pageable) ([]models.Comment, int64, error)
	Add(comment *models.Comment) error
	Update(comment *models.Comment) error
	Delete(id int64) error
}

type CategoryRepository interface {
	FindByID(id int64) (*models.Category, error)
	FindAll() ([]models.Category, error)
	Add(category *models.Category) error
	Update(category *models.Category) error
	Delete(id int64) error
}

type UserRepository interface {
	FindByUsernameOrEmail(login string) (*models.User, error)
	ExistsByUsername(username string) (bool, error)
	ExistsByEmail(email string) (bool, error)
	Add(user *models.User) error
}
