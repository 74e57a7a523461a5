package database

import (
	"gorm.io/gorm"

	"github.com/OmarHamdi11/blog-rest-api/models"
)

type Database struct {
	postRepo     *PostRepo
	commentRepo  *CommentRepo
	categoryRepo *CategoryRepo
	userRepo     *UserRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		postRepo:     NewPostRepo(db),
		commentRepo:  NewCommentRepo(db),
		categoryRepo: NewCategoryRepo(db),
		userRepo:     NewUserRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) PostRepo() *PostRepo {
	return d.postRepo
}

func (d Database) CommentRepo() *CommentRepo {
	return d.commentRepo
}

func (d Database) CategoryRepo() *CategoryRepo {
	return d.categoryRepo
}

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

// Migrate creates or updates the schema for all entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Category{},
		&models.Post{},
		&models.Comment{},
		&models.User{},
	)
}
