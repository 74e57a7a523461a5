package models

// Wire-facing representations, kept separate from the persisted entities.
// Validation tags mirror the constraints enforced on create, update and patch.

type PostDTO struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title" validate:"required,min=2"`
	Description string       `json:"description" validate:"required,min=10"`
	Content     string       `json:"content" validate:"required"`
	CategoryID  int64        `json:"categoryId" validate:"required"`
	Comments    []CommentDTO `json:"comments,omitempty"`
}

type CommentDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Body  string `json:"body" validate:"required,min=10"`
}

type CategoryDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type RegisterDTO struct {
	Name     string `json:"name" validate:"required"`
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginDTO struct {
	UsernameOrEmail string `json:"usernameOrEmail" validate:"required"`
	Password        string `json:"password" validate:"required"`
}

type TokenDTO struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
}

// PostPage is the paginated listing envelope for posts.
type PostPage struct {
	Content       []PostDTO `json:"content"`
	PageNo        int       `json:"pageNo"`
	PageSize      int       `json:"pageSize"`
	TotalElements int64     `json:"totalElements"`
	TotalPages    int       `json:"totalPages"`
	Last          bool      `json:"last"`
}

// CommentPage is the paginated listing envelope for comments.
type CommentPage struct {
	Content       []CommentDTO `json:"content"`
	PageNo        int          `json:"pageNo"`
	PageSize      int          `json:"pageSize"`
	TotalElements int64        `json:"totalElements"`
	TotalPages    int          `json:"totalPages"`
	Last          bool         `json:"last"`
}

func NewPostDTO(post Post) PostDTO {
	dto := PostDTO{
		ID:          post.ID,
		Title:       post.Title,
		Description: post.Description,
		Content:     post.Content,
		CategoryID:  post.CategoryID,
	}
	for _, comment := range post.Comments {
		dto.Comments = append(dto.Comments, NewCommentDTO(comment))
	}
	return dto
}

func NewCommentDTO(comment Comment) CommentDTO {
	return CommentDTO{
		ID:    comment.ID,
		Name:  comment.Name,
		Email: comment.Email,
		Body:  comment.Body,
	}
}

func NewCategoryDTO(category Category) CategoryDTO {
	return CategoryDTO{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
	}
}
