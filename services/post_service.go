package services

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/OmarHamdi11/blog-rest-api/errs"
	"github.com/OmarHamdi11/blog-rest-api/models"
)

// PostService implements the post operations: CRUD, merge-patch, paged
// listing and listing by category.
type PostService struct {
	logger       zerolog.Logger
	postRepo     PostRepository
	categoryRepo CategoryRepository
}

func NewPostService(postRepo PostRepository, categoryRepo CategoryRepository) *PostService {
	return &PostService{
		logger:       log.With().Str("serviceName", "postService").Logger(),
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
	}
}

// Create stores a new post. The identifier is server-assigned; any id in the
// payload is discarded. The referenced category must exist and the title must
// be unique across the store.
func (s *PostService) Create(dto models.PostDTO) (models.PostDTO, error) {
	if err := checkStruct(dto); err != nil {
		return models.PostDTO{}, err
	}

	if err := s.resolveCategory(dto.CategoryID); err != nil {
		return models.PostDTO{}, err
	}

	if err := s.checkTitleUnique(dto.Title, 0); err != nil {
		return models.PostDTO{}, err
	}

	post := models.Post{
		Title:       dto.Title,
		Description: dto.Description,
		Content:     dto.Content,
		CategoryID:  dto.CategoryID,
	}
	if err := s.postRepo.Add(&post); err != nil {
		return models.PostDTO{}, errs.NewDatabaseError("create post", "posts", err)
	}

	s.logger.Info().Int64("postId", post.ID).Msg("post created")
	return models.NewPostDTO(post), nil
}

// GetAll returns the requested page of posts under the requested ordering.
func (s *PostService) GetAll(pageNo, pageSize, sortBy, sortDir string) (models.PostPage, error) {
	pageable, err := ResolvePageable(pageNo, pageSize, sortBy, sortDir, postSortColumns)
	if err != nil {
		return models.PostPage{}, err
	}

	posts, total, err := s.postRepo.FindPage(pageable)
	if err != nil {
		return models.PostPage{}, errs.NewDatabaseError("find posts", "posts", err)
	}

	content := make([]models.PostDTO, 0, len(posts))
	for _, post := range posts {
		content = append(content, models.NewPostDTO(post))
	}

	meta := newPageMeta(pageable, total)
	return models.PostPage{
		Content:       content,
		PageNo:        meta.PageNo,
		PageSize:      meta.PageSize,
		TotalElements: meta.TotalElements,
		TotalPages:    meta.TotalPages,
		Last:          meta.Last,
	}, nil
}

func (s *PostService) GetByID(id int64) (models.PostDTO, error) {
	post, err := s.findPost(id)
	if err != nil {
		return models.PostDTO{}, err
	}
	return models.NewPostDTO(*post), nil
}

// Update replaces all mutable fields of an existing post.
func (s *PostService) Update(id int64, dto models.PostDTO) (models.PostDTO, error) {
	if err := checkStruct(dto); err != nil {
		return models.PostDTO{}, err
	}

	post, err := s.findPost(id)
	if err != nil {
		return models.PostDTO{}, err
	}

	if err := s.resolveCategory(dto.CategoryID); err != nil {
		return models.PostDTO{}, err
	}

	if err := s.checkTitleUnique(dto.Title, id); err != nil {
		return models.PostDTO{}, err
	}

	post.Title = dto.Title
	post.Description = dto.Description
	post.Content = dto.Content
	post.CategoryID = dto.CategoryID

	if err := s.postRepo.Update(post); err != nil {
		return models.PostDTO{}, errs.NewDatabaseError("update post", "posts", err)
	}

	return models.NewPostDTO(*post), nil
}

// Patch applies a partial update. Only the fields named in the payload are
// overwritten; the merged result is validated with the same rules as Update,
// and a changed category reference is re-resolved before persisting.
func (s *PostService) Patch(id int64, payload map[string]any) (models.PostDTO, error) {
	post, err := s.findPost(id)
	if err != nil {
		return models.PostDTO{}, err
	}

	patched, err := applyPostPatch(models.NewPostDTO(*post), payload)
	if err != nil {
		return models.PostDTO{}, err
	}

	if err := checkStruct(patched); err != nil {
		return models.PostDTO{}, err
	}

	if _, touched := payload["categoryId"]; touched {
		if err := s.resolveCategory(patched.CategoryID); err != nil {
			return models.PostDTO{}, err
		}
	}

	if patched.Title != post.Title {
		if err := s.checkTitleUnique(patched.Title, id); err != nil {
			return models.PostDTO{}, err
		}
	}

	post.Title = patched.Title
	post.Description = patched.Description
	post.Content = patched.Content
	post.CategoryID = patched.CategoryID

	if err := s.postRepo.Update(post); err != nil {
		return models.PostDTO{}, errs.NewDatabaseError("patch post", "posts", err)
	}

	return models.NewPostDTO(*post), nil
}

// Delete removes a post and, with it, every comment it owns.
func (s *PostService) Delete(id int64) error {
	if _, err := s.findPost(id); err != nil {
		return err
	}

	if err := s.postRepo.Delete(id); err != nil {
		return errs.NewDatabaseError("delete post", "posts", err)
	}

	s.logger.Info().Int64("postId", id).Msg("post deleted")
	return nil
}

// GetByCategoryID lists every post in a category. The category must exist.
func (s *PostService) GetByCategoryID(categoryID int64) ([]models.PostDTO, error) {
	if err := s.resolveCategory(categoryID); err != nil {
		return nil, err
	}

	posts, err := s.postRepo.FindByCategoryID(categoryID)
	if err != nil {
		return nil, errs.NewDatabaseError("find posts by category", "posts", err)
	}

	content := make([]models.PostDTO, 0, len(posts))
	for _, post := range posts {
		content = append(content, models.NewPostDTO(post))
	}
	return content, nil
}

func (s *PostService) findPost(id int64) (*models.Post, error) {
	post, err := s.postRepo.FindByID(id)
	if err != nil {
		return nil, errs.NewDatabaseError("find post", "posts", err)
	}
	if post == nil {
		return nil, errs.NewNotFoundError("Post", id)
	}
	return post, nil
}

func (s *PostService) resolveCategory(id int64) error {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		return errs.NewDatabaseError("find category", "categories", err)
	}
	if category == nil {
		return errs.NewNotFoundError("Category", id)
	}
	return nil
}

func (s *PostService) checkTitleUnique(title string, excludeID int64) error {
	taken, err := s.postRepo.ExistsByTitle(title, excludeID)
	if err != nil {
		return errs.NewDatabaseError("check post title", "posts", err)
	}
	if taken {
		return errs.NewConflictError("post title already exists")
	}
	return nil
}
