package services

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/OmarHamdi11/blog-rest-api/errs"
	"github.com/OmarHamdi11/blog-rest-api/models"
)

// CommentService implements the comment operations. Every read or mutation of
// an individual comment is gated by the comment/post consistency check.
type CommentService struct {
	logger      zerolog.Logger
	commentRepo CommentRepository
	postRepo    PostRepository
}

func NewCommentService(commentRepo CommentRepository, postRepo PostRepository) *CommentService {
	return &CommentService{
		logger:      log.With().Str("serviceName", "commentService").Logger(),
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// Create stores a new comment under an existing post.
func (s *CommentService) Create(postID int64, dto models.CommentDTO) (models.CommentDTO, error) {
	if err := checkStruct(dto); err != nil {
		return models.CommentDTO{}, err
	}

	if err := s.resolvePost(postID); err != nil {
		return models.CommentDTO{}, err
	}

	comment := models.Comment{
		Name:   dto.Name,
		Email:  dto.Email,
		Body:   dto.Body,
		PostID: postID,
	}
	if err := s.commentRepo.Add(&comment); err != nil {
		return models.CommentDTO{}, errs.NewDatabaseError("create comment", "comments", err)
	}

	s.logger.Info().Int64("postId", postID).Int64("commentId", comment.ID).Msg("comment created")
	return models.NewCommentDTO(comment), nil
}

// GetByPostID returns the requested page of a post's comments.
func (s *CommentService) GetByPostID(postID int64, pageNo, pageSize, sortBy, sortDir string) (models.CommentPage, error) {
	if err := s.resolvePost(postID); err != nil {
		return models.CommentPage{}, err
	}

	pageable, err := ResolvePageable(pageNo, pageSize, sortBy, sortDir, commentSortColumns)
	if err != nil {
		return models.CommentPage{}, err
	}

	comments, total, err := s.commentRepo.FindPageByPostID(postID, pageable)
	if err != nil {
		return models.CommentPage{}, errs.NewDatabaseError("find comments", "comments", err)
	}

	content := make([]models.CommentDTO, 0, len(comments))
	for _, comment := range comments {
		content = append(content, models.NewCommentDTO(comment))
	}

	meta := newPageMeta(pageable, total)
	return models.CommentPage{
		Content:       content,
		PageNo:        meta.PageNo,
		PageSize:      meta.PageSize,
		TotalElements: meta.TotalElements,
		TotalPages:    meta.TotalPages,
		Last:          meta.Last,
	}, nil
}

func (s *CommentService) GetByID(postID, commentID int64) (models.CommentDTO, error) {
	comment, err := s.validateCommentWithPost(postID, commentID)
	if err != nil {
		return models.CommentDTO{}, err
	}
	return models.NewCommentDTO(*comment), nil
}

// Update replaces all mutable fields of a comment. The owning post reference
// never changes.
func (s *CommentService) Update(postID, commentID int64, dto models.CommentDTO) (models.CommentDTO, error) {
	if err := checkStruct(dto); err != nil {
		return models.CommentDTO{}, err
	}

	comment, err := s.validateCommentWithPost(postID, commentID)
	if err != nil {
		return models.CommentDTO{}, err
	}

	comment.Name = dto.Name
	comment.Email = dto.Email
	comment.Body = dto.Body

	if err := s.commentRepo.Update(comment); err != nil {
		return models.CommentDTO{}, errs.NewDatabaseError("update comment", "comments", err)
	}

	return models.NewCommentDTO(*comment), nil
}

// Patch applies a partial update to a comment after the consistency check.
func (s *CommentService) Patch(postID, commentID int64, payload map[string]any) (models.CommentDTO, error) {
	comment, err := s.validateCommentWithPost(postID, commentID)
	if err != nil {
		return models.CommentDTO{}, err
	}

	patched, err := applyCommentPatch(models.NewCommentDTO(*comment), payload)
	if err != nil {
		return models.CommentDTO{}, err
	}

	if err := checkStruct(patched); err != nil {
		return models.CommentDTO{}, err
	}

	comment.Name = patched.Name
	comment.Email = patched.Email
	comment.Body = patched.Body

	if err := s.commentRepo.Update(comment); err != nil {
		return models.CommentDTO{}, errs.NewDatabaseError("patch comment", "comments", err)
	}

	return models.NewCommentDTO(*comment), nil
}

func (s *CommentService) Delete(postID, commentID int64) error {
	if _, err := s.validateCommentWithPost(postID, commentID); err != nil {
		return err
	}

	if err := s.commentRepo.Delete(commentID); err != nil {
		return errs.NewDatabaseError("delete comment", "comments", err)
	}

	s.logger.Info().Int64("postId", postID).Int64("commentId", commentID).Msg("comment deleted")
	return nil
}

// validateCommentWithPost resolves both entities and verifies the comment
// belongs to the post. The post is checked first, then the comment, then the
// relation, so the caller always learns about a missing post before anything
// else.
func (s *CommentService) validateCommentWithPost(postID, commentID int64) (*models.Comment, error) {
	if err := s.resolvePost(postID); err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.FindByID(commentID)
	if err != nil {
		return nil, errs.NewDatabaseError("find comment", "comments", err)
	}
	if comment == nil {
		return nil, errs.NewNotFoundError("Comment", commentID)
	}

	if comment.PostID != postID {
		return nil, errs.NewConflictError("Comment does not belong to post")
	}

	return comment, nil
}

func (s *CommentService) resolvePost(postID int64) error {
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		return errs.NewDatabaseError("find post", "posts", err)
	}
	if post == nil {
		return errs.NewNotFoundError("Post", postID)
	}
	return nil
}
