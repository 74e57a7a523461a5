package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/OmarHamdi11/blog-rest-api/errs"
	"github.com/OmarHamdi11/blog-rest-api/models"
	"github.com/OmarHamdi11/blog-rest-api/services"
)

type commentHandler struct {
	responder Responder
	logger    zerolog.Logger
	comments  *services.CommentService
}

func newCommentHandler(comments *services.CommentService) commentHandler {
	logger := log.With().Str("handlerName", "commentHandler").Logger()

	return commentHandler{
		responder: NewResponder(logger),
		logger:    logger,
		comments:  comments,
	}
}

func (h commentHandler) createComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := parseIDParam(r, "postId")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var dto models.CommentDTO
		if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode comment request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		created, err := h.comments.Create(postID, dto)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, created)
	}
}

func (h commentHandler) getCommentsByPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := parseIDParam(r, "postId")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		query := r.URL.Query()
		page, err := h.comments.GetByPostID(
			postID,
			query.Get("pageNo"),
			query.Get("pageSize"),
			query.Get("sortBy"),
			query.Get("sortDir"),
		)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, page)
	}
}

func (h commentHandler) getComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, commentID, err := commentPathIDs(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		comment, err := h.comments.GetByID(postID, commentID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, comment)
	}
}

func (h commentHandler) updateComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, commentID, err := commentPathIDs(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var dto models.CommentDTO
		if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode comment request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		updated, err := h.comments.Update(postID, commentID, dto)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

func (h commentHandler) patchComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, commentID, err := commentPathIDs(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		decoder := json.NewDecoder(r.Body)
		decoder.UseNumber()
		var payload map[string]any
		if err := decoder.Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode patch payload")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		patched, err := h.comments.Patch(postID, commentID, payload)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, patched)
	}
}

func (h commentHandler) deleteComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, commentID, err := commentPathIDs(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.comments.Delete(postID, commentID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "comment deleted successfully",
		})
	}
}

func commentPathIDs(r *http.Request) (postID, commentID int64, err error) {
	postID, err = parseIDParam(r, "postId")
	if err != nil {
		return 0, 0, err
	}
	commentID, err = parseIDParam(r, "commentId")
	if err != nil {
		return 0, 0, err
	}
	return postID, commentID, nil
}
