package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/OmarHamdi11/blog-rest-api/auth"
	"github.com/OmarHamdi11/blog-rest-api/database"
	"github.com/OmarHamdi11/blog-rest-api/errs"
	"github.com/OmarHamdi11/blog-rest-api/services"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	postHandler     postHandler
	commentHandler  commentHandler
	categoryHandler categoryHandler
	authHandler     authHandler
}

// initializeHandlers wires the repositories into services and the services
// into one handler per resource.
func initializeHandlers(db database.Database, tokens *auth.TokenProvider) *routeHandlers {
	postService := services.NewPostService(db.PostRepo(), db.CategoryRepo())
	commentService := services.NewCommentService(db.CommentRepo(), db.PostRepo())
	categoryService := services.NewCategoryService(db.CategoryRepo())
	authService := services.NewAuthService(db.UserRepo(), tokens)

	return &routeHandlers{
		postHandler:     newPostHandler(postService),
		commentHandler:  newCommentHandler(commentService),
		categoryHandler: newCategoryHandler(categoryService),
		authHandler:     newAuthHandler(authService),
	}
}

// parseIDParam reads a numeric path parameter from the request.
func parseIDParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return 0, errs.NewBadRequestError("missing " + name)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errs.NewBadRequestError("invalid " + name)
	}
	return id, nil
}
