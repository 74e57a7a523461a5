package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes mounts the public endpoints and the admin-only mutations.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Post("/api/v1/auth/login", handlers.authHandler.login())
		r.Post("/api/v1/auth/signin", handlers.authHandler.login())
		r.Post("/api/v1/auth/register", handlers.authHandler.register())
		r.Post("/api/v1/auth/signup", handlers.authHandler.register())

		r.Get("/api/v1/posts", handlers.postHandler.getAllPosts())
		r.Get("/api/v1/posts/{id}", handlers.postHandler.getPost())
		r.Get("/api/v1/posts/category/{id}", handlers.postHandler.getPostsByCategory())

		r.Get("/api/v1/categories", handlers.categoryHandler.getAllCategories())
		r.Get("/api/v1/categories/{id}", handlers.categoryHandler.getCategory())

		r.Post("/api/v1/posts/{postId}/comments", handlers.commentHandler.createComment())
		r.Get("/api/v1/posts/{postId}/comments", handlers.commentHandler.getCommentsByPost())
		r.Get("/api/v1/posts/{postId}/comments/{commentId}", handlers.commentHandler.getComment())
		r.Put("/api/v1/posts/{postId}/comments/{commentId}", handlers.commentHandler.updateComment())
		r.Delete("/api/v1/posts/{postId}/comments/{commentId}", handlers.commentHandler.deleteComment())
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.authenticate)
		r.Use(authMiddleware.requireAdmin)

		r.Post("/api/v1/posts", handlers.postHandler.createPost())
		r.Put("/api/v1/posts/{id}", handlers.postHandler.updatePost())
		r.Patch("/api/v1/posts/{id}", handlers.postHandler.patchPost())
		r.Delete("/api/v1/posts/{id}", handlers.postHandler.deletePost())

		r.Patch("/api/v1/posts/{postId}/comments/{commentId}", handlers.commentHandler.patchComment())

		r.Post("/api/v1/categories", handlers.categoryHandler.createCategory())
		r.Put("/api/v1/categories/{id}", handlers.categoryHandler.updateCategory())
		r.Delete("/api/v1/categories/{id}", handlers.categoryHandler.deleteCategory())
	})
}
