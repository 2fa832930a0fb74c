package routes

import (
	"net/http"

	"multiblog/app/auth"
	"multiblog/app/config"
	"multiblog/app/controllers"
	"multiblog/app/middleware"
	"multiblog/app/repositories"
	"multiblog/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// SetupRoutes wires the application's routes onto a router, using the
// provided Badger DB.
func SetupRoutes(db *badger.DB, cfg *config.Config, log zerolog.Logger) *mux.Router {
	return setupRoutes(db, cfg, log, "")
}

// SetupRoutesWithPath is SetupRoutes with a custom base path for
// template lookup; tests use it to point at generated views.
func SetupRoutesWithPath(db *badger.DB, cfg *config.Config, log zerolog.Logger, basePath string) *mux.Router {
	return setupRoutes(db, cfg, log, basePath)
}

func setupRoutes(db *badger.DB, cfg *config.Config, log zerolog.Logger, basePath string) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recoverer(log))

	userRepo := repositories.NewBadgerUserRepository(db)
	postRepo := repositories.NewBadgerPostRepository(db)
	commentRepo := repositories.NewBadgerCommentRepository(db)
	likeRepo := repositories.NewBadgerLikeRepository(db)

	userService := services.NewUserService(userRepo)
	postService := services.NewPostService(postRepo, commentRepo, likeRepo)
	commentService := services.NewCommentService(postRepo, commentRepo)

	sessions := auth.NewSessions(auth.NewCodec(cfg.Auth.CookieSecret), userRepo)

	authController := controllers.NewAuthController(userService, sessions, basePath)
	blogController := controllers.NewBlogController(postService, commentService, sessions, basePath)

	// Serve static files
	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	router.HandleFunc("/", blogController.Front).Methods("GET")
	router.HandleFunc("/welcome", authController.Welcome).Methods("GET")

	router.HandleFunc("/blog", blogController.OldFront).Methods("GET")
	router.HandleFunc("/blog/", blogController.OldFront).Methods("GET")
	router.HandleFunc("/blog/newpost", blogController.NewPostForm).Methods("GET")
	router.HandleFunc("/blog/newpost", blogController.NewPost).Methods("POST")
	router.HandleFunc("/blog/{id:[0-9]+}", blogController.Show).Methods("GET")

	router.HandleFunc("/signup", authController.SignupForm).Methods("GET")
	router.HandleFunc("/signup", authController.Signup).Methods("POST")
	router.HandleFunc("/login", authController.LoginForm).Methods("GET")
	router.HandleFunc("/login", authController.Login).Methods("POST")
	router.HandleFunc("/logout", authController.Logout).Methods("GET")

	router.HandleFunc("/edit/{id:[0-9]+}", blogController.EditForm).Methods("GET")
	router.HandleFunc("/edit", blogController.Edit).Methods("POST")
	router.HandleFunc("/like/{id:[0-9]+}", blogController.Like).Methods("GET")
	router.HandleFunc("/comment/{id:[0-9]+}", blogController.CommentForm).Methods("GET")
	router.HandleFunc("/comment/{id:[0-9]+}", blogController.Comment).Methods("POST")
	router.HandleFunc("/delete/{id:[0-9]+}", blogController.Delete).Methods("GET")
	router.HandleFunc("/deletecomment/{postId:[0-9]+}/{commentId:[0-9]+}", blogController.DeleteComment).Methods("GET")

	return router
}

// StartServer starts the HTTP server on the configured address with the
// given router.
func StartServer(cfg *config.Config, router http.Handler) error {
	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	return srv.ListenAndServe()
}
