package routes

import (
	"inkwell/app/controllers"
	"inkwell/app/middleware"
	"inkwell/app/pages"
	"inkwell/app/repositories"
	"inkwell/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// SetupRoutes wires the repositories, services and controllers onto a
// router, using the provided Badger DB.
func SetupRoutes(db *badger.DB) *mux.Router {
	postRepo := repositories.NewBadgerPostRepository(db)
	categoryRepo := repositories.NewBadgerCategoryRepository(db)
	tagRepo := repositories.NewBadgerTagRepository(db)
	imageRepo := repositories.NewBadgerImageRepository(db)
	commentRepo := repositories.NewBadgerCommentRepository(db)
	userRepo := repositories.NewBadgerUserRepository(db)

	queries := services.NewQueryService(postRepo, categoryRepo, tagRepo)
	archives := services.NewArchiveService(categoryRepo)
	search := services.NewSearchService(queries)
	posts := services.NewPostService(postRepo, tagRepo, imageRepo, commentRepo)
	comments := services.NewCommentService(commentRepo, postRepo)

	p := pages.NewPages(queries, archives, search, posts, comments)
	blogController := controllers.NewBlogController(p)
	commentController := controllers.NewCommentController(comments)

	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.CurrentUser(userRepo))

	// Page routes
	router.HandleFunc("/", blogController.Home).Methods("GET")
	router.HandleFunc("/older/{end:[0-9]+}-{next_set:[0-9]+}/", blogController.Older).Methods("GET")
	router.HandleFunc("/about/", blogController.About).Methods("GET")
	router.HandleFunc("/archives/{year:[0-9]{4}}/{month:[0-9]{1,2}}/", blogController.Archive).Methods("GET")
	router.HandleFunc("/categories/{name}/", blogController.Category).Methods("GET")
	router.HandleFunc("/tags/{name}/", blogController.Tags).Methods("GET")
	router.HandleFunc("/searchresults/", blogController.Search).Methods("GET")
	router.HandleFunc("/posts/{id:[0-9]+}/", blogController.Show).Methods("GET")
	router.HandleFunc("/thankyou/{id:[0-9]+}/", blogController.Posted).Methods("GET")

	// Comment submission
	router.HandleFunc("/posts/{id:[0-9]+}/comments", commentController.Create).Methods("POST")

	return router
}
