package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dtroode/bookshelf-server/internal/api/http/handler"
	"github.com/dtroode/bookshelf-server/internal/api/http/middleware"
	"github.com/dtroode/bookshelf-server/internal/logger"
	"github.com/dtroode/bookshelf-server/internal/model"
	"github.com/dtroode/bookshelf-server/internal/service"
)

// Router assembles the HTTP API. Registration, login, the user
// directory and catalog search are public; everything else requires an
// API token.
type Router struct {
	authService    *service.Auth
	bookService    *service.Book
	userService    *service.User
	accessService  *service.Access
	catalogService *service.Catalog
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(
	authService *service.Auth,
	bookService *service.Book,
	userService *service.User,
	accessService *service.Access,
	catalogService *service.Catalog,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		bookService:    bookService,
		userService:    userService,
		accessService:  accessService,
		catalogService: catalogService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register builds the route table with logging and authentication
// middleware attached.
func (r *Router) Register() *mux.Router {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.authService, r.contextManager, r.logger)

	root := mux.NewRouter()
	root.Use(logging.Handle)

	api := root.PathPrefix("/api").Subrouter()

	authHandler := handler.NewAuth(r.authService, r.logger)
	api.HandleFunc("/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)

	userHandler := handler.NewUser(r.userService, r.logger)
	api.HandleFunc("/users", userHandler.List).Methods(http.MethodGet)

	catalogHandler := handler.NewCatalog(r.catalogService, r.logger)
	api.HandleFunc("/catalog/search", catalogHandler.Search).Methods(http.MethodGet)

	protected := api.NewRoute().Subrouter()
	protected.Use(authenticate.Handle)

	bookHandler := handler.NewBook(r.bookService, r.contextManager, r.logger)
	protected.HandleFunc("/books", bookHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/books", bookHandler.ListOwn).Methods(http.MethodGet)
	protected.HandleFunc("/books/{id}", bookHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/books/{id}", bookHandler.Delete).Methods(http.MethodDelete)
	protected.HandleFunc("/users/{id}/books", bookHandler.ListByOwner).Methods(http.MethodGet)

	accessHandler := handler.NewAccess(r.accessService, r.contextManager, r.logger)
	protected.HandleFunc("/access", accessHandler.Grant).Methods(http.MethodPost)

	return root
}
