// Package router assembles the HTTP surface: middleware, services, handlers
// and routes.
package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	_ "gastos/internal/docs" // swagger docs
	"gastos/internal/handlers"
	"gastos/internal/i18n"
	"gastos/internal/middleware"
	"gastos/internal/services"
	"gastos/internal/token"
	"gastos/internal/validator"
)

// Options configures the router.
type Options struct {
	Tokens      *token.Service
	Validator   *validator.Validator
	AdminAPIKey string
	Locale      language.Tag
	// Health is pinged by /api/health.
	Health handlers.Pinger
}

// New builds the Gin engine with every route registered.
func New(db *gorm.DB, opts Options) *gin.Engine {
	// Services
	userService := services.NewUserService(db, opts.Validator)
	namespaceService := services.NewNamespaceService(db, opts.Validator)
	categoryService := services.NewCategoryService(db, opts.Validator)
	expenseService := services.NewExpenseService(db, opts.Validator)
	auditService := services.NewAuditService(db)

	// Handlers
	healthHandler := handlers.NewHealthHandler(opts.Health)
	authHandler := handlers.NewAuthHandler(userService, opts.Tokens, auditService)
	namespaceHandler := handlers.NewNamespaceHandler(namespaceService, auditService)
	categoryHandler := handlers.NewCategoryHandler(categoryService, auditService)
	expenseHandler := handlers.NewExpenseHandler(expenseService, auditService)

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(i18n.Middleware(opts.Locale))
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/", healthHandler.Root)
	router.GET("/api/health", healthHandler.Health)

	// Public routes
	users := router.Group("/users")
	users.POST("/register", authHandler.Register)
	users.POST("/login", authHandler.Login)
	users.GET("/me", middleware.AuthMiddleware(opts.Tokens), authHandler.GetProfile)

	admin := router.Group("/admin")
	admin.Use(middleware.AdminAuthMiddleware(opts.AdminAPIKey))
	admin.POST("/users", authHandler.Provision)

	// Protected routes
	namespaces := router.Group("/namespaces")
	namespaces.Use(middleware.AuthMiddleware(opts.Tokens))
	namespaces.POST("", namespaceHandler.CreateNamespace)
	namespaces.GET("", namespaceHandler.ListNamespaces)
	namespaces.PUT("/:namespaceId", namespaceHandler.UpdateNamespace)
	namespaces.DELETE("/:namespaceId", namespaceHandler.DeleteNamespace)

	categories := namespaces.Group("/:namespaceId/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.ListCategories)
	categories.PUT("/:categoryId", categoryHandler.UpdateCategory)
	categories.DELETE("/:categoryId", categoryHandler.DeleteCategory)

	expenses := categories.Group("/:categoryId/expenses")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.ListExpenses)
	expenses.GET("/:expenseId", expenseHandler.GetExpense)
	expenses.PUT("/:expenseId", expenseHandler.UpdateExpense)
	expenses.DELETE("/:expenseId", expenseHandler.DeleteExpense)

	return router
}
