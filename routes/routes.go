package routes

import (
	"net/http"

	"lacarreta/controllers"
	"lacarreta/middlewares"

	"github.com/gin-gonic/gin"
)

// Controllers bundles everything RegisterRoutes wires up.
type Controllers struct {
	Auth     *controllers.AuthController
	Category *controllers.CategoryController
	Menu     *controllers.MenuController
	Order    *controllers.OrderController
}

// RegisterRoutes installs the fixed route table. Exactly three operations are
// protected: create-category, create-menu-item and list-orders. Everything
// else, order placement included, is public.
func RegisterRoutes(r *gin.Engine, jwtSecret string, ctrl Controllers) {
	r.Use(middlewares.CORSMiddleware())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "La Carreta Restaurant API"})
	})

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "healthy", "restaurant": "La Carreta"})
		})

		api.GET("/categories", ctrl.Category.List)
		api.GET("/menu", ctrl.Menu.List)
		api.GET("/menu/category/:categoryId", ctrl.Menu.ListByCategory)
		api.POST("/orders", ctrl.Order.Create)
		api.POST("/admin/login", ctrl.Auth.Login)
	}

	admin := api.Group("", middlewares.AuthMiddleware(jwtSecret, "admin"))
	{
		admin.POST("/categories", ctrl.Category.Create)
		admin.POST("/menu", ctrl.Menu.Create)
		admin.GET("/orders", ctrl.Order.List)
	}
}
