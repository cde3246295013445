package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/shopcore-api/controllers"
	"github.com/shopcore-api/middleware"
)

// SetupRoutes registers every API route on the router
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	users *controllers.UserController,
	products *controllers.ProductController,
	orders *controllers.OrderController,
) {
	router.GET("/", controllers.HealthCheck)

	authed := middleware.AuthMiddleware(jwtSecret)
	adminOnly := middleware.AdminMiddleware()

	userGroup := router.Group("/users")
	{
		userGroup.POST("/sign-up", users.SignUp)
		userGroup.POST("/auth", users.LogIn)
		userGroup.PUT("/:id", authed, users.Update)
		userGroup.PUT("/suspend/:id", authed, adminOnly, users.Suspend)
		userGroup.PUT("/active/:id", authed, adminOnly, users.Activate)
		userGroup.PUT("/delete/:id", authed, adminOnly, users.Delete)
	}

	productGroup := router.Group("/products")
	{
		productGroup.GET("", products.List)
		productGroup.GET("/:id", products.Get)
		productGroup.POST("", products.Create)
		productGroup.PUT("/:id", products.Update)
		productGroup.DELETE("/:id", products.Delete)
	}

	orderGroup := router.Group("/orders")
	{
		orderGroup.GET("/:id", orders.Get)
		orderGroup.GET("/client/:id", orders.GetByClient)
		orderGroup.POST("", orders.Create)
		orderGroup.PUT("/process/:id", orders.Process)
		orderGroup.PUT("/deliver/:id", orders.Deliver)
		orderGroup.PUT("/complete/:id", orders.Complete)
		orderGroup.PUT("/cancel/:id", orders.Cancel)
	}
}
