package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/petmily/petmily-api/internal/app/controllers"
	"github.com/petmily/petmily-api/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	volunteerController *controllers.VolunteerController,
	restaurantController *controllers.RestaurantController,
	postController *controllers.PostController,
	attendanceController *controllers.AttendanceController,
	uploadController *controllers.UploadController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/signup", authController.Signup)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.Refresh)
		auth.POST("/logout", authController.Logout)
	}

	// --- Public browse routes ---
	volunteerPosts := v1.Group("/volunteer-posts")
	{
		volunteerPosts.GET("", volunteerController.List)
		// Detail view marks the viewer's participation when a token is present
		volunteerPosts.GET("/:id", authMiddleware.OptionalJWTAuth(), volunteerController.Get)
		volunteerPosts.GET("/:id/participants", volunteerController.Participants)
	}

	restaurants := v1.Group("/restaurants")
	{
		restaurants.GET("", restaurantController.List)
		restaurants.GET("/regions", restaurantController.Regions)
	}

	v1.GET("/posts", postController.List)

	// The board fills in the viewer's own state when a token is present
	v1.GET("/attendance/today", authMiddleware.OptionalJWTAuth(), attendanceController.Today)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		users := authenticated.Group("/users")
		{
			users.GET("/me", userController.Me)
			users.GET("/me/stats", userController.MyStats)
		}

		volunteerProtected := authenticated.Group("/volunteer-posts")
		{
			volunteerProtected.POST("", volunteerController.Create)
			volunteerProtected.PUT("/:id", volunteerController.Update)
			volunteerProtected.DELETE("/:id", volunteerController.Delete)
			// Liking requires login; the client redirects anonymous users
			volunteerProtected.POST("/:id/like", volunteerController.Like)
			volunteerProtected.POST("/:id/participants", volunteerController.Join)
			volunteerProtected.DELETE("/:id/participants", volunteerController.Leave)
		}

		restaurantsProtected := authenticated.Group("/restaurants")
		{
			restaurantsProtected.POST("", restaurantController.Create)
			restaurantsProtected.DELETE("/:id", restaurantController.Delete)
			restaurantsProtected.POST("/:id/like", restaurantController.Like)
		}

		postsProtected := authenticated.Group("/posts")
		{
			postsProtected.POST("", postController.Create)
			postsProtected.DELETE("/:id", postController.Delete)
			postsProtected.POST("/:id/like", postController.Like)
		}

		authenticated.POST("/attendance", attendanceController.CheckIn)

		authenticated.POST("/uploads/images", uploadController.UploadImage)
	}
}
