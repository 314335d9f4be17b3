package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/lembranca/memorial-backend/internal/handler"
	"github.com/lembranca/memorial-backend/internal/middleware"
	"github.com/lembranca/memorial-backend/pkg/jwt"
)

// Setup configures all API routes
func Setup(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	memorialHandler *handler.MemorialHandler,
	photoHandler *handler.PhotoHandler,
	messageHandler *handler.MessageHandler,
	activityHandler *handler.ActivityHandler,
	uploadHandler *handler.UploadHandler,
	jwtManager *jwt.Manager,
) {
	api := router.Group("/api/v1")

	auth := middleware.JWTAuth(jwtManager)
	optionalAuth := middleware.OptionalJWTAuth(jwtManager)

	// Authentication
	authGroup := api.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.GET("/me", auth, authHandler.Me)
	authGroup.POST("/logout", auth, authHandler.Logout)

	// Memorial profiles
	memorials := api.Group("/memorials")
	memorials.GET("", memorialHandler.GetAll)
	memorials.GET("/search", memorialHandler.Search)
	memorials.GET("/mine", auth, memorialHandler.GetMyProfiles)
	memorials.POST("", auth, memorialHandler.Create)
	memorials.GET("/:id", memorialHandler.GetByID)
	memorials.PUT("/:id", auth, memorialHandler.Update)
	memorials.DELETE("/:id", auth, memorialHandler.Delete)

	// Photo gallery (nested under the memorial)
	memorials.POST("/:id/photos", auth, photoHandler.Add)
	memorials.GET("/:id/photos", photoHandler.GetByMemorial)
	api.DELETE("/photos/:id", auth, photoHandler.Delete)

	// Tribute wall; reads and posts are open to guests, the owner's
	// identity (when present) changes what a read returns
	memorials.POST("/:id/messages", optionalAuth, messageHandler.Add)
	memorials.GET("/:id/messages", optionalAuth, messageHandler.GetByMemorial)

	messages := api.Group("/messages")
	messages.GET("/reported", auth, messageHandler.GetReported)
	messages.POST("/:id/report", messageHandler.Report)
	messages.POST("/:id/hide", auth, messageHandler.Hide)
	messages.POST("/:id/unhide", auth, messageHandler.Unhide)

	// Activity feed
	api.GET("/activities", activityHandler.GetRecent)

	// Uploads
	api.POST("/uploads/photo", auth, uploadHandler.Photo)
}
