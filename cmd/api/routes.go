package main

import (
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"

	"github.com/alumnet/backend/internal/pkg/middleware"
	"github.com/alumnet/backend/internal/pkg/models"
	albumHTTP "github.com/alumnet/backend/services/albums/handler/http"
	authHTTP "github.com/alumnet/backend/services/auth/handler/http"
	eventHTTP "github.com/alumnet/backend/services/events/handler/http"
	groupHTTP "github.com/alumnet/backend/services/groups/handler/http"
	wsHandler "github.com/alumnet/backend/services/notifications/handler/ws"
	postHTTP "github.com/alumnet/backend/services/posts/handler/http"
	userHTTP "github.com/alumnet/backend/services/users/handler/http"
)

type routeHandlers struct {
	auth   *authHTTP.AuthHandler
	users  *userHTTP.UserHandler
	posts  *postHTTP.PostHandler
	groups *groupHTTP.GroupHandler
	events *eventHTTP.EventHandler
	albums *albumHTTP.AlbumHandler
	ws     *wsHandler.WSHandler
}

func registerRoutes(e *echo.Echo, cfg *models.Config, redisClient *redis.Client, h routeHandlers) {
	api := e.Group("/api")

	// Public auth endpoints, rate limited per caller
	auth := api.Group("/auth")
	if cfg.RateLimit.Enabled {
		auth.Use(middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
			RedisClient: redisClient,
			Key:         "ratelimit:auth",
			Limit:       cfg.RateLimit.Limit,
			Period:      cfg.RateLimit.Period,
		}))
	}
	auth.POST("/check-status", h.auth.CheckStatus)
	auth.POST("/request-otp", h.auth.RequestOTP)
	auth.POST("/verify-otp", h.auth.VerifyOTP)
	auth.POST("/refresh-token", h.auth.RefreshToken)
	auth.POST("/logout", h.auth.Logout)

	// Authenticated endpoints
	authed := api.Group("", middleware.JWTAuthMiddleware(cfg.JWT))

	users := authed.Group("/users")
	users.GET("/me", h.users.Me)
	users.PUT("/me", h.users.UpdateMe)
	users.POST("/me/avatar", h.users.UploadAvatar)
	users.GET("/me/groups", h.groups.MyGroups)
	users.GET("/:id", h.users.GetUser)

	posts := authed.Group("/posts")
	posts.POST("", h.posts.CreatePost)
	posts.GET("", h.posts.GetFeed)
	posts.GET("/:id", h.posts.GetPost)
	posts.DELETE("/:id", h.posts.DeletePost)
	posts.POST("/:id/media", h.posts.UploadMedia)
	posts.POST("/:id/like", h.posts.LikePost)
	posts.DELETE("/:id/like", h.posts.UnlikePost)
	posts.POST("/:id/comments", h.posts.AddComment)
	posts.GET("/:id/comments", h.posts.ListComments)
	posts.DELETE("/:id/comments/:commentId", h.posts.DeleteComment)

	adminOnly := middleware.AdminOnly()

	groups := authed.Group("/groups")
	groups.GET("", h.groups.ListGroups)
	groups.GET("/:id", h.groups.GetGroup)
	groups.POST("", h.groups.CreateGroup, adminOnly)
	groups.PUT("/:id", h.groups.UpdateGroup, adminOnly)
	groups.DELETE("/:id", h.groups.DeleteGroup, adminOnly)
	groups.POST("/:id/members/:userId", h.groups.AddMember, adminOnly)
	groups.DELETE("/:id/members/:userId", h.groups.RemoveMember, adminOnly)

	events := authed.Group("/events")
	events.GET("", h.events.ListEvents)
	events.GET("/:id", h.events.GetEvent)
	events.POST("", h.events.CreateEvent, adminOnly)
	events.PUT("/:id", h.events.UpdateEvent, adminOnly)
	events.DELETE("/:id", h.events.DeleteEvent, adminOnly)
	events.PUT("/:id/groups", h.events.AssignGroups, adminOnly)

	albums := authed.Group("/albums")
	albums.GET("", h.albums.ListAlbums)
	albums.GET("/:id", h.albums.GetAlbum)
	albums.POST("", h.albums.CreateAlbum, adminOnly)
	albums.PUT("/:id", h.albums.UpdateAlbum, adminOnly)
	albums.DELETE("/:id", h.albums.DeleteAlbum, adminOnly)
	albums.PUT("/:id/groups", h.albums.AssignGroups, adminOnly)
	albums.POST("/:id/media", h.albums.UploadMedia, adminOnly)
	albums.DELETE("/:id/media/:mediaId", h.albums.DeleteMedia, adminOnly)

	// Admin moderation endpoints
	admin := authed.Group("/admin", adminOnly)
	admin.GET("/users", h.users.ListUsers)
	admin.PUT("/users/:id/approve", h.users.ApproveUser)
	admin.PUT("/users/:id/reject", h.users.RejectUser)
	admin.GET("/stats", h.users.Stats)

	admin.GET("/posts", h.posts.ListByStatus)
	admin.PUT("/posts/:id/approve", h.posts.ApprovePost)
	admin.PUT("/posts/:id/reject", h.posts.RejectPost)

	// Realtime notifications
	e.GET("/ws", h.ws.Serve)
}

func shutdownTimeout(cfg *models.Config) time.Duration {
	return time.Duration(cfg.Server.ShutdownTimeout) * time.Second
}
