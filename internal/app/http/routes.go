package routes

import (
	adminapi "notices-app/internal/api/admin"
	artistsapi "notices-app/internal/api/artists"
	artworksapi "notices-app/internal/api/artworks"
	authapi "notices-app/internal/api/auth"
	catalogapi "notices-app/internal/api/catalog"
	noticesapi "notices-app/internal/api/notices"
	placesapi "notices-app/internal/api/places"
	uploadsapi "notices-app/internal/api/uploads"
	usersapi "notices-app/internal/api/users"
	"notices-app/internal/app/http/middleware"
	"notices-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public catalog: published artworks only
	r.GET("/catalog", catalogapi.ListCatalog)
	r.GET("/catalog/:id", catalogapi.GetCatalogRecord)

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)

	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", usersapi.GetCurrentUser)
	auth.POST("/change-password", authapi.ChangePassword)

	// Authoring (editors and admins)
	author := auth.Group("/")
	author.Use(
		middleware.RequireAnyRole(users.RoleEditor, users.RoleAdmin),
		middleware.SanitizeAndCleanInputMiddleware(),
	)

	author.GET("/artworks", artworksapi.ListArtworks)
	author.GET("/artworks/:id", artworksapi.GetArtworkByID)
	author.POST("/artworks", artworksapi.CreateArtwork)
	author.PUT("/artworks/:id", artworksapi.UpdateArtwork)
	author.DELETE("/artworks/:id", artworksapi.DeleteArtwork)

	author.POST("/artworks/:id/publish", artworksapi.PublishArtwork)
	author.POST("/artworks/:id/unpublish", artworksapi.UnpublishArtwork)

	author.PUT("/artworks/:id/images", artworksapi.ReplaceArtworkImages)

	author.GET("/artists", artistsapi.ListArtists)
	author.GET("/artists/:id", artistsapi.GetArtistByID)
	author.POST("/artists", artistsapi.CreateArtist)
	author.PUT("/artists/:id", artistsapi.UpdateArtist)
	author.DELETE("/artists/:id", artistsapi.DeleteArtist)

	author.GET("/places", placesapi.ListPlaces)
	author.GET("/places/:id", placesapi.GetPlaceByID)
	author.POST("/places", placesapi.CreatePlace)
	author.PUT("/places/:id", placesapi.UpdatePlace)
	author.DELETE("/places/:id", placesapi.DeletePlace)

	author.GET("/notices", noticesapi.ListNotices)
	author.GET("/notices/:id", noticesapi.GetNoticeByID)
	author.POST("/notices", noticesapi.CreateNotice)
	author.PUT("/notices/:id", noticesapi.UpdateNotice)
	author.DELETE("/notices/:id", noticesapi.DeleteNotice)

	author.POST("/uploads/images", uploadsapi.UploadImage)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole(users.RoleAdmin))
	admin.GET("/dashboard", adminapi.AdminDashboard)
	admin.GET("/users", adminapi.ListAllUsers)
	admin.PUT("/users/:id/role", adminapi.SetUserRole)
}
