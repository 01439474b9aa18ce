package app

import (
	"net/http"

	"github.com/nipun221/user-admin-ds/internal/auth"
	"github.com/nipun221/user-admin-ds/internal/config"
	"github.com/nipun221/user-admin-ds/internal/handlers"
	"github.com/nipun221/user-admin-ds/internal/repo"
	"github.com/nipun221/user-admin-ds/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, users repo.UserRepo) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(http.StatusFound, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	ttl := cfg.Auth.TokenTTL.Duration()
	userTokens := auth.NewIssuer("user", cfg.Auth.UserSecret, ttl)
	adminTokens := auth.NewIssuer("admin", cfg.Auth.AdminSecret, ttl)

	userSvc := service.NewUserService(users)
	authHandler := handlers.NewAuthHandler(userSvc, userTokens, adminTokens)
	userHandler := handlers.NewUserHandler(userSvc)

	r.POST("/user/register", authHandler.RegisterUser)
	r.POST("/user/login", authHandler.LoginUser)
	r.POST("/admin/register", authHandler.RegisterAdmin)
	r.POST("/admin/login", authHandler.LoginAdmin)

	userOnly := r.Group("", auth.RequireToken(userTokens))
	userOnly.GET("/protected", userHandler.Protected)
	userOnly.GET("/user", userHandler.GetSelf)
	userOnly.PUT("/user", userHandler.UpdateSelf)
	userOnly.DELETE("/user", userHandler.DeleteSelf)

	adminOnly := r.Group("", auth.RequireToken(adminTokens))
	adminOnly.GET("/allUsers", userHandler.ListAll)
	adminOnly.GET("/user/:id", userHandler.GetByID)
	adminOnly.PUT("/user/:id", userHandler.UpdateByID)
	adminOnly.DELETE("/user/:id", userHandler.DeleteByID)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "User Admin API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
	}
}
