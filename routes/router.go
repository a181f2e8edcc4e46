package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/conectaedu/frontend/config"
	"github.com/conectaedu/frontend/controllers"
	"github.com/conectaedu/frontend/middleware"
	"github.com/conectaedu/frontend/session"
	"github.com/conectaedu/frontend/utils"
	"github.com/conectaedu/frontend/web"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(cfg config.AppConfig, api controllers.PortalAPI, holder *session.Holder) *gin.Engine {
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(utils.RequestID())
	// Access log goes to its own rolling file
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.Ginzap(gl, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(gl, false))
	} else {
		utils.Sugar.Warnf("gin logger disabled: %v", err)
		r.Use(gin.Recovery())
	}

	r.SetHTMLTemplate(web.MustTemplates())
	r.StaticFS("/static", web.Static())

	r.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"status": "ok"})
	})

	publicController := controllers.NewPublicController(api, holder, cfg.Location())
	authController := controllers.NewAuthController(api, holder)
	postController := controllers.NewPostController(api, holder, cfg.Location())

	r.GET("/", publicController.Home)
	r.GET("/ler/:id", publicController.ReadPost)

	limiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute)
	r.GET("/login", authController.LoginPage)
	r.POST("/login", middleware.RateLimit(limiter, authController.LoginRateLimited), authController.Login)
	r.POST("/logout", authController.Logout)

	admin := r.Group("/admin")
	admin.Use(middleware.SessionRequired(holder))
	admin.GET("", postController.ListPosts)
	admin.POST("/acoes", postController.RowAction)
	admin.GET("/cadastrar", postController.NewPost)
	admin.POST("/cadastrar", postController.CreatePost)
	admin.GET("/edit/:id", postController.EditPost)
	admin.POST("/edit/:id", postController.UpdatePost)
	admin.GET("/excluir/:id", postController.ConfirmDelete)
	admin.POST("/excluir/:id", postController.DeletePost)

	if proxy, err := NewAPIProxy(cfg.APIBaseURL); err != nil {
		utils.Sugar.Errorf("api proxy disabled: invalid base url %q: %v", cfg.APIBaseURL, err)
	} else {
		apiGroup := r.Group("/api")
		apiGroup.Use(cors.New(corsConfig(cfg.AllowedOrigins)))
		apiGroup.Any("/*path", proxy)
	}

	r.NoRoute(func(ctx *gin.Context) {
		// unknown screens go home; the browser follows with a fresh GET
		ctx.Redirect(http.StatusFound, "/")
	})

	return r
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 1 && origins[0] == "*" {
		c.AllowAllOrigins = true
		// credentials cannot be combined with a wildcard origin
		c.AllowCredentials = false
	} else {
		c.AllowOrigins = origins
	}
	return c
}
