package routes // Router setup layer.

import (
	"net/http"
	"time"

	"github.com/Modassir22/dream-home-hub/handlers"
	"github.com/Modassir22/dream-home-hub/middlewares"
	"github.com/Modassir22/dream-home-hub/services"
	"github.com/Modassir22/dream-home-hub/utils/redislog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Services is everything the handlers call into.
type Services struct {
	Auth         services.AuthService
	Plots        services.PlotService
	Team         services.TeamService
	Testimonials services.TestimonialService
	Site         services.SiteService
	Wishlist     services.WishlistService
	Upload       services.UploadService
}

// Options carries the infrastructure and settings the router needs.
type Options struct {
	JWTSecret        string
	CORSOrigins      []string
	UploadDir        string
	UploadPublicPath string
	UploadMaxBytes   int64
	ShowStack        bool // panic responses include the stack trace

	DB    *gorm.DB      // health check
	Redis *redis.Client // health check; may be nil
	Log   *redislog.Logger
}

// Setup attaches middlewares and registers all endpoints under /api.
func Setup(r *gin.Engine, s Services, o Options) {
	r.Use(middlewares.RequestLogger(o.Log), middlewares.Recovery(o.ShowStack))
	r.Use(cors.New(corsConfig(o.CORSOrigins)))

	if o.UploadDir != "" && o.UploadPublicPath != "" {
		r.Static(o.UploadPublicPath, o.UploadDir)
	}

	r.HandleMethodNotAllowed = true
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"message": "Method not allowed"})
	})

	auth := middlewares.Auth(o.JWTSecret, s.Auth)
	admin := middlewares.Admin(o.JWTSecret, s.Auth)

	ah := handlers.NewAuthHandler(s.Auth)
	ph := handlers.NewPlotHandler(s.Plots)
	th := handlers.NewTeamHandler(s.Team)
	tsh := handlers.NewTestimonialHandler(s.Testimonials)
	sh := handlers.NewSiteHandler(s.Site)
	wh := handlers.NewWishlistHandler(s.Wishlist)
	awh := handlers.NewAdminWishlistHandler(s.Wishlist)
	uh := handlers.NewUploadHandler(s.Upload, o.UploadMaxBytes)
	hh := handlers.NewHealthHandler(o.DB, o.Redis)

	api := r.Group("/api")

	api.GET("/health", hh.Health)

	// Public auth endpoints (no token required).
	api.POST("/auth/register", ah.Register)
	api.POST("/auth/login", ah.Login)
	api.GET("/auth/me", auth, ah.Me)

	// Public catalogue.
	api.GET("/plots", ph.List)
	api.GET("/plots/featured", ph.Featured)
	api.GET("/plots/:id", ph.Get)
	api.POST("/plots", admin, ph.Create)
	api.GET("/team", th.List)
	api.GET("/testimonials", tsh.List)
	api.GET("/testimonials/:id", tsh.Get)
	api.GET("/contact", sh.Contact)
	api.GET("/stats", sh.Stats)

	wl := api.Group("/wishlist", auth)
	wl.GET("", wh.List)
	wl.POST("", wh.Add)
	wl.GET("/check/:plotId", wh.Check)
	wl.PUT("/:id", wh.Update)
	wl.DELETE("/:id", wh.Remove)

	adm := api.Group("/admin", admin)
	adm.POST("/plots", ph.Create)
	adm.PUT("/plots/:id", ph.Update)
	adm.DELETE("/plots/:id", ph.Delete)
	adm.POST("/team", th.Create)
	adm.PUT("/team/:id", th.Update)
	adm.DELETE("/team/:id", th.Delete)
	adm.POST("/testimonials", tsh.Create)
	adm.PUT("/testimonials/:id", tsh.Update)
	adm.DELETE("/testimonials/:id", tsh.Delete)
	adm.PUT("/contact", sh.UpdateContact)
	adm.PUT("/stats", sh.UpdateStats)

	adm.GET("/wishlists", awh.All)
	adm.GET("/wishlists/stats", awh.Stats)
	adm.GET("/wishlists/plot/:plotId", awh.ByPlot)
	adm.GET("/wishlists/user/:userId", awh.ByUser)

	api.POST("/upload/image", admin, uh.Image)
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
