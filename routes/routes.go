package routes

import (
	"net/http"
	"time"

	"homezy/handlers"
	"homezy/services/auth"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the login endpoint. There is deliberately no
// registration route.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle, limiter gin.HandlerFunc) {
	r.POST(auth.LoginPath, limiter, hb.LoginHandler)
}

// RegisterCatalogRoutes registers the homepage catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/listings/featured", hb.FeaturedListingsHandler)
	r.GET("/destinations/popular", hb.PopularDestinationsHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, started time.Time) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Hi, I'm Homezy",
			"uptime":  time.Since(started).Round(time.Second).String(),
		})
	})
}

// CORS lets the browser front end at origin call the API.
func CORS(origin string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     []string{origin},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept-Language", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

// RegisterRoutes wires every route group onto r.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, limiter gin.HandlerFunc) {
	RegisterHealthRoute(r, time.Now())
	RegisterAuthRoutes(r, hb, limiter)
	RegisterCatalogRoutes(r, hb)
}
