package routes

import (
	"strings"

	"homezy/handlers"
	"homezy/i18n"
	"homezy/middleware"
	"homezy/services/catalog"
	"homezy/services/user"
	"homezy/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Deps are the collaborators the development API is built from.
type Deps struct {
	Logger            *zap.Logger
	Localizer         *i18n.Localizer
	UserService       user.UserService
	Catalog           *catalog.Service
	FrontendOrigin    string
	MaxRequestsPerMin int
	// TrustedProxies lists the peers allowed to set X-Forwarded-For. Nil
	// trusts none, so clients are keyed on their socket address.
	TrustedProxies []string
}

// NewRouter assembles the gin engine with middleware and routes.
func NewRouter(d Deps) *gin.Engine {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}

	router := gin.New()
	if err := router.SetTrustedProxies(trustedProxies(d.TrustedProxies)); err != nil {
		d.Logger.Warn("Invalid trusted proxies, trusting none", zap.Strings("proxies", d.TrustedProxies), zap.Error(err))
		_ = router.SetTrustedProxies(nil)
	}
	router.Use(utils.ErrorHandler())
	router.Use(middleware.LoggerMiddleware(d.Logger))
	if d.FrontendOrigin != "" {
		router.Use(CORS(d.FrontendOrigin))
	}
	router.Use(middleware.LocaleMiddleware(d.Localizer.Language()))

	authHandler := handlers.NewAuthHandler(d.UserService, d.Localizer)
	catalogHandler := handlers.NewCatalogHandler(d.Catalog)

	hb := &handlers.HandlerBundle{
		LoginHandler:               authHandler.LoginHandler,
		FeaturedListingsHandler:    catalogHandler.FeaturedListingsHandler,
		PopularDestinationsHandler: catalogHandler.PopularDestinationsHandler,
	}

	limiter := middleware.RateLimitMiddleware(
		middleware.NewRateLimiterStore(d.MaxRequestsPerMin),
		d.Localizer,
		d.Logger,
	)
	RegisterRoutes(router, hb, limiter)
	return router
}

func trustedProxies(in []string) []string {
	var out []string
	for _, p := range in {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
