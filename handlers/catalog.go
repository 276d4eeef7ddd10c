package handlers

import (
	"net/http"
	"strconv"

	"homezy/middleware"
	"homezy/services/catalog"
	"homezy/utils"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	Catalog *catalog.Service
}

func NewCatalogHandler(svc *catalog.Service) *CatalogHandler {
	return &CatalogHandler{Catalog: svc}
}

// FeaturedListingsHandler handles GET /listings/featured?limit=N.
func (h *CatalogHandler) FeaturedListingsHandler(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			utils.JSONError(c, http.StatusBadRequest, "limit must be a non-negative integer", raw)
			return
		}
		limit = n
	}
	c.JSON(http.StatusOK, gin.H{"data": h.Catalog.Featured(middleware.GetLocale(c), limit)})
}

// PopularDestinationsHandler handles GET /destinations/popular.
func (h *CatalogHandler) PopularDestinationsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.Catalog.Destinations()})
}
