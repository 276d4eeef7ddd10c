package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Auth endpoints
	LoginHandler gin.HandlerFunc

	// Catalog endpoints
	FeaturedListingsHandler    gin.HandlerFunc
	PopularDestinationsHandler gin.HandlerFunc
}
