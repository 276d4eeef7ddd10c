package middleware

import (
	"homezy/i18n"

	"github.com/gin-gonic/gin"
)

const localeKey = "locale"

// LocaleMiddleware resolves Accept-Language to a supported locale.
func LocaleMiddleware(fallback i18n.Locale) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(localeKey, i18n.Match(c.GetHeader("Accept-Language"), fallback))
		c.Next()
	}
}

// GetLocale returns the locale chosen for this request.
func GetLocale(c *gin.Context) i18n.Locale {
	if v, ok := c.Get(localeKey); ok {
		if loc, ok := v.(i18n.Locale); ok {
			return loc
		}
	}
	return i18n.DefaultLocale
}
