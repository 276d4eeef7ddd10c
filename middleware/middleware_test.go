package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"homezy/i18n"
	"homezy/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRouter(perMinute int, trustedProxies []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if err := r.SetTrustedProxies(trustedProxies); err != nil {
		panic(err)
	}
	r.Use(LocaleMiddleware(i18n.Vietnamese))
	r.Use(RateLimitMiddleware(NewRateLimiterStore(perMinute), i18n.NewLocalizer("vi"), zap.NewNop()))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, GetLocale(c).String())
	})
	return r
}

func get(r http.Handler, ip, lang string) *httptest.ResponseRecorder {
	return getVia(r, ip, "", lang)
}

func getVia(r http.Handler, peer, forwardedFor, lang string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = peer + ":40000"
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}
	req.Header.Set("Accept-Language", lang)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLocaleMiddleware(t *testing.T) {
	r := newRouter(100, nil)

	assert.Equal(t, "en", get(r, "1.1.1.1", "en-US,en;q=0.9").Body.String())
	assert.Equal(t, "vi", get(r, "1.1.1.1", "").Body.String())
}

func TestRateLimitPerIP(t *testing.T) {
	r := newRouter(2, nil)

	assert.Equal(t, http.StatusOK, get(r, "1.1.1.1", "en").Code)
	assert.Equal(t, http.StatusOK, get(r, "1.1.1.1", "en").Code)

	w := get(r, "1.1.1.1", "en")
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Too many attempts, please try again later", body.Message)

	assert.Equal(t, http.StatusOK, get(r, "2.2.2.2", "en").Code)
}

func TestRateLimitIgnoresForwardedForFromUntrustedPeer(t *testing.T) {
	r := newRouter(2, nil)

	limited := 0
	for i := 0; i < 10; i++ {
		w := getVia(r, "1.1.1.1", fmt.Sprintf("1.2.3.%d", i), "en")
		if w.Code == http.StatusTooManyRequests {
			limited++
		}
	}
	assert.Equal(t, 8, limited)
}

func TestRateLimitHonoursForwardedForFromTrustedProxy(t *testing.T) {
	r := newRouter(1, []string{"10.0.0.0/8"})

	assert.Equal(t, http.StatusOK, getVia(r, "10.0.0.1", "1.2.3.4", "en").Code)
	assert.Equal(t, http.StatusOK, getVia(r, "10.0.0.1", "5.6.7.8", "en").Code)
	assert.Equal(t, http.StatusTooManyRequests, getVia(r, "10.0.0.1", "1.2.3.4", "en").Code)
}
