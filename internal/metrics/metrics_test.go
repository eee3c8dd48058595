package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware_CountsRequestsByRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Middleware())
	router.GET("/items/:id", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/items/:id", "204"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/items/42", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/items/:id", "204"))
	assert.Equal(t, before+1, after)
}

func TestHandler_ExposesDomainMetrics(t *testing.T) {
	CheckInsTotal.WithLabelValues(ResultAccepted).Inc()

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "geo_checkin_checkins_total")
}
