//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"grooming-booking/internal/handler/httperr"
	"grooming-booking/internal/handler/middleware"
	"grooming-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newErrorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())

	r.GET("/public", func(c *gin.Context) {
		resp := httperr.Response{Status: http.StatusConflict}
		resp.Error.Message = "Slot taken"
		_ = c.Error(&gin.Error{Err: errors.New("conflict"), Type: gin.ErrorTypePublic, Meta: resp})
	})
	r.GET("/private", func(c *gin.Context) {
		_ = c.Error(errors.New("driver exploded"))
	})
	r.GET("/rendered", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusNotFound, errors.New("missing"), "Appointment not found", nil)
	})
	r.GET("/panic", func(*gin.Context) {
		panic("boom")
	})
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestErrorHandler(t *testing.T) {
	router := newErrorRouter()

	testCases := []struct {
		name       string
		path       string
		expectCode int
		expectMsg  string
	}{
		{"public error rendered from meta", "/public", http.StatusConflict, "Slot taken"},
		{"private error hidden behind 500", "/private", http.StatusInternalServerError, "Internal server error"},
		{"already rendered response kept", "/rendered", http.StatusNotFound, "Appointment not found"},
		{"panic recovered", "/panic", http.StatusInternalServerError, "Internal server error"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.PerformRequest(t, router, http.MethodGet, tc.path, nil, "")
			httptest.AssertErrorResponse(t, rec, tc.expectCode, tc.expectMsg)
		})
	}

	t.Run("success response untouched", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/ok", nil, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	})
}
