package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"auditor/pkg/controller"
	"auditor/pkg/logger"

	"github.com/gin-gonic/gin"
)

func accessLogEngine() *gin.Engine {
	// initialize default logger to avoid nil pointer in middleware
	logger.Setup(logger.DevelopmentEnvironment)
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(controller.AccessLog())
	// Handler echoes the request ID from the context into a header so we can
	// assert it.
	engine.GET("/", func(c *gin.Context) {
		if id := controller.RequestID(c.Request.Context()); id != "" {
			c.Header("X-Echo-Request-Id", id)
		}
		c.Status(http.StatusCreated)
	})

	return engine
}

func TestAccessLog_PropagatesRequestID(t *testing.T) {
	engine := accessLogEngine()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rec.Code)
	}
	if got := rec.Header().Get("X-Echo-Request-Id"); got != "abc-123" {
		t.Fatalf("expected request ID abc-123, got %q", got)
	}
}

func TestAccessLog_GeneratesRequestID(t *testing.T) {
	engine := accessLogEngine()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Echo-Request-Id"); got == "" {
		t.Fatal("expected a generated request ID")
	}
}

func TestRequestID_EmptyWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if id := controller.RequestID(req.Context()); id != "" {
		t.Fatalf("expected empty request ID, got %q", id)
	}
}
