package main

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"employee-records-api/internal/config"
	"employee-records-api/internal/handlers"
	"employee-records-api/internal/middleware"
	pkglambda "employee-records-api/pkg/lambda"
	"employee-records-api/pkg/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	container, err := server.NewContainer(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
	defer container.Close()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogger())
	router.Use(middleware.RateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "employee-records-api",
		})
	})

	// All employee routes go through the same router the Lambda uses,
	// so local behavior matches the deployed function.
	employeeHandler := handlers.NewEmployeeHandler(container.EmployeeService, container.Logger)
	adapter := routeAdapter(employeeHandler)

	router.GET("/employees", adapter)
	router.POST("/employees", adapter)
	router.GET("/employees/:id", adapter)
	router.PATCH("/employees/:id", adapter)
	router.DELETE("/employees/:id", adapter)
	router.GET("/info", adapter)
	router.NoRoute(adapter)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		container.Logger.WithField("port", cfg.Port).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	container.Logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
}

// routeAdapter bridges gin requests onto the transport-agnostic handler
func routeAdapter(h *handlers.EmployeeHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body []byte
		if c.Request.Body != nil {
			body, _ = io.ReadAll(c.Request.Body)
		}

		headers := make(map[string]string, len(c.Request.Header))
		for k := range c.Request.Header {
			headers[k] = c.Request.Header.Get(k)
		}

		query := make(map[string]string)
		for k, vs := range c.Request.URL.Query() {
			if len(vs) > 0 {
				query[k] = vs[0]
			}
		}

		req := &pkglambda.Request{
			Method:      c.Request.Method,
			Path:        c.Request.URL.Path,
			Headers:     headers,
			QueryParams: query,
			Body:        body,
		}
		req.RawEvent, _ = json.Marshal(req)

		resp := h.Route(c.Request.Context(), req)
		for k, v := range resp.Headers {
			c.Header(k, v)
		}
		c.Data(resp.StatusCode, "application/json", resp.Body)
	}
}
