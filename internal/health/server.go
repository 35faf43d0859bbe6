// Package health exposes a small ops endpoint reporting bot liveness and
// faucet backend reachability.
package health

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"faucet-bot/internal/faucet"
)

const checkTimeout = 5 * time.Second

// RunServer starts the health HTTP server and blocks until it exits or ctx is
// cancelled; run in a goroutine. A server failure is logged, never fatal: the
// bot keeps serving commands without its ops endpoint.
func RunServer(ctx context.Context, addr string, client *faucet.Client) {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		cctx, cancel := context.WithTimeout(c.Request.Context(), checkTimeout)
		defer cancel()

		if client.HealthCheck(cctx) {
			c.JSON(http.StatusOK, gin.H{"status": "ok", "faucet": "up"})
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "faucet": "down"})
	})

	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		<-ctx.Done()
		log.Println("[INFO] Shutting down health server...")
		srv.Shutdown(context.Background()) //nolint:errcheck
	}()

	log.Printf("[INFO] Health server listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Printf("[ERR] Health server exited: %v", err)
	}
}
