package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"

	config "github.com/thirdweb-dev/blobflow/configs"
	"github.com/thirdweb-dev/blobflow/internal/handlers"
	"github.com/thirdweb-dev/blobflow/internal/middleware"

	// Import the generated Swagger docs
	"github.com/thirdweb-dev/blobflow/docs"
)

var (
	apiCmd = &cobra.Command{
		Use:   "api",
		Short: "Serve the dashboard API",
		Long:  "Serve blocks, mempool, users, stats and network selection over HTTP",
		Run: func(cmd *cobra.Command, args []string) {
			RunApi(cmd, args)
		},
	}
)

// @title BlobFlow
// @version v0.1.0
// @description API for browsing EIP-4844 blob activity: blocks, mempool, submitters and fee stats
// @license.name Apache 2.0
// @BasePath /
// @securityDefinitions.basic BasicAuth
func RunApi(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start API")
	}
	defer a.Close()

	docs.SwaggerInfo.Host = config.Cfg.Server.Host

	r := gin.New()
	r.Use(middleware.Logger())
	r.Use(gin.Recovery())

	// Add Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	// Add Swagger JSON endpoint
	r.GET("/openapi.json", func(c *gin.Context) {
		doc, err := swag.ReadDoc()
		if err != nil {
			log.Error().Err(err).Msg("Failed to read Swagger documentation")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to provide Swagger documentation"})
			return
		}
		c.Header("Content-Type", "application/json")
		c.String(http.StatusOK, doc)
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handlers.New(a.service, a.selector).Register(r)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", config.Cfg.Server.Port),
		Handler: r,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("network", a.selector.Current().Name).Msg("Starting API server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("API server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down API server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("API server shutdown failed")
	}
}
