package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/campushire/platform/config"
	_ "github.com/campushire/platform/docs"
	"github.com/campushire/platform/utils"
)

// @title CampusHire CV API
// @version 1.0
// @description CV microservice: turns a student's stored details into a one-page PDF using a hosted language model.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@campushire.dev

// @host localhost:3000
// @BasePath /

// shutdownTimeout is how long outstanding requests get to finish on exit
const shutdownTimeout = 30 * time.Second

var cfg *config.Config

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "campus",
		Short:         "CampusHire job platform: CV service and web front end",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (for local development)
			envErr := godotenv.Load()

			cfg = config.Load()

			level := cfg.LogLevel
			if cfg.Debug {
				level = "debug"
			}
			utils.SetLogger(utils.NewLogger(level, cfg.LogFormat))

			if envErr != nil {
				utils.GetLogger().Debug("No .env file found, using environment variables")
			}

			// Set Gin mode based on debug setting
			if cfg.Debug {
				gin.SetMode(gin.DebugMode)
			} else {
				gin.SetMode(gin.ReleaseMode)
			}
		},
	}

	root.AddCommand(newServeCVCmd(), newServeFrontCmd(), newGenerateCmd())
	return root
}

// runServer serves handler on port until SIGINT or SIGTERM, then shuts
// down gracefully
func runServer(name, port string, handler http.Handler) error {
	log := utils.GetLogger().WithFields(logrus.Fields{"component": name, "port": port})

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 180 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-quit:
	}

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	log.Info("Server exited gracefully")
	return nil
}

// reportError logs a failed command; cobra is told to stay quiet about errors
func reportError(err error) {
	utils.GetLogger().WithError(err).Error("Command failed")
}
