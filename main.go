package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"healthcare-portal/internal/routes"
	"healthcare-portal/internal/service"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "healthcare-portal",
		Short: "Patient, doctor and hospital admin portal API",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// A missing .env is fine; the environment may already be populated.
			_ = godotenv.Load()
		},
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(provisionAdminCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context())
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Write the demo accounts into empty collections",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()
			return app.Store.Seed(cmd.Context())
		},
	}
}

func provisionAdminCmd() *cobra.Command {
	var form service.AdminRegistration
	cmd := &cobra.Command{
		Use:   "provision-admin",
		Short: "Register a hospital and its admin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			if form.ConfirmPassword == "" {
				form.ConfirmPassword = form.AdminPassword
			}
			admin, err := app.Services.Developer.RegisterAdmin(cmd.Context(), form)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Admin %s registered for %s\n", admin.Username, admin.HospitalName)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&form.HospitalName, "hospital-name", "", "hospital name")
	flags.StringVar(&form.HospitalLocation, "hospital-location", "", "hospital location")
	flags.StringVar(&form.HospitalLogo, "hospital-logo", "", "hospital logo URL")
	flags.StringVar(&form.AdminUsername, "username", "", "admin username")
	flags.StringVar(&form.AdminPassword, "password", "", "admin password")
	flags.StringVar(&form.ConfirmPassword, "confirm-password", "", "admin password again (defaults to --password)")
	return cmd
}

func runServer(ctx context.Context) error {
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	if app.Config.Store.Seed {
		if err := app.Store.Seed(ctx); err != nil {
			return err
		}
	}

	if app.Config.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(app.Log))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{app.Config.Origin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	routes.SetupRoutes(router, routes.Dependencies{
		Services: app.Services,
		Log:      app.Log,
		Config:   app.Config,
		Gatherer: app.Registry,
	})

	srv := &http.Server{
		Addr:              ":" + app.Config.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		app.Log.WithFields(logrus.Fields{"Port": app.Config.Port, "Store": app.Config.Store.Backend}).Info("Server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.Log.WithFields(logrus.Fields{"Function": "runServer", "Error": err}).Fatal("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func requestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(logrus.Fields{
			"Method":   c.Request.Method,
			"Path":     c.FullPath(),
			"Status":   c.Writer.Status(),
			"Duration": time.Since(start).String(),
		}).Debug("Request handled")
	}
}
