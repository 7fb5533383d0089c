package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"geomate/backend/internal/account"
	"geomate/backend/internal/auth"
	"geomate/backend/internal/config"
	"geomate/backend/internal/database"
	"geomate/backend/internal/handler"
	"geomate/backend/internal/hub"
	"geomate/backend/internal/relationship"
	"geomate/backend/internal/store"
	"geomate/backend/pkg/jwt"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

// @title           Geomate API
// @version         1.0
// @description     Location sharing backend: accounts, locations, motion status and friend requests.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "geomate",
		Short: "Geomate location sharing backend",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create the schema and seed the request types, then exit",
		Run: func(cmd *cobra.Command, args []string) {
			database.Connect(config.AppConfig.DatabaseURL)
		},
	})
	return rootCmd
}

func serve(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.AppConfig

	// Connect to the database
	db := database.Connect(cfg.DatabaseURL)
	s := store.NewGormStore(db)

	events := hub.NewHub()
	if cfg.RedisURL != "" {
		relay, err := hub.NewRedisRelay(cfg.RedisURL)
		if err != nil {
			return err
		}
		defer relay.Close()

		go func() {
			if err := events.RunRelay(ctx, relay); err != nil && ctx.Err() == nil {
				log.Printf("Redis relay stopped, delivering events locally: %v", err)
			}
		}()
		log.Println("Relaying events through Redis.")
	}

	if cfg.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET is empty, session tokens are not secure")
	}
	authn := auth.NewStaticKeys(cfg.ClientKeys(), cfg.AdminKeys())

	h := handler.New(account.NewService(s), relationship.NewEngine(s), events, jwt.NewIssuer(cfg.JWTSecret, cfg.TokenTTL))
	router := handler.NewRouter(h, authn)

	ln, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return err
	}
	fmt.Printf("Server is running on :%s\n", cfg.Port)
	fmt.Printf("Swagger UI is available at http://localhost:%s/swagger/index.html\n", cfg.Port)
	return runServer(ctx, &http.Server{Handler: router}, ln)
}

// runServer serves on ln until ctx is done, then drains in-flight requests.
// Request contexts derive from ctx so open event streams end on shutdown.
func runServer(ctx context.Context, srv *http.Server, ln net.Listener) error {
	srv.BaseContext = func(net.Listener) context.Context { return ctx }

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
