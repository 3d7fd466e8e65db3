package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/designdynasty/site/backend/internal/config"
	"github.com/designdynasty/site/backend/internal/handler"
	authHandler "github.com/designdynasty/site/backend/internal/handler/auth"
	catalogHandler "github.com/designdynasty/site/backend/internal/handler/catalog"
	chatHandler "github.com/designdynasty/site/backend/internal/handler/chat"
	contactHandler "github.com/designdynasty/site/backend/internal/handler/contact"
	seoHandler "github.com/designdynasty/site/backend/internal/handler/seo"
	"github.com/designdynasty/site/backend/internal/middleware"
	"github.com/designdynasty/site/backend/internal/model/catalog"
	seomodel "github.com/designdynasty/site/backend/internal/model/seo"
	authservice "github.com/designdynasty/site/backend/internal/service/auth"
	chatservice "github.com/designdynasty/site/backend/internal/service/chat"
	contactservice "github.com/designdynasty/site/backend/internal/service/contact"
	seoservice "github.com/designdynasty/site/backend/internal/service/seo"
	sessionservice "github.com/designdynasty/site/backend/internal/service/session"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Core services
	sessionSvc := sessionservice.New(cfg.Session.Timeout, cfg.Session.SweepInterval)
	go sessionSvc.Sweep(ctx)

	authSvc := authservice.New(sessionSvc, cfg.Auth.OTPTTL)
	if cfg.Auth.AdminEmail != "" && cfg.Auth.AdminPassword != "" {
		if err := authSvc.SeedAdmin(cfg.Auth.AdminEmail, cfg.Auth.AdminPassword); err != nil {
			log.Fatalf("failed to seed admin account: %v", err)
		}
		log.Printf("admin account seeded for %s", cfg.Auth.AdminEmail)
	} else {
		log.Println("no admin credentials configured, admin routes will reject everyone")
	}

	chatSvc := chatservice.NewService(chatservice.NewResponder(chatservice.DefaultRules(), chatservice.DefaultReply))
	contactSvc := contactservice.NewService()

	registry := seomodel.NewMemoryRegistry(seomodel.Seed())
	seoBuilder := seoservice.NewBuilder(cfg.Site, registry)

	contentStore := catalog.NewMemoryStore(catalog.SeedPlans(), catalog.SeedOfferings(), catalog.SeedPosts())

	router := handler.NewRouter(handler.Deps{
		Auth:      authHandler.New(authSvc),
		Catalog:   catalogHandler.New(contentStore),
		Chat:      chatHandler.New(chatSvc, cfg.Chat.ReplyDelay),
		ChatWS:    chatHandler.NewWebSocketHandler(chatSvc, cfg.Chat.ReplyDelay),
		Contact:   contactHandler.New(contactSvc),
		SEO:       seoHandler.New(seoBuilder),
		SessionMW: middleware.SessionGuard(sessionSvc),
	})

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Design Dynasty backend listening on %s", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
