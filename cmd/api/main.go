package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/meteomotto/go-weather-backend/config"
	"github.com/meteomotto/go-weather-backend/internal/auth"
	"github.com/meteomotto/go-weather-backend/internal/bootstrap"
	"github.com/meteomotto/go-weather-backend/internal/cache"
	"github.com/meteomotto/go-weather-backend/internal/notify"
	prefrepo "github.com/meteomotto/go-weather-backend/internal/preferences/repository"
	prefservice "github.com/meteomotto/go-weather-backend/internal/preferences/service"
	"github.com/meteomotto/go-weather-backend/internal/suggestion"
	"github.com/meteomotto/go-weather-backend/internal/weather/provider"
	weatherservice "github.com/meteomotto/go-weather-backend/internal/weather/service"
)

const cachePrefix = "meteomotto:cache:"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisClient, err := bootstrap.OpenRedis(ctx, &cfg.Redis)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer redisClient.Close()

	firebaseClients, err := auth.InitializeFirebase(ctx, &cfg.Firebase)
	if err != nil {
		log.Fatalf("firebase: %v", err)
	}

	ttlCache := cache.New(redisClient, cachePrefix, cfg.Cache.TTL)

	weatherClient := provider.NewClient(cfg.Weather.APIKey, cfg.Weather.BaseURL, cfg.Weather.RateLimit)

	var suggester *suggestion.Service
	if cfg.Gemini.APIKey != "" {
		suggester = suggestion.NewService(suggestion.NewGeminiClient(cfg.Gemini.APIKey, cfg.Gemini.BaseURL, cfg.Gemini.Model))
	} else {
		log.Println("GEMINI_API_KEY not set, suggestions disabled")
		suggester = suggestion.NewService(nil)
	}

	weatherSvc := weatherservice.NewService(weatherClient, ttlCache, suggester)

	prefStore := prefrepo.NewRTDBStore(firebaseClients.Database)
	prefSvc := prefservice.NewService(prefStore)

	scheduler := notify.NewScheduler(prefStore, weatherClient, cfg.Notify.SummaryCronSpec)
	cronRunner, err := scheduler.Start()
	if err != nil {
		log.Fatalf("scheduler: %v", err)
	}

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "meteomotto-backend",
		Version:     cfg.App.Version,
		CORSOrigins: cfg.Server.CORSOrigins,
		Redis:       redisClient,
		AuthClient:  firebaseClients.Auth,
		Identity:    auth.NewIdentityClient(cfg.Firebase.WebAPIKey, cfg.Firebase.IdentityBaseURL),
		Weather:     weatherSvc,
		Preferences: prefSvc,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Printf("listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	cronRunner.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
