package main

import (
	"context"
	"expvar"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/turismo/backoffice-console/internal/config"
	"github.com/turismo/backoffice-console/internal/console"
	"github.com/turismo/backoffice-console/internal/domain/accommodation"
	"github.com/turismo/backoffice-console/internal/domain/activity"
	"github.com/turismo/backoffice-console/internal/domain/booking"
	"github.com/turismo/backoffice-console/internal/domain/customer"
	"github.com/turismo/backoffice-console/internal/domain/destination"
	"github.com/turismo/backoffice-console/internal/domain/guide"
	"github.com/turismo/backoffice-console/internal/domain/itinerary"
	"github.com/turismo/backoffice-console/internal/domain/plan"
	"github.com/turismo/backoffice-console/internal/domain/transport"
	"github.com/turismo/backoffice-console/internal/middleware"
	"github.com/turismo/backoffice-console/internal/pkg/database"
	"github.com/turismo/backoffice-console/internal/pkg/logger"
	"github.com/turismo/backoffice-console/internal/pkg/resource"
	pkgresponse "github.com/turismo/backoffice-console/internal/pkg/response"
	"github.com/turismo/backoffice-console/internal/realtime"
	"github.com/turismo/backoffice-console/internal/screen"
)

func main() {
	cfg := config.Load()

	logFile, err := logger.Init(logger.Config{
		Level:       cfg.LogLevel,
		Environment: cfg.Env,
		LogFile:     cfg.LogFile,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize logger")
	}
	defer logFile.Close()

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Str("backend", cfg.BackendURL).
		Msg("Starting back-office console")

	var hub *realtime.Hub
	if cfg.LiveUpdates {
		redisClient, err := database.NewRedis(context.Background(), cfg.RedisURL)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to connect to Redis, live updates stay local to this instance")
			redisClient = nil
		}
		defer database.CloseRedis(redisClient)

		hub = realtime.NewHub(redisClient)
		go hub.Run()
	}

	app := newApp(cfg, hub)
	r := newRouter(cfg, app)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	if hub != nil {
		hub.Shutdown()
	}
	app.wait()

	log.Info().Msg("Server exited")
}

// app holds the console and the resource clients behind it.
type app struct {
	console *console.Console
	hub     *realtime.Hub
	delay   time.Duration
	waiters []func()
}

func newApp(cfg *config.Config, hub *realtime.Hub) *app {
	a := &app{
		console: console.New(console.Options{
			Hub:            hub,
			Location:       cfg.Location(),
			AllowedOrigins: cfg.AllowedOrigins,
		}),
		hub:   hub,
		delay: cfg.RedirectDelay,
	}

	opts := []resource.Option{
		resource.WithTimeout(cfg.BackendTimeout),
		resource.WithRefreshTimeout(cfg.RefreshTimeout),
		resource.WithUserAgent(cfg.BackendUserAgent),
	}
	if hub != nil {
		opts = append(opts, resource.WithMutationHook(hub.PublishChange))
	}

	destinations := resource.New[destination.Write, destination.Read]("destinations", cfg.ResourceURL("destinations"), opts...)
	accommodations := resource.New[accommodation.Write, accommodation.Read]("accommodations", cfg.ResourceURL("accommodations"), opts...)
	transports := resource.New[transport.Write, transport.Read]("transports", cfg.ResourceURL("transports"), opts...)
	plans := resource.New[plan.Write, plan.Read]("plans", cfg.ResourceURL("plans"), opts...)
	itineraries := resource.New[itinerary.Write, itinerary.Read]("itineraries", cfg.ResourceURL("itineraries"), opts...)
	activities := resource.New[activity.Write, activity.Read]("activities", cfg.ResourceURL("activities"), opts...)
	guides := resource.New[guide.Write, guide.Read]("guides", cfg.ResourceURL("guides"), opts...)
	customers := resource.New[customer.Write, customer.Read]("customers", cfg.ResourceURL("customers"), opts...)
	bookings := resource.New[booking.Write, booking.Read]("bookings", cfg.ResourceURL("bookings"), opts...)

	// Side menu order
	register(a, customer.Definition(), customers)
	register(a, booking.Definition(customers.ListAll, plans.ListAll), bookings)
	register(a, destination.Definition(), destinations)
	register(a, accommodation.Definition(destinations.ListAll), accommodations)
	register(a, transport.Definition(destinations.ListAll), transports)
	register(a, plan.Definition(destinations.ListAll), plans)
	register(a, itinerary.Definition(plans.ListAll), itineraries)
	register(a, activity.Definition(itineraries.ListAll), activities)
	register(a, guide.Definition(plans.ListAll), guides)

	return a
}

func register[W any, R any](a *app, def *screen.Definition[W, R], client *resource.Client[W, R]) {
	def.NavigateDelay = a.delay
	console.Register(a.console, def, client)
	a.waiters = append(a.waiters, client.Wait)
	if a.hub != nil {
		a.hub.OnRemoteChange(client.Name(), client.Refresh)
	}
}

// wait blocks until background list refreshes have finished.
func (a *app) wait() {
	for _, w := range a.waiters {
		w()
	}
}

func newRouter(cfg *config.Config, a *app) chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		data := map[string]interface{}{
			"status":  "ok",
			"version": "1.0.0",
		}
		if a.hub != nil {
			data["live_connections"] = a.hub.GetConnectionCount()
		}
		pkgresponse.OK(w, data)
	})
	r.Handle("/debug/vars", expvar.Handler())

	r.Group(func(r chi.Router) {
		r.Use(chimw.Compress(5, "text/html", "application/json"))
		a.console.Mount(r)
	})

	return r
}
