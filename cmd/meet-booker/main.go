package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"meetbooker/internal/calendar"
	"meetbooker/internal/config"
	"meetbooker/internal/http-server/handlers/meeting/cancelMeeting"
	"meetbooker/internal/http-server/handlers/meeting/createEvent"
	"meetbooker/internal/http-server/handlers/meeting/deleteEvent"
	"meetbooker/internal/http-server/handlers/meeting/getEvents"
	"meetbooker/internal/http-server/handlers/meeting/getSchedulePage"
	"meetbooker/internal/http-server/handlers/meeting/listMeetings"
	"meetbooker/internal/http-server/handlers/meeting/scheduleMeeting"
	"meetbooker/internal/http-server/handlers/meeting/updateAvailability"
	"meetbooker/internal/http-server/handlers/schedule/acceptRequest"
	"meetbooker/internal/http-server/handlers/schedule/calendarAuth"
	"meetbooker/internal/http-server/handlers/schedule/createSlot"
	"meetbooker/internal/http-server/handlers/schedule/deleteSlot"
	"meetbooker/internal/http-server/handlers/schedule/listSlots"
	"meetbooker/internal/http-server/handlers/schedule/rejectRequest"
	"meetbooker/internal/http-server/handlers/schedule/requestSlot"
	"meetbooker/internal/http-server/handlers/webinar/createWebinar"
	"meetbooker/internal/http-server/handlers/webinar/deleteWebinar"
	"meetbooker/internal/http-server/handlers/webinar/getWebinars"
	"meetbooker/internal/http-server/handlers/webinar/joinWebinar"
	"meetbooker/internal/http-server/middleware/mwauth"
	"meetbooker/internal/http-server/middleware/mwlogger"
	"meetbooker/internal/lib/logger/handlers/slogpretty"
	"meetbooker/internal/lib/logger/sl"
	"meetbooker/internal/notify"
	"meetbooker/internal/service"
	"meetbooker/internal/storage/mongodb"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting meet booker", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := mongodb.InitDB(context.Background(), &cfg.Mongo)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	auth := calendar.NewAuth(cfg.Google)
	cal := calendar.NewClient(log)
	tokens := calendar.NewRefresher(log, auth, storage)
	notifier := notify.NewLogNotifier(log)

	meetings := service.NewMeetingService(log, storage, storage, storage, storage, tokens, cal)
	webinars := service.NewWebinarService(log, storage, storage, tokens, cal)
	schedules := service.NewScheduleService(log, storage, storage, tokens, cal, auth, notifier)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Route("/meetings", func(r chi.Router) {
		// Public booking surface: visitors book without an account.
		r.Get("/events/user/{username}", getEvents.NewByUsername(log, meetings))
		r.Get("/schedule-page/{username}/{eventId}", getSchedulePage.New(log, meetings))
		r.Post("/schedule", scheduleMeeting.New(log, meetings))

		r.Group(func(r chi.Router) {
			r.Use(mwauth.New())

			r.Put("/availability", updateAvailability.New(log, meetings))
			r.Post("/events", createEvent.New(log, meetings))
			r.Get("/events", getEvents.New(log, meetings))
			r.Delete("/events/{eventId}", deleteEvent.New(log, meetings))
			r.Get("/scheduled", listMeetings.New(log, meetings))
			r.Delete("/scheduled/{meetingId}", cancelMeeting.New(log, meetings))
		})
	})

	router.Route("/webinars", func(r chi.Router) {
		r.Get("/onelink/{oneLinkId}", getWebinars.NewByOneLink(log, webinars))

		r.Group(func(r chi.Router) {
			r.Use(mwauth.New())

			r.Post("/", createWebinar.New(log, webinars))
			r.Get("/", getWebinars.New(log, webinars))
			r.Post("/{webinarId}/join", joinWebinar.New(log, webinars))
			r.Delete("/{webinarId}", deleteWebinar.New(log, webinars))
		})
	})

	router.Route("/schedule", func(r chi.Router) {
		r.Get("/slots/onelink/{oneLinkId}", listSlots.New(log, schedules))
		r.Post("/slots/{scheduleId}/request", requestSlot.New(log, schedules))

		r.Group(func(r chi.Router) {
			r.Use(mwauth.New())

			r.Get("/auth/url", calendarAuth.NewAuthURL(log, schedules))
			r.Get("/auth/callback", calendarAuth.NewCallback(log, schedules))
			r.Post("/slots", createSlot.New(log, schedules))
			r.Get("/requests", listSlots.NewRequests(log, schedules))
			r.Post("/slots/{scheduleId}/requests/{requestId}/accept", acceptRequest.New(log, schedules))
			r.Post("/slots/{scheduleId}/requests/{requestId}/reject", rejectRequest.New(log, schedules))
			r.Delete("/slots/{scheduleId}", deleteSlot.New(log, schedules))
		})
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(ctx); err != nil {
		log.Error("failed to close mongo connection", sl.Err(err))
	}

	log.Info("mongo connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
