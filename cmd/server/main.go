package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dias221467/Wellness_Tracker/internal/config"
	"github.com/Dias221467/Wellness_Tracker/internal/database"
	"github.com/Dias221467/Wellness_Tracker/internal/handlers"
	"github.com/Dias221467/Wellness_Tracker/internal/repository"
	"github.com/Dias221467/Wellness_Tracker/internal/scheduler"
	"github.com/Dias221467/Wellness_Tracker/internal/services"
	"github.com/Dias221467/Wellness_Tracker/pkg/email"
	"github.com/Dias221467/Wellness_Tracker/pkg/logger"
	"github.com/Dias221467/Wellness_Tracker/pkg/middleware"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Load configuration from .env file
	cfg := config.LoadConfig()

	logger.InitLogger(cfg.LogLevel)
	logger.Log.Info("Logger initialized")

	db, err := database.ConnectDB(cfg)
	if err != nil {
		logger.Log.WithError(err).Fatal("Database connection error")
	}

	// --- Repositories ---
	userRepo := repository.NewUserRepository(db)
	workoutRepo := repository.NewWorkoutRepository(db)
	foodRepo := repository.NewFoodRepository(db)
	moodRepo := repository.NewMoodRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	var ackStore services.AckStore = services.NewMemoryAckStore()
	if cfg.AckStore == config.AckStoreMongo {
		ackStore = repository.NewReminderAckRepository(db)
	}
	logger.Log.WithField("ack_store", cfg.AckStore).Info("Reminder acknowledgement store selected")

	hub := services.NewRealtimeHub()
	var mailer services.Emailer
	if cfg.SMTPConfigured() {
		mailer = email.NewSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPSender, cfg.SMTPPassword)
	}

	// --- Services ---
	userService := services.NewUserService(userRepo)
	workoutService := services.NewWorkoutService(workoutRepo)
	foodService := services.NewFoodService(foodRepo)
	moodService := services.NewMoodService(moodRepo)
	goalService := services.NewGoalService(goalRepo, workoutRepo, foodRepo, cfg.Location)
	reminderService := services.NewReminderService(goalService, workoutRepo, foodRepo, moodRepo, ackStore, cfg.Location)
	wellnessService := services.NewWellnessService(workoutRepo, foodRepo, moodRepo, goalRepo, cfg.Location)
	notificationService := services.NewNotificationService(notificationRepo, userRepo, goalRepo, workoutRepo, foodRepo, moodRepo, hub, mailer, cfg.Location)

	// --- Handlers ---
	userHandler := handlers.NewUserHandler(userService, cfg)
	workoutHandler := handlers.NewWorkoutHandler(workoutService)
	foodHandler := handlers.NewFoodHandler(foodService)
	moodHandler := handlers.NewMoodHandler(moodService)
	goalHandler := handlers.NewGoalHandler(goalService)
	reminderHandler := handlers.NewReminderHandler(reminderService)
	wellnessHandler := handlers.NewWellnessHandler(wellnessService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	socketHandler := handlers.NewNotificationSocketHandler(hub, cfg.JWTSecret, cfg.AllowedOrigins)

	router := mux.NewRouter()
	api := router.PathPrefix("/api").Subrouter()

	// Public auth routes
	api.HandleFunc("/auth/register", userHandler.RegisterUserHandler).Methods("POST")
	api.HandleFunc("/auth/login", userHandler.LoginUserHandler).Methods("POST")

	// Websocket auth is checked by the handler itself from ?token=
	api.Handle("/ws", socketHandler).Methods("GET")

	protected := api.NewRoute().Subrouter()
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protected.Use(middleware.NewActivityTracker(userService, 5*time.Minute).Middleware)

	protected.HandleFunc("/auth/me", userHandler.MeHandler).Methods("GET")
	protected.HandleFunc("/users/profile", userHandler.GetProfileHandler).Methods("GET")
	protected.HandleFunc("/users/profile", userHandler.UpdateProfileHandler).Methods("PUT")

	protected.HandleFunc("/workouts", workoutHandler.CreateWorkoutHandler).Methods("POST")
	protected.HandleFunc("/workouts", workoutHandler.GetWorkoutsHandler).Methods("GET")
	protected.HandleFunc("/workouts/{id}", workoutHandler.DeleteWorkoutHandler).Methods("DELETE")

	protected.HandleFunc("/foods", foodHandler.CreateFoodHandler).Methods("POST")
	protected.HandleFunc("/foods", foodHandler.GetFoodsHandler).Methods("GET")
	protected.HandleFunc("/foods/{id}", foodHandler.DeleteFoodHandler).Methods("DELETE")

	protected.HandleFunc("/mental-logs", moodHandler.CreateMoodHandler).Methods("POST")
	protected.HandleFunc("/mental-logs", moodHandler.GetMoodsHandler).Methods("GET")
	protected.HandleFunc("/mental-logs/{id}", moodHandler.DeleteMoodHandler).Methods("DELETE")

	protected.HandleFunc("/goals", goalHandler.CreateGoalHandler).Methods("POST")
	protected.HandleFunc("/goals", goalHandler.GetGoalsHandler).Methods("GET")
	protected.HandleFunc("/goals/{id}", goalHandler.DeleteGoalHandler).Methods("DELETE")

	protected.HandleFunc("/reminders", reminderHandler.GetRemindersHandler).Methods("GET")
	protected.HandleFunc("/reminders/viewed", reminderHandler.MarkViewedHandler).Methods("POST")

	protected.HandleFunc("/wellness/history", wellnessHandler.HistoryHandler).Methods("GET")
	protected.HandleFunc("/dashboard", wellnessHandler.DashboardHandler).Methods("GET")

	protected.HandleFunc("/notifications", notificationHandler.GetUserNotificationsHandler).Methods("GET")
	protected.HandleFunc("/notifications/{id}/read", notificationHandler.MarkAsReadHandler).Methods("POST")
	protected.HandleFunc("/notifications/{id}", notificationHandler.DeleteNotificationHandler).Methods("DELETE")

	// Apply middleware for logging
	router.Use(middleware.LoggingMiddleware)

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
	})

	if cfg.NudgesEnabled {
		jobs, err := scheduler.StartNotificationCronJobs(notificationService, cfg.Location)
		if err != nil {
			logger.Log.WithError(err).Fatal("Failed to schedule notification jobs")
		}
		defer jobs.Stop()
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           c.Handler(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.WithField("port", cfg.Port).Info("Server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.WithError(err).Fatal("HTTP server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.WithError(err).Error("Graceful shutdown failed")
	}
	if err := db.Client().Disconnect(ctx); err != nil {
		logger.Log.WithError(err).Error("Failed to disconnect from MongoDB")
	}
	logger.Log.Info("Server stopped")
}
