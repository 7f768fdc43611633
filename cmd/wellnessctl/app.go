package main

import (
	"context"
	"fmt"

	"github.com/Dias221467/Wellness_Tracker/internal/config"
	"github.com/Dias221467/Wellness_Tracker/internal/database"
	"github.com/Dias221467/Wellness_Tracker/internal/repository"
	"github.com/Dias221467/Wellness_Tracker/internal/services"
	"github.com/Dias221467/Wellness_Tracker/pkg/email"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// app is the service graph the commands run against. It mirrors the
// server wiring minus HTTP and the websocket hub.
type app struct {
	db            *mongo.Database
	goals         *services.GoalService
	reminders     *services.ReminderService
	wellness      *services.WellnessService
	notifications *services.NotificationService
}

func openApp(cfg *config.Config) (*app, error) {
	db, err := database.ConnectDB(cfg)
	if err != nil {
		return nil, err
	}

	userRepo := repository.NewUserRepository(db)
	workoutRepo := repository.NewWorkoutRepository(db)
	foodRepo := repository.NewFoodRepository(db)
	moodRepo := repository.NewMoodRepository(db)
	goalRepo := repository.NewGoalRepository(db)

	// The in-memory store would start empty on every run.
	acks := repository.NewReminderAckRepository(db)

	var mailer services.Emailer
	if cfg.SMTPConfigured() {
		mailer = email.NewSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPSender, cfg.SMTPPassword)
	}

	goals := services.NewGoalService(goalRepo, workoutRepo, foodRepo, cfg.Location)
	return &app{
		db:        db,
		goals:     goals,
		reminders: services.NewReminderService(goals, workoutRepo, foodRepo, moodRepo, acks, cfg.Location),
		wellness:  services.NewWellnessService(workoutRepo, foodRepo, moodRepo, goalRepo, cfg.Location),
		notifications: services.NewNotificationService(repository.NewNotificationRepository(db),
			userRepo, goalRepo, workoutRepo, foodRepo, moodRepo, nil, mailer, cfg.Location),
	}, nil
}

func (a *app) Close(ctx context.Context) {
	_ = a.db.Client().Disconnect(ctx)
}

// withApp opens the service graph for the duration of fn.
func withApp(ctx context.Context, fn func(a *app) error) error {
	a, err := openApp(cfg)
	if err != nil {
		return err
	}
	defer a.Close(ctx)
	return fn(a)
}

func parseUserID(arg string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(arg)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid user id %q", arg)
	}
	return id, nil
}
