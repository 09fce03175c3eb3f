package main

import (
	"database/sql"

	"github.com/jonboulle/clockwork"

	"github.com/Matthieu-Gauthier/octagon-sub000/internal/eventbus"
	"github.com/Matthieu-Gauthier/octagon-sub000/internal/events"
	eventsdb "github.com/Matthieu-Gauthier/octagon-sub000/internal/events/db"
	"github.com/Matthieu-Gauthier/octagon-sub000/internal/leagues"
	leaguesdb "github.com/Matthieu-Gauthier/octagon-sub000/internal/leagues/db"
	"github.com/Matthieu-Gauthier/octagon-sub000/internal/predictions"
	predictionsdb "github.com/Matthieu-Gauthier/octagon-sub000/internal/predictions/db"
	"github.com/Matthieu-Gauthier/octagon-sub000/internal/standings"
	"github.com/Matthieu-Gauthier/octagon-sub000/internal/users"
	usersdb "github.com/Matthieu-Gauthier/octagon-sub000/internal/users/db"
)

type Services struct {
	Users       *users.Service
	Events      *events.Service
	Leagues     *leagues.Service
	Predictions *predictions.Service
	Standings   *standings.Service

	// EventsApp is reused by the live sync job.
	EventsApp *events.App
}

func setupServices(database *sql.DB, publisher eventbus.Publisher, clock clockwork.Clock) *Services {
	// Wire up dependency injection chain
	// Database layer → Repository layer → App layer → Service layer

	// Users
	userQueries := usersdb.New(database)
	userRepo := users.NewRepository(userQueries)
	userApp := users.NewApp(userRepo)
	userService := users.NewService(userApp)

	// Events, fights and fighters
	eventQueries := eventsdb.New(database)
	eventRepo := events.NewRepository(eventQueries)
	eventApp := events.NewApp(eventRepo, publisher)
	eventService := events.NewService(eventApp)

	// Leagues
	leagueQueries := leaguesdb.New(database)
	leagueRepo := leagues.NewRepository(leagueQueries, database)
	leagueApp := leagues.NewApp(leagueRepo, userApp)
	leagueService := leagues.NewService(leagueApp)

	// Predictions
	predictionQueries := predictionsdb.New(database)
	predictionRepo := predictions.NewRepository(predictionQueries)
	predictionApp := predictions.NewApp(predictionRepo, eventRepo, leagueApp, clock)
	predictionService := predictions.NewService(predictionApp)

	// Standings
	standingApp := standings.NewApp(leagueApp, predictionApp, eventRepo)
	standingService := standings.NewService(standingApp)

	return &Services{
		Users:       userService,
		Events:      eventService,
		Leagues:     leagueService,
		Predictions: predictionService,
		Standings:   standingService,
		EventsApp:   eventApp,
	}
}
