package container

import (
	"log/slog"

	"github.com/kiran-dev/eventman/internal/auth"
	"github.com/kiran-dev/eventman/internal/config"
	"github.com/kiran-dev/eventman/internal/models"
	"github.com/kiran-dev/eventman/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger        *slog.Logger
	Config        *config.Config
	MongoDBClient *mongo.Client
	Tokens        *auth.Manager
	AuthService   *services.AuthService
	EventService  *services.EventService
}

// NewContainer creates a new dependency injection container
func NewContainer(logger *slog.Logger, cfg *config.Config, mongoDBClient *mongo.Client) *Container {
	repo := models.MongodbNewRepo(mongoDBClient, cfg.MongoDBName)
	tokens := auth.NewManager(cfg.JWTSecret, cfg.TokenTTL)

	authService := services.NewAuthService(repo, tokens, cfg.BcryptCost)
	eventService := services.NewEventService(repo, repo, cfg.DisplayTimezone)

	return &Container{
		Logger:        logger,
		Config:        cfg,
		MongoDBClient: mongoDBClient,
		Tokens:        tokens,
		AuthService:   authService,
		EventService:  eventService,
	}
}
