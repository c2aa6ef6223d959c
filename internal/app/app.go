package app

import (
	"github.com/Yutux/immo-api/internal/config"
	"github.com/Yutux/immo-api/internal/repositories"
	"github.com/Yutux/immo-api/internal/services"
	"github.com/Yutux/immo-api/internal/utils"
)

// App holds the repositories and services, constructed once at process
// start and handed by reference to every controller that needs them.
type App struct {
	Config *config.Config

	Properties    repositories.PropertyRepository
	Visits        repositories.VisitRepository
	VisitRequests repositories.VisitRequestRepository

	Uploads  *services.UploadService
	Notifier services.NotificationService
}

func NewApp(cfg *config.Config) (*App, error) {
	utils.Logger.Info("Initializing immo-api App")

	uploads, err := services.NewUploadService(cfg.PropertyUploadDir)
	if err != nil {
		return nil, err
	}

	return &App{
		Config:        cfg,
		Properties:    repositories.NewPropertyRepository(uploads),
		Visits:        repositories.NewVisitRepository(),
		VisitRequests: repositories.NewVisitRequestRepository(),
		Uploads:       uploads,
		Notifier:      services.NewNotificationService(cfg),
	}, nil
}

// Close is a no-op here but included for consistency.
func (a *App) Close() {
	utils.Logger.Info("immo-api app shutting down.")
}
