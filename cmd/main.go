package main

import (
	"net/http"

	"github.com/rs/cors"
	_ "time/tzdata"

	"github.com/Yutux/immo-api/internal/app"
	"github.com/Yutux/immo-api/internal/config"
	"github.com/Yutux/immo-api/internal/metrics"
	"github.com/Yutux/immo-api/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)

	// 1) Config
	cfg := config.LoadConfig()

	// 2) Core application (repositories, services)
	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to initialize app")
	}
	defer application.Close()

	// 3) Router
	router := application.Router()

	// 4) CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})

	handler := metrics.HTTPMetricsMiddleware(c.Handler(router))

	utils.Logger.Infof("Starting %s on :%s", cfg.AppName, cfg.AppPort)
	utils.Logger.Infof("Images served from %s%s", cfg.BaseURL, "/uploads/properties/")
	if err := http.ListenAndServe(":"+cfg.AppPort, handler); err != nil {
		utils.Logger.Fatal("Server error:", err)
	}
}
