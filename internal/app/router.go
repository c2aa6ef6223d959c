package app

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Yutux/immo-api/internal/controllers"
	"github.com/Yutux/immo-api/internal/routes"
)

// Router assembles the full HTTP surface, including static serving of
// uploaded images. Tests exercise the same router the binary runs.
func (a *App) Router() *mux.Router {
	healthCtrl := controllers.NewHealthController()
	propertyCtrl := controllers.NewPropertyController(a.Properties)
	visitCtrl := controllers.NewVisitController(a.Visits, a.Properties)
	visitRequestCtrl := controllers.NewVisitRequestController(a.VisitRequests, a.Notifier)
	uploadCtrl := controllers.NewUploadController(a.Properties, a.Uploads)

	router := mux.NewRouter()

	router.HandleFunc(routes.Health, healthCtrl.HealthCheckHandler).Methods(http.MethodGet)
	router.Handle(routes.Metrics, promhttp.Handler()).Methods(http.MethodGet)

	router.HandleFunc(routes.Properties, propertyCtrl.ListProperties).Methods(http.MethodGet)
	router.HandleFunc(routes.Properties, propertyCtrl.CreateProperty).Methods(http.MethodPost)
	router.HandleFunc(routes.PropertyByID, propertyCtrl.GetProperty).Methods(http.MethodGet)
	router.HandleFunc(routes.PropertyByID, propertyCtrl.UpdateProperty).Methods(http.MethodPut)
	router.HandleFunc(routes.PropertyByID, propertyCtrl.DeleteProperty).Methods(http.MethodDelete)

	router.HandleFunc(routes.UploadPropertyImage, uploadCtrl.UploadImage).Methods(http.MethodPost)
	router.HandleFunc(routes.DeletePropertyImage, uploadCtrl.DeleteImage).Methods(http.MethodDelete)

	router.HandleFunc(routes.Visits, visitCtrl.ListVisits).Methods(http.MethodGet)
	router.HandleFunc(routes.Visits, visitCtrl.CreateVisit).Methods(http.MethodPost)
	router.HandleFunc(routes.VisitByID, visitCtrl.GetVisit).Methods(http.MethodGet)
	router.HandleFunc(routes.VisitByID, visitCtrl.UpdateVisit).Methods(http.MethodPut)
	router.HandleFunc(routes.VisitByID, visitCtrl.DeleteVisit).Methods(http.MethodDelete)

	router.HandleFunc(routes.VisitRequests, visitRequestCtrl.ListVisitRequests).Methods(http.MethodGet)
	router.HandleFunc(routes.VisitRequests, visitRequestCtrl.CreateVisitRequest).Methods(http.MethodPost)
	router.HandleFunc(routes.VisitRequestByID, visitRequestCtrl.GetVisitRequest).Methods(http.MethodGet)
	router.HandleFunc(routes.VisitRequestByID, visitRequestCtrl.DeleteVisitRequest).Methods(http.MethodDelete)

	router.PathPrefix(routes.UploadsPrefix).Handler(
		http.StripPrefix(routes.UploadsPrefix, http.FileServer(http.Dir(a.Config.UploadsRoot))),
	).Methods(http.MethodGet)

	return router
}
