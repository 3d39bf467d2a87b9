package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Pagajob/easyold-sub001/internal/security"
	"github.com/Pagajob/easyold-sub001/internal/service"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Vehicles     *VehicleHandler
	Clients      *ClientHandler
	Reservations *ReservationHandler
	Contracts    *ContractHandler
	Settings     *SettingsHandler
	Media        *MediaHandler
}

func NewHandlers(
	vehicles service.VehicleService,
	clients service.ClientService,
	reservations service.ReservationService,
	contracts service.ContractService,
	settings service.SettingsService,
	media *MediaHandler,
) *Handlers {
	return &Handlers{
		Vehicles:     NewVehicleHandler(vehicles),
		Clients:      NewClientHandler(clients),
		Reservations: NewReservationHandler(reservations),
		Contracts:    NewContractHandler(contracts),
		Settings:     NewSettingsHandler(settings),
		Media:        media,
	}
}

// NewRouter builds the HTTP surface. Everything under /api/v1 requires a
// bearer token except the storage endpoints, which are addressed by
// pre-issued upload URLs.
func NewRouter(h *Handlers, tokens security.TokenManager, localStorage bool) *mux.Router {
	router := mux.NewRouter()
	router.Use(LoggingMiddleware)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	if localStorage {
		h.Media.RegisterLocalStorageRoutes(router)
	}

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(AuthMiddleware(tokens))

	h.Vehicles.Register(api)
	h.Clients.Register(api)
	h.Reservations.Register(api)
	h.Contracts.Register(api)
	h.Settings.Register(api)
	h.Media.Register(api)

	return router
}
