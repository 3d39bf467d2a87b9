package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Pagajob/easyold-sub001/internal/domain"
	"github.com/Pagajob/easyold-sub001/internal/service"
)

type VehicleHandler struct {
	vehicles service.VehicleService
}

func NewVehicleHandler(vehicles service.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicles: vehicles}
}

func (h *VehicleHandler) Register(router *mux.Router) {
	router.HandleFunc("/vehicles", h.Create).Methods("POST")
	router.HandleFunc("/vehicles", h.List).Methods("GET")
	router.HandleFunc("/vehicles/{id}", h.Get).Methods("GET")
	router.HandleFunc("/vehicles/{id}", h.Update).Methods("PUT")
}

func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var vehicle domain.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&vehicle); err != nil {
		writeBadRequest(w, "malformed request body")
		return
	}

	if err := h.vehicles.AddVehicle(r.Context(), &vehicle); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, vehicle)
}

func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r))
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	vehicle, err := h.vehicles.GetVehicle(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r))
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	var vehicle domain.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&vehicle); err != nil {
		writeBadRequest(w, "malformed request body")
		return
	}
	vehicle.ID = id

	if err := h.vehicles.UpdateVehicle(r.Context(), &vehicle); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)

	vehicles, total, err := h.vehicles.ListVehicles(r.Context(), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"vehicles": vehicles,
		"meta":     listMeta{Page: page, PageSize: pageSize, Total: total},
	})
}
