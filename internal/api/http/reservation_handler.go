package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/Pagajob/easyold-sub001/internal/domain"
	"github.com/Pagajob/easyold-sub001/internal/service"
)

type ReservationHandler struct {
	reservations service.ReservationService
}

func NewReservationHandler(reservations service.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservations: reservations}
}

func (h *ReservationHandler) Register(router *mux.Router) {
	router.HandleFunc("/reservations", h.Create).Methods("POST")
	router.HandleFunc("/reservations", h.List).Methods("GET")
	router.HandleFunc("/reservations/{id}", h.Get).Methods("GET")
	router.HandleFunc("/reservations/{id}/confirm", h.Confirm).Methods("POST")
	router.HandleFunc("/reservations/{id}/cancel", h.Cancel).Methods("POST")
	router.HandleFunc("/reservations/{id}/departure-report", h.AcceptDepartureReport).Methods("POST")
	router.HandleFunc("/reservations/{id}/return-report", h.AcceptReturnReport).Methods("POST")
}

type createReservationRequest struct {
	VehicleID       int32               `json:"vehicle_id"`
	ClientID        int32               `json:"client_id"`
	ContractType    domain.ContractType `json:"contract_type,omitempty"`
	StartDate       time.Time           `json:"start_date"`
	ExpectedEndDate time.Time           `json:"expected_end_date"`
	RentalAmount    *float64            `json:"rental_amount,omitempty"`
	Notes           string              `json:"notes,omitempty"`
}

func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "malformed request body")
		return
	}

	reservation, err := h.reservations.CreateReservation(r.Context(), service.CreateReservationInput{
		VehicleID:       req.VehicleID,
		ClientID:        req.ClientID,
		ContractType:    req.ContractType,
		StartDate:       req.StartDate,
		ExpectedEndDate: req.ExpectedEndDate,
		RentalAmount:    req.RentalAmount,
		Notes:           req.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, reservation)
}

func (h *ReservationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r))
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	reservation, err := h.reservations.GetReservation(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reservation)
}

func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	status := r.URL.Query().Get("status")

	reservations, total, err := h.reservations.ListReservations(r.Context(), status, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"reservations": reservations,
		"meta":         listMeta{Page: page, PageSize: pageSize, Total: total},
	})
}

func (h *ReservationHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r))
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	reservation, err := h.reservations.ConfirmReservation(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reservation)
}

func (h *ReservationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r))
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	var req struct {
		Reason string `json:"reason,omitempty"`
	}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "malformed request body")
			return
		}
	}

	reservation, err := h.reservations.CancelReservation(r.Context(), id, req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reservation)
}

func (h *ReservationHandler) AcceptDepartureReport(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r))
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	var report domain.ConditionReport
	if err := json.NewDecoder(r.Body).Decode(&report); err != nil {
		writeBadRequest(w, "malformed request body")
		return
	}

	reservation, err := h.reservations.AcceptDepartureReport(r.Context(), id, &report)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reservation)
}

type returnReportRequest struct {
	domain.ConditionReport
	ExtraFees []domain.SelectedFee `json:"extra_fees,omitempty"`
}

func (h *ReservationHandler) AcceptReturnReport(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r))
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	var req returnReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "malformed request body")
		return
	}

	reservation, err := h.reservations.AcceptReturnReport(r.Context(), id, &req.ConditionReport, req.ExtraFees)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reservation)
}
