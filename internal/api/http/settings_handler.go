package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Pagajob/easyold-sub001/internal/domain"
	"github.com/Pagajob/easyold-sub001/internal/service"
)

type SettingsHandler struct {
	settings service.SettingsService
}

func NewSettingsHandler(settings service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

func (h *SettingsHandler) Register(router *mux.Router) {
	router.HandleFunc("/settings/fee-policy", h.GetFeePolicy).Methods("GET")
	router.HandleFunc("/settings/fee-policy", h.UpdateFeePolicy).Methods("PUT")
	router.HandleFunc("/settings/company", h.GetCompany).Methods("GET")
	router.HandleFunc("/settings/company", h.UpdateCompany).Methods("PUT")
}

func (h *SettingsHandler) GetFeePolicy(w http.ResponseWriter, r *http.Request) {
	policy, err := h.settings.GetFeePolicy(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, policy)
}

func (h *SettingsHandler) UpdateFeePolicy(w http.ResponseWriter, r *http.Request) {
	var policy domain.FeePolicy
	if err := json.NewDecoder(r.Body).Decode(&policy); err != nil {
		writeBadRequest(w, "malformed request body")
		return
	}

	if err := h.settings.UpdateFeePolicy(r.Context(), &policy); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, policy)
}

func (h *SettingsHandler) GetCompany(w http.ResponseWriter, r *http.Request) {
	company, err := h.settings.GetCompany(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, company)
}

func (h *SettingsHandler) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	var company domain.Company
	if err := json.NewDecoder(r.Body).Decode(&company); err != nil {
		writeBadRequest(w, "malformed request body")
		return
	}

	if err := h.settings.UpdateCompany(r.Context(), &company); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, company)
}
