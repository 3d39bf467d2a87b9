package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Pagajob/easyold-sub001/internal/service"
)

type ContractHandler struct {
	contracts service.ContractService
}

func NewContractHandler(contracts service.ContractService) *ContractHandler {
	return &ContractHandler{contracts: contracts}
}

func (h *ContractHandler) Register(router *mux.Router) {
	router.HandleFunc("/reservations/{id}/contract", h.Generate).Methods("POST")
	router.HandleFunc("/reservations/{id}/contract", h.Status).Methods("GET")
}

// Generate triggers contract generation and waits for the outcome. A call
// made while a generation is already running joins it instead of starting a
// second one.
func (h *ContractHandler) Generate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r))
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	url, err := h.contracts.Generate(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"document_url": url})
}

func (h *ContractHandler) Status(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r))
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	status, err := h.contracts.Status(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}
