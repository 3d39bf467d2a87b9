package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Pagajob/easyold-sub001/internal/domain"
	"github.com/Pagajob/easyold-sub001/internal/service"
)

type ClientHandler struct {
	clients service.ClientService
}

func NewClientHandler(clients service.ClientService) *ClientHandler {
	return &ClientHandler{clients: clients}
}

func (h *ClientHandler) Register(router *mux.Router) {
	router.HandleFunc("/clients", h.Create).Methods("POST")
	router.HandleFunc("/clients", h.List).Methods("GET")
	router.HandleFunc("/clients/{id}", h.Get).Methods("GET")
	router.HandleFunc("/clients/{id}", h.Update).Methods("PUT")
}

func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var client domain.Client
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		writeBadRequest(w, "malformed request body")
		return
	}

	if err := h.clients.AddClient(r.Context(), &client); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, client)
}

func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r))
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	client, err := h.clients.GetClient(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, client)
}

func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r))
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	var client domain.Client
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		writeBadRequest(w, "malformed request body")
		return
	}
	client.ID = id

	if err := h.clients.UpdateClient(r.Context(), &client); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, client)
}

func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)

	clients, total, err := h.clients.ListClients(r.Context(), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"clients": clients,
		"meta":    listMeta{Page: page, PageSize: pageSize, Total: total},
	})
}
