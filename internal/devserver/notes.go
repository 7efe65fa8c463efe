package devserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-mail-notes/internal/logger"
	"github.com/MKhiriev/go-mail-notes/models"
)

// deliverRequest is the body of POST /dev/notes.
type deliverRequest struct {
	To       string `json:"to"`
	Title    string `json:"title"`
	Markdown string `json:"markdown"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	rotate, _ := strconv.ParseBool(r.URL.Query().Get("rotate"))

	resp, err := h.mailbox.Register(req, rotate)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Str("alias", resp.EmailAddress).Bool("rotate", rotate).Msg("vault registered")
	h.writeJSON(w, r, http.StatusOK, resp)
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req models.DownloadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	resp, err := h.mailbox.Download(req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, resp)
}

func (h *Handler) deliver(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req deliverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	note, err := h.mailbox.Deliver(req.To, req.Title, req.Markdown)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if note.ID == "" {
		log.Info().Str("to", req.To).Msg("note dropped, account over quota")
		w.WriteHeader(http.StatusAccepted)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, note)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	logger.FromContext(r.Context()).Err(err).Int("status", status).Msg("request failed")
	http.Error(w, err.Error(), status)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromContext(r.Context()).Err(err).Msg("failed to encode response")
	}
}
