package api

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"fresh-connect/domain"
	"fresh-connect/errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type handlers struct {
	core Core
	log  *slog.Logger
}

type changeGroupResponse struct {
	GroupID string `json:"groupId"`
}

func (h handlers) register(w http.ResponseWriter, r *http.Request) {
	var registration domain.Registration
	if err := json.NewDecoder(r.Body).Decode(&registration); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("malformed body: %w", err))
		return
	}
	user, err := h.core.Register(registration)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h handlers) currentUser(w http.ResponseWriter, r *http.Request) {
	user, found, err := h.core.CurrentUser()
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "not_found", errors.ErrUserNotFound)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h handlers) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.core.Logout(); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h handlers) currentGroup(w http.ResponseWriter, r *http.Request) {
	group, found, err := h.core.CurrentGroup(chi.URLParam(r, "userID"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "not_found", errors.ErrGroupNotFound)
		return
	}
	writeJSON(w, http.StatusOK, group)
}

func (h handlers) changeGroup(w http.ResponseWriter, r *http.Request) {
	groupID, found, err := h.core.ChangeGroup(chi.URLParam(r, "userID"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "not_found", errors.ErrUserNotFound)
		return
	}
	writeJSON(w, http.StatusOK, changeGroupResponse{GroupID: groupID})
}

func (h handlers) sendMessage(w http.ResponseWriter, r *http.Request) {
	var message domain.OutgoingMessage
	if err := json.NewDecoder(r.Body).Decode(&message); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("malformed body: %w", err))
		return
	}
	sent, found, err := h.core.SendMessage(chi.URLParam(r, "groupID"), message)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "not_found", errors.ErrGroupNotFound)
		return
	}
	writeJSON(w, http.StatusAccepted, sent)
}

func (h handlers) listings(w http.ResponseWriter, r *http.Request) {
	institution := r.URL.Query().Get("institution")
	if institution == "" {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("institution is required"))
		return
	}
	writeJSON(w, http.StatusOK, h.core.Listings(r.Context(), institution))
}

// fail maps domain errors to statuses. Anything unexpected is a storage failure
// and only the generic notice leaves the server.
func (h handlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case stderrors.Is(err, errors.ErrNotNewAdmission),
		stderrors.Is(err, errors.ErrInvalidProfile),
		stderrors.Is(err, errors.ErrEmptyMessage),
		stderrors.Is(err, errors.ErrMessageTooLong):
		writeError(w, http.StatusUnprocessableEntity, "validation_failed", err)
	default:
		h.log.Error("Operation failed", "error", err, "path", r.URL.Path, "request_id", RequestIDFrom(r.Context()))
		writeError(w, http.StatusInternalServerError, "storage_failure", errors.ErrStorage)
	}
}
