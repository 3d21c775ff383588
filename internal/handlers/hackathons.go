package handlers

import (
	"net/http"

	"github.com/ASHU191/Coding-Hub/internal/auth"
	"github.com/ASHU191/Coding-Hub/internal/models"
)

// handleListHackathons returns the full catalog
func (h *Handlers) handleListHackathons(w http.ResponseWriter, r *http.Request) {
	hackathons, err := h.Hackathon.ListHackathons(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, hackathons)
}

// handleGetHackathon returns one hackathon
func (h *Handlers) handleGetHackathon(w http.ResponseWriter, r *http.Request) {
	id, err := stringParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	hackathon, err := h.Hackathon.GetHackathon(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, hackathon)
}

// handleCreateHackathon adds a hackathon to the catalog
func (h *Handlers) handleCreateHackathon(w http.ResponseWriter, r *http.Request) {
	var hackathon models.Hackathon
	if err := decodeJSON(r, &hackathon); err != nil {
		respondError(w, err)
		return
	}
	created, err := h.Hackathon.CreateHackathon(r.Context(), hackathon)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, created)
}

// handleUpdateHackathon edits a hackathon. The request body carries the
// full record; the id comes from the URL.
func (h *Handlers) handleUpdateHackathon(w http.ResponseWriter, r *http.Request) {
	id, err := stringParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	var hackathon models.Hackathon
	if err := decodeJSON(r, &hackathon); err != nil {
		respondError(w, err)
		return
	}
	updated, err := h.Hackathon.UpdateHackathon(r.Context(), id, hackathon)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, updated)
}

// handleDeleteHackathon removes a hackathon and everything attached to it
func (h *Handlers) handleDeleteHackathon(w http.ResponseWriter, r *http.Request) {
	id, err := stringParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	if err := h.Hackathon.DeleteHackathon(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondDeleted(w)
}

// handleCheckInQR serves a QR code PNG for the hackathon check-in page
func (h *Handlers) handleCheckInQR(w http.ResponseWriter, r *http.Request) {
	id, err := stringParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	png, err := h.Hackathon.CheckInQR(r.Context(), id, h.BaseURL)
	if err != nil {
		respondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// handleRegister enrolls the authenticated user in a hackathon
func (h *Handlers) handleRegister(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		respondError(w, ErrUnauthorized)
		return
	}
	id, err := stringParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	if err := h.Registration.Register(r.Context(), user.ID, id); err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, RegistrationResponse{UserID: user.ID, HackathonID: id, Registered: true})
}

// handleUnregister removes the authenticated user's enrollment
func (h *Handlers) handleUnregister(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		respondError(w, ErrUnauthorized)
		return
	}
	id, err := stringParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	if err := h.Registration.Unregister(r.Context(), user.ID, id); err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, RegistrationResponse{UserID: user.ID, HackathonID: id, Registered: false})
}

// handleMyHackathons lists the hackathons the authenticated user is registered for
func (h *Handlers) handleMyHackathons(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		respondError(w, ErrUnauthorized)
		return
	}
	hackathons, err := h.Registration.UserHackathons(r.Context(), user.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, hackathons)
}
