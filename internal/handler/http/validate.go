package http

import (
	"encoding/json"
	"net/http"

	"github.com/jdcruz/rbi-registry/internal/logger"
	"github.com/jdcruz/rbi-registry/internal/utils"
	"github.com/jdcruz/rbi-registry/models"
)

// validateRequest is the body of the validate-only endpoint. Mode defaults
// to "create" when omitted.
type validateRequest struct {
	Record models.Record `json:"record"`
	Mode   string        `json:"mode,omitempty"`
}

// validateResident runs the resident schema without persisting anything.
// The response is always 200 with the full result, valid or not; the web UI
// calls this on every form change and needs the result either way.
func (h *Handler) validateResident(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.validateResident").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	result, err := h.services.ResidentService.ValidateResident(r.Context(), req.Record, req.Mode)
	if err != nil {
		log.Err(err).Str("func", "*Handler.validateResident").Msg("validation run failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.ValidateResponse{Result: result}, http.StatusOK)
}
