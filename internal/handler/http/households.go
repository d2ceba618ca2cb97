package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jdcruz/rbi-registry/internal/logger"
	"github.com/jdcruz/rbi-registry/internal/utils"
	"github.com/jdcruz/rbi-registry/models"
)

func (h *Handler) createHousehold(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var rec models.Record
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		log.Err(err).Str("func", "*Handler.createHousehold").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.HouseholdService.CreateHousehold(r.Context(), rec)
	if err != nil {
		h.writeServiceError(w, r, err, "error creating household")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getHousehold(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")
	household, members, err := h.services.HouseholdService.GetHousehold(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getHousehold").Str("id", id).Msg("error fetching household")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.HouseholdResponse{
		Household:   household,
		MemberCount: members,
	}, http.StatusOK)
}
