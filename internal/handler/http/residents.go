package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jdcruz/rbi-registry/internal/logger"
	"github.com/jdcruz/rbi-registry/internal/service"
	"github.com/jdcruz/rbi-registry/internal/utils"
	"github.com/jdcruz/rbi-registry/models"
)

func (h *Handler) createResident(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var rec models.Record
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		log.Err(err).Str("func", "*Handler.createResident").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.ResidentService.CreateResident(r.Context(), rec)
	if err != nil {
		h.writeServiceError(w, r, err, "error creating resident")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getResident(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")
	resident, err := h.services.ResidentService.GetResident(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getResident").Str("id", id).Msg("error fetching resident")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, resident, http.StatusOK)
}

func (h *Handler) updateResident(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var rec models.Record
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		log.Err(err).Str("func", "*Handler.updateResident").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	id := chi.URLParam(r, "id")
	updated, err := h.services.ResidentService.UpdateResident(r.Context(), id, rec)
	if err != nil {
		h.writeServiceError(w, r, err, "error updating resident")
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteResident(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")
	if err := h.services.ResidentService.DeleteResident(r.Context(), id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteResident").Str("id", id).Msg("error deleting resident")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) searchResidents(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	filter, err := residentFilterFromQuery(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.searchResidents").Msg("invalid search parameters")
		http.Error(w, "invalid search parameters", http.StatusBadRequest)
		return
	}

	residents, total, err := h.services.ResidentService.SearchResidents(r.Context(), filter)
	if err != nil {
		log.Err(err).Str("func", "*Handler.searchResidents").Msg("error searching residents")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	if residents == nil {
		residents = []models.Resident{}
	}

	utils.WriteJSON(w, models.SearchResponse{
		Residents: residents,
		Total:     total,
		Limit:     filter.Limit,
		Offset:    filter.Offset,
	}, http.StatusOK)
}

// writeServiceError maps a service-layer error onto an HTTP response.
// Validation failures keep their full field-level result in the body so the
// form UI can highlight individual inputs; everything else degrades to the
// plain-text status mapping.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.FromRequest(r)

	var verr *service.ValidationError
	if errors.As(err, &verr) {
		log.Info().Int("errors", len(verr.Result.Errors)).Msg("record failed validation")
		utils.WriteJSON(w, models.ValidateResponse{Result: verr.Result}, http.StatusUnprocessableEntity)
		return
	}

	log.Err(err).Msg(msg)
	http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
}

func residentFilterFromQuery(r *http.Request) (models.ResidentFilter, error) {
	q := r.URL.Query()

	filter := models.ResidentFilter{
		Name:             q.Get("name"),
		CivilStatus:      q.Get("civil_status"),
		Sex:              q.Get("sex"),
		EmploymentStatus: q.Get("employment_status"),
		HouseholdID:      q.Get("household_id"),
	}

	for param, dst := range map[string]*uint64{
		"limit":  &filter.Limit,
		"offset": &filter.Offset,
	} {
		raw := q.Get(param)
		if raw == "" {
			continue
		}
		value, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return models.ResidentFilter{}, err
		}
		*dst = value
	}

	return filter, nil
}
