package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/rukundohamza104/radical-design-ltd/internal/models"
	"github.com/rukundohamza104/radical-design-ltd/internal/services"
	"github.com/rukundohamza104/radical-design-ltd/internal/utils"
)

type SettingsHandler struct {
	settingsService services.SettingsService
}

func NewSettingsHandler(settingsService services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.Get(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error reading settings")
		utils.SendJSONError(w, "Failed to read settings", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, settings)
}

func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendJSONError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	if req.Password != nil {
		utils.SendJSONError(w, "Use dedicated password endpoint", http.StatusBadRequest)
		return
	}

	settings, err := h.settingsService.Update(r.Context(), req)
	if err != nil {
		log.Error().Err(err).Msg("Error updating settings")
		utils.SendJSONError(w, "Failed to update settings", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, settings)
}
