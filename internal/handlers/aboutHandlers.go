package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/rukundohamza104/radical-design-ltd/internal/models"
	"github.com/rukundohamza104/radical-design-ltd/internal/services"
	"github.com/rukundohamza104/radical-design-ltd/internal/utils"
)

type AboutHandler struct {
	aboutService services.AboutService
}

func NewAboutHandler(aboutService services.AboutService) *AboutHandler {
	return &AboutHandler{aboutService: aboutService}
}

func (h *AboutHandler) GetAboutContent(w http.ResponseWriter, r *http.Request) {
	content, err := h.aboutService.Get(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error reading about content")
		utils.SendJSONError(w, "Failed to read about content", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, content)
}

func (h *AboutHandler) UpdateAboutContent(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateAboutContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendJSONError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	content, err := h.aboutService.Update(r.Context(), req)
	if err != nil {
		log.Error().Err(err).Msg("Error updating about content")
		utils.SendJSONError(w, "Failed to update about content", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, content)
}
