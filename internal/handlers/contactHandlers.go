package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/rukundohamza104/radical-design-ltd/internal/models"
	"github.com/rukundohamza104/radical-design-ltd/internal/services"
	"github.com/rukundohamza104/radical-design-ltd/internal/utils"
)

type ContactHandler struct {
	messageService services.MessageService
}

func NewContactHandler(messageService services.MessageService) *ContactHandler {
	return &ContactHandler{messageService: messageService}
}

func (h *ContactHandler) SubmitContactForm(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error().Err(err).Msg("Error decoding contact form body")
		utils.SendJSONError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	if req.Name == "" || req.Email == "" || req.Phone == "" || req.Message == "" {
		utils.SendJSONError(w, "All fields are required", http.StatusBadRequest)
		return
	}

	if !utils.IsValidEmail(req.Email) {
		utils.SendJSONError(w, "Invalid email format", http.StatusBadRequest)
		return
	}

	msg, err := h.messageService.Submit(r.Context(), req)
	if err != nil {
		log.Error().Err(err).Msg("Error saving contact message")
		utils.SendJSONError(w, "Failed to save message", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Thank you! We received your message.",
		"id":      msg.ID.Hex(),
	})
}
