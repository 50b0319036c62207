package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/rukundohamza104/radical-design-ltd/internal/models"
	"github.com/rukundohamza104/radical-design-ltd/internal/services"
	"github.com/rukundohamza104/radical-design-ltd/internal/utils"
)

type MessageHandler struct {
	messageService services.MessageService
}

func NewMessageHandler(messageService services.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// GetMessages lists contact messages newest-first; ?q= filters by substring.
func (h *MessageHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	messages, err := h.messageService.List(r.Context(), query)
	if err != nil {
		log.Error().Err(err).Msg("Error listing messages")
		utils.SendJSONError(w, "Failed to list messages", http.StatusInternalServerError)
		return
	}

	// Storage order is oldest-first; the admin panel shows newest on top.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	utils.RespondWithJSON(w, http.StatusOK, messages)
}

func (h *MessageHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id, err := utils.GetObjectIDFromVars(w, r, "id")
	if err != nil {
		return
	}

	if err := h.messageService.Delete(r.Context(), id); err != nil {
		log.Error().Err(err).Str("message_id", id.Hex()).Msg("Error deleting message")
		utils.SendJSONError(w, "Failed to delete message", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *MessageHandler) MarkMessageRead(w http.ResponseWriter, r *http.Request) {
	id, err := utils.GetObjectIDFromVars(w, r, "id")
	if err != nil {
		return
	}

	var req models.MarkReadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendJSONError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.messageService.MarkRead(r.Context(), id, req.Read); err != nil {
		log.Error().Err(err).Str("message_id", id.Hex()).Msg("Error updating message read flag")
		utils.SendJSONError(w, "Failed to update message", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
}
