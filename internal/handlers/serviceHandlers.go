package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/rukundohamza104/radical-design-ltd/internal/models"
	"github.com/rukundohamza104/radical-design-ltd/internal/services"
	"github.com/rukundohamza104/radical-design-ltd/internal/utils"
)

type ServiceHandler struct {
	catalogService services.CatalogService
}

func NewServiceHandler(catalogService services.CatalogService) *ServiceHandler {
	return &ServiceHandler{catalogService: catalogService}
}

// GetServices lists every service regardless of visibility (admin view).
func (h *ServiceHandler) GetServices(w http.ResponseWriter, r *http.Request) {
	list, err := h.catalogService.ListAll(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error listing services")
		utils.SendJSONError(w, "Failed to list services", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

// GetVisibleServices is the public listing; hidden services are excluded.
func (h *ServiceHandler) GetVisibleServices(w http.ResponseWriter, r *http.Request) {
	list, err := h.catalogService.ListVisible(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error listing visible services")
		utils.SendJSONError(w, "Failed to list services", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

func (h *ServiceHandler) AddService(w http.ResponseWriter, r *http.Request) {
	var req models.AddServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendJSONError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	if req.Name == "" || req.Description == "" || req.Category == "" || req.ImageURL == "" {
		utils.SendJSONError(w, "Missing required fields", http.StatusBadRequest)
		return
	}

	svc, err := h.catalogService.Add(r.Context(), req)
	if err != nil {
		log.Error().Err(err).Msg("Error creating service")
		utils.SendJSONError(w, "Failed to create service", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, svc)
}

func (h *ServiceHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	id, err := utils.GetObjectIDFromVars(w, r, "id")
	if err != nil {
		return
	}

	var req models.UpdateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendJSONError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	svc, err := h.catalogService.Update(r.Context(), id, req)
	if err != nil {
		log.Error().Err(err).Str("service_id", id.Hex()).Msg("Error updating service")
		utils.SendJSONError(w, "Failed to update service", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, svc)
}

func (h *ServiceHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	id, err := utils.GetObjectIDFromVars(w, r, "id")
	if err != nil {
		return
	}

	if err := h.catalogService.Delete(r.Context(), id); err != nil {
		log.Error().Err(err).Str("service_id", id.Hex()).Msg("Error deleting service")
		utils.SendJSONError(w, "Failed to delete service", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
}
