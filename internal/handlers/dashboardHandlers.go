package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/rukundohamza104/radical-design-ltd/internal/services"
	"github.com/rukundohamza104/radical-design-ltd/internal/utils"
)

type DashboardHandler struct {
	dashboardService services.DashboardService
}

func NewDashboardHandler(dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.Stats(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error building dashboard stats")
		utils.SendJSONError(w, "Failed to load dashboard", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, stats)
}
