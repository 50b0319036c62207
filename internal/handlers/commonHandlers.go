package handlers

import (
	"net/http"
	"os"

	"github.com/rukundohamza104/radical-design-ltd/internal/database"
	"github.com/rukundohamza104/radical-design-ltd/internal/utils"
)

type CommonHandler struct {
	db database.Service
}

func NewCommonHandler(db database.Service) *CommonHandler {
	return &CommonHandler{db: db}
}

func (h *CommonHandler) PingHandler(w http.ResponseWriter, r *http.Request) {
	ping := os.Getenv("PING_MESSAGE")
	if ping == "" {
		ping = "ping"
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": ping})
}

func (h *CommonHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, h.db.Health())
}
