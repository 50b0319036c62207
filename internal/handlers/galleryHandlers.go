package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/rukundohamza104/radical-design-ltd/internal/models"
	"github.com/rukundohamza104/radical-design-ltd/internal/services"
	"github.com/rukundohamza104/radical-design-ltd/internal/utils"
)

type GalleryHandler struct {
	galleryService services.GalleryService
}

func NewGalleryHandler(galleryService services.GalleryService) *GalleryHandler {
	return &GalleryHandler{galleryService: galleryService}
}

// GetGallery lists every image regardless of visibility (admin view).
func (h *GalleryHandler) GetGallery(w http.ResponseWriter, r *http.Request) {
	images, err := h.galleryService.ListAll(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error listing gallery images")
		utils.SendJSONError(w, "Failed to list gallery images", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, images)
}

// GetVisibleGallery is the public listing; hidden images are excluded.
func (h *GalleryHandler) GetVisibleGallery(w http.ResponseWriter, r *http.Request) {
	images, err := h.galleryService.ListVisible(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error listing visible gallery images")
		utils.SendJSONError(w, "Failed to list gallery images", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, images)
}

func (h *GalleryHandler) AddGalleryImage(w http.ResponseWriter, r *http.Request) {
	var req models.AddGalleryImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendJSONError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	if req.Title == "" || req.Category == "" || req.ImageURL == "" {
		utils.SendJSONError(w, "Missing required fields", http.StatusBadRequest)
		return
	}
	if !models.IsValidGalleryCategory(req.Category) {
		utils.SendJSONError(w, "Invalid gallery category", http.StatusBadRequest)
		return
	}

	image, err := h.galleryService.Add(r.Context(), req)
	if err != nil {
		log.Error().Err(err).Msg("Error creating gallery image")
		utils.SendJSONError(w, "Failed to create gallery image", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, image)
}

func (h *GalleryHandler) UpdateGalleryImage(w http.ResponseWriter, r *http.Request) {
	id, err := utils.GetObjectIDFromVars(w, r, "id")
	if err != nil {
		return
	}

	var req models.UpdateGalleryImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendJSONError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	if req.Category != nil && !models.IsValidGalleryCategory(*req.Category) {
		utils.SendJSONError(w, "Invalid gallery category", http.StatusBadRequest)
		return
	}

	image, err := h.galleryService.Update(r.Context(), id, req)
	if err != nil {
		log.Error().Err(err).Str("image_id", id.Hex()).Msg("Error updating gallery image")
		utils.SendJSONError(w, "Failed to update gallery image", http.StatusInternalServerError)
		return
	}

	// Unknown ids fall through with a null body; the admin panel treats it
	// as "nothing updated".
	utils.RespondWithJSON(w, http.StatusOK, image)
}

func (h *GalleryHandler) DeleteGalleryImage(w http.ResponseWriter, r *http.Request) {
	id, err := utils.GetObjectIDFromVars(w, r, "id")
	if err != nil {
		return
	}

	if err := h.galleryService.Delete(r.Context(), id); err != nil {
		log.Error().Err(err).Str("image_id", id.Hex()).Msg("Error deleting gallery image")
		utils.SendJSONError(w, "Failed to delete gallery image", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
}
