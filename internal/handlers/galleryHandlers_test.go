package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rukundohamza104/radical-design-ltd/internal/models"
)

type fakeGalleryService struct {
	images []models.GalleryImage
}

func (s *fakeGalleryService) Add(ctx context.Context, req models.AddGalleryImageRequest) (*models.GalleryImage, error) {
	img := models.GalleryImage{
		ID:       primitive.NewObjectID(),
		Title:    req.Title,
		Category: req.Category,
		ImageURL: req.ImageURL,
		Visible:  true,
	}
	if req.Visible != nil {
		img.Visible = *req.Visible
	}
	s.images = append(s.images, img)
	return &img, nil
}

func (s *fakeGalleryService) ListAll(ctx context.Context) ([]models.GalleryImage, error) {
	return s.images, nil
}

func (s *fakeGalleryService) ListVisible(ctx context.Context) ([]models.GalleryImage, error) {
	var visible []models.GalleryImage
	for _, img := range s.images {
		if img.Visible {
			visible = append(visible, img)
		}
	}
	return visible, nil
}

func (s *fakeGalleryService) Update(ctx context.Context, id primitive.ObjectID, req models.UpdateGalleryImageRequest) (*models.GalleryImage, error) {
	return nil, nil
}

func (s *fakeGalleryService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return nil
}

func TestGetVisibleGalleryExcludesHidden(t *testing.T) {
	hidden := false
	svc := &fakeGalleryService{}
	h := NewGalleryHandler(svc)

	rr := postJSON(t, h.AddGalleryImage, "/api/admin/gallery", models.AddGalleryImageRequest{
		Title:    "Event banner",
		Category: "Banners",
		ImageURL: "https://cdn.example.com/banner.jpg",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = postJSON(t, h.AddGalleryImage, "/api/admin/gallery", models.AddGalleryImageRequest{
		Title:    "Draft sticker",
		Category: "Stickers",
		ImageURL: "https://cdn.example.com/sticker.jpg",
		Visible:  &hidden,
	})
	require.Equal(t, http.StatusOK, rr.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/gallery", nil)
	rec := httptest.NewRecorder()
	h.GetVisibleGallery(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var visible []models.GalleryImage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &visible))
	require.Len(t, visible, 1)
	assert.Equal(t, "Event banner", visible[0].Title)

	req = httptest.NewRequest(http.MethodGet, "/api/admin/gallery", nil)
	rec = httptest.NewRecorder()
	h.GetGallery(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var all []models.GalleryImage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	assert.Len(t, all, 2)
}

func TestAddGalleryImageRejectsUnknownCategory(t *testing.T) {
	h := NewGalleryHandler(&fakeGalleryService{})

	rr := postJSON(t, h.AddGalleryImage, "/api/admin/gallery", models.AddGalleryImageRequest{
		Title:    "Mystery",
		Category: "Posters",
		ImageURL: "https://cdn.example.com/poster.jpg",
	})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid gallery category", resp["error"])
}

func TestAddGalleryImageRequiresFields(t *testing.T) {
	h := NewGalleryHandler(&fakeGalleryService{})

	rr := postJSON(t, h.AddGalleryImage, "/api/admin/gallery", models.AddGalleryImageRequest{
		Title: "No image URL",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
