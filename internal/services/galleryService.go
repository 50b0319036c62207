package services

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rukundohamza104/radical-design-ltd/internal/metrics"
	"github.com/rukundohamza104/radical-design-ltd/internal/models"
	"github.com/rukundohamza104/radical-design-ltd/internal/repositories"
)

type GalleryService interface {
	Add(ctx context.Context, req models.AddGalleryImageRequest) (*models.GalleryImage, error)
	ListAll(ctx context.Context) ([]models.GalleryImage, error)
	ListVisible(ctx context.Context) ([]models.GalleryImage, error)
	// Update merges only the provided fields; it returns nil when the id is
	// unknown.
	Update(ctx context.Context, id primitive.ObjectID, req models.UpdateGalleryImageRequest) (*models.GalleryImage, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type galleryService struct {
	galleryRepo repositories.GalleryRepository
}

func NewGalleryService(galleryRepo repositories.GalleryRepository) GalleryService {
	return &galleryService{galleryRepo: galleryRepo}
}

func (s *galleryService) Add(ctx context.Context, req models.AddGalleryImageRequest) (*models.GalleryImage, error) {
	visible := true
	if req.Visible != nil {
		visible = *req.Visible
	}

	image := &models.GalleryImage{
		Title:    req.Title,
		Category: req.Category,
		ImageURL: req.ImageURL,
		Visible:  visible,
	}

	created, err := s.galleryRepo.Insert(ctx, image)
	if err != nil {
		return nil, err
	}

	metrics.GalleryImagesCreatedTotal.Inc()
	log.Info().Str("image_id", created.ID.Hex()).Str("category", created.Category).Msg("Gallery image created")
	return created, nil
}

func (s *galleryService) ListAll(ctx context.Context) ([]models.GalleryImage, error) {
	return s.galleryRepo.FindAll(ctx)
}

func (s *galleryService) ListVisible(ctx context.Context) ([]models.GalleryImage, error) {
	return s.galleryRepo.FindVisible(ctx)
}

func (s *galleryService) Update(ctx context.Context, id primitive.ObjectID, req models.UpdateGalleryImageRequest) (*models.GalleryImage, error) {
	fields := bson.M{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.ImageURL != nil {
		fields["image_url"] = *req.ImageURL
	}
	if req.Visible != nil {
		fields["visible"] = *req.Visible
	}
	if len(fields) == 0 {
		// Nothing to merge; behave as a read.
		return s.galleryRepo.FindByID(ctx, id)
	}

	return s.galleryRepo.UpdateFields(ctx, id, fields)
}

func (s *galleryService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.galleryRepo.Delete(ctx, id)
}
