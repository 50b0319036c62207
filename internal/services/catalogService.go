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

// CatalogService manages the printing/media services the business offers on
// its site.
type CatalogService interface {
	Add(ctx context.Context, req models.AddServiceRequest) (*models.Service, error)
	ListAll(ctx context.Context) ([]models.Service, error)
	ListVisible(ctx context.Context) ([]models.Service, error)
	Update(ctx context.Context, id primitive.ObjectID, req models.UpdateServiceRequest) (*models.Service, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type catalogService struct {
	serviceRepo repositories.ServiceRepository
}

func NewCatalogService(serviceRepo repositories.ServiceRepository) CatalogService {
	return &catalogService{serviceRepo: serviceRepo}
}

func (s *catalogService) Add(ctx context.Context, req models.AddServiceRequest) (*models.Service, error) {
	visible := true
	if req.Visible != nil {
		visible = *req.Visible
	}

	svc := &models.Service{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Visible:     visible,
	}

	created, err := s.serviceRepo.Insert(ctx, svc)
	if err != nil {
		return nil, err
	}

	metrics.ServicesCreatedTotal.Inc()
	log.Info().Str("service_id", created.ID.Hex()).Str("name", created.Name).Msg("Service created")
	return created, nil
}

func (s *catalogService) ListAll(ctx context.Context) ([]models.Service, error) {
	return s.serviceRepo.FindAll(ctx)
}

func (s *catalogService) ListVisible(ctx context.Context) ([]models.Service, error) {
	return s.serviceRepo.FindVisible(ctx)
}

func (s *catalogService) Update(ctx context.Context, id primitive.ObjectID, req models.UpdateServiceRequest) (*models.Service, error) {
	fields := bson.M{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
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
		return s.serviceRepo.FindByID(ctx, id)
	}

	return s.serviceRepo.UpdateFields(ctx, id, fields)
}

func (s *catalogService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.serviceRepo.Delete(ctx, id)
}
