package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rukundohamza104/radical-design-ltd/internal/database"
	"github.com/rukundohamza104/radical-design-ltd/internal/models"
	"github.com/rukundohamza104/radical-design-ltd/internal/utils"
)

// ServiceRepository stores the printing/media services the business offers.
type ServiceRepository interface {
	Insert(ctx context.Context, svc *models.Service) (*models.Service, error)
	FindAll(ctx context.Context) ([]models.Service, error)
	FindVisible(ctx context.Context) ([]models.Service, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Service, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Service, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

type serviceRepository struct {
	db database.Service
}

func NewServiceRepository(db database.Service) ServiceRepository {
	return &serviceRepository{db: db}
}

func (r *serviceRepository) Insert(ctx context.Context, svc *models.Service) (*models.Service, error) {
	queryType := "insert"
	repository := "service"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	svc.ID = primitive.NewObjectID()
	svc.CreatedAt = time.Now()

	_, err := r.db.Collection("services").InsertOne(ctx, svc)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		log.Error().Err(err).Str("name", svc.Name).Msg("Failed to insert service")
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return svc, nil
}

func (r *serviceRepository) FindAll(ctx context.Context) ([]models.Service, error) {
	return r.find(ctx, "findAll", bson.M{})
}

func (r *serviceRepository) FindVisible(ctx context.Context) ([]models.Service, error) {
	return r.find(ctx, "findVisible", bson.M{"visible": true})
}

func (r *serviceRepository) find(ctx context.Context, queryType string, filter bson.M) ([]models.Service, error) {
	repository := "service"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.db.Collection("services").Find(ctx, filter, opts)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	services := []models.Service{}
	if err := cursor.All(ctx, &services); err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return services, nil
}

func (r *serviceRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Service, error) {
	var svc models.Service
	err := r.db.Collection("services").FindOne(ctx, bson.M{"_id": id}).Decode(&svc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find service: %w", err)
	}
	return &svc, nil
}

func (r *serviceRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Service, error) {
	queryType := "updateFields"
	repository := "service"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Service
	err := r.db.Collection("services").
		FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).
		Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	return &updated, nil
}

func (r *serviceRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	queryType := "delete"
	repository := "service"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	_, err := r.db.Collection("services").DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return fmt.Errorf("failed to delete service: %w", err)
	}
	return nil
}

func (r *serviceRepository) Count(ctx context.Context) (int64, error) {
	queryType := "count"
	repository := "service"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	count, err := r.db.Collection("services").CountDocuments(ctx, bson.M{})
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return 0, fmt.Errorf("failed to count services: %w", err)
	}
	return count, nil
}
