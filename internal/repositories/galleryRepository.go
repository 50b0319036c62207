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

type GalleryRepository interface {
	Insert(ctx context.Context, image *models.GalleryImage) (*models.GalleryImage, error)
	FindAll(ctx context.Context) ([]models.GalleryImage, error)
	FindVisible(ctx context.Context) ([]models.GalleryImage, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.GalleryImage, error)
	// UpdateFields applies a partial $set and returns the updated document,
	// or nil when no document matches the id.
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.GalleryImage, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

type galleryRepository struct {
	db database.Service
}

func NewGalleryRepository(db database.Service) GalleryRepository {
	return &galleryRepository{db: db}
}

func (r *galleryRepository) Insert(ctx context.Context, image *models.GalleryImage) (*models.GalleryImage, error) {
	queryType := "insert"
	repository := "gallery"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	image.ID = primitive.NewObjectID()
	image.CreatedAt = time.Now()

	_, err := r.db.Collection("gallery").InsertOne(ctx, image)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		log.Error().Err(err).Str("title", image.Title).Msg("Failed to insert gallery image")
		return nil, fmt.Errorf("failed to create gallery image: %w", err)
	}
	return image, nil
}

func (r *galleryRepository) FindAll(ctx context.Context) ([]models.GalleryImage, error) {
	return r.find(ctx, "findAll", bson.M{})
}

func (r *galleryRepository) FindVisible(ctx context.Context) ([]models.GalleryImage, error) {
	return r.find(ctx, "findVisible", bson.M{"visible": true})
}

func (r *galleryRepository) find(ctx context.Context, queryType string, filter bson.M) ([]models.GalleryImage, error) {
	repository := "gallery"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.db.Collection("gallery").Find(ctx, filter, opts)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("failed to list gallery images: %w", err)
	}

	images := []models.GalleryImage{}
	if err := cursor.All(ctx, &images); err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("failed to decode gallery images: %w", err)
	}
	return images, nil
}

func (r *galleryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.GalleryImage, error) {
	var image models.GalleryImage
	err := r.db.Collection("gallery").FindOne(ctx, bson.M{"_id": id}).Decode(&image)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find gallery image: %w", err)
	}
	return &image, nil
}

func (r *galleryRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.GalleryImage, error) {
	queryType := "updateFields"
	repository := "gallery"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.GalleryImage
	err := r.db.Collection("gallery").
		FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).
		Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("failed to update gallery image: %w", err)
	}
	return &updated, nil
}

func (r *galleryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	queryType := "delete"
	repository := "gallery"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	_, err := r.db.Collection("gallery").DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return fmt.Errorf("failed to delete gallery image: %w", err)
	}
	return nil
}

func (r *galleryRepository) Count(ctx context.Context) (int64, error) {
	queryType := "count"
	repository := "gallery"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	count, err := r.db.Collection("gallery").CountDocuments(ctx, bson.M{})
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return 0, fmt.Errorf("failed to count gallery images: %w", err)
	}
	return count, nil
}
