package repositories

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rukundohamza104/radical-design-ltd/internal/database"
	"github.com/rukundohamza104/radical-design-ltd/internal/models"
	"github.com/rukundohamza104/radical-design-ltd/internal/utils"
)

type MessageRepository interface {
	Insert(ctx context.Context, msg *models.ContactMessage) (*models.ContactMessage, error)
	FindAll(ctx context.Context) ([]models.ContactMessage, error)
	Search(ctx context.Context, query string) ([]models.ContactMessage, error)
	FindRecent(ctx context.Context, limit int64) ([]models.ContactMessage, error)
	SetRead(ctx context.Context, id primitive.ObjectID, read bool) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
	CountUnread(ctx context.Context) (int64, error)
}

type messageRepository struct {
	db database.Service
}

func NewMessageRepository(db database.Service) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Insert(ctx context.Context, msg *models.ContactMessage) (*models.ContactMessage, error) {
	queryType := "insert"
	repository := "message"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	msg.ID = primitive.NewObjectID()
	msg.Date = time.Now()

	_, err := r.db.Collection("messages").InsertOne(ctx, msg)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		log.Error().Err(err).Str("email", msg.Email).Msg("Failed to insert contact message")
		return nil, fmt.Errorf("failed to save message: %w", err)
	}
	return msg, nil
}

func (r *messageRepository) FindAll(ctx context.Context) ([]models.ContactMessage, error) {
	queryType := "findAll"
	repository := "message"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.db.Collection("messages").Find(ctx, bson.M{}, opts)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	messages := []models.ContactMessage{}
	if err := cursor.All(ctx, &messages); err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}
	return messages, nil
}

func (r *messageRepository) Search(ctx context.Context, query string) ([]models.ContactMessage, error) {
	queryType := "search"
	repository := "message"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{"$or": []bson.M{
		{"name": pattern},
		{"email": pattern},
		{"message": pattern},
	}}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.db.Collection("messages").Find(ctx, filter, opts)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("failed to search messages: %w", err)
	}

	messages := []models.ContactMessage{}
	if err := cursor.All(ctx, &messages); err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}
	return messages, nil
}

func (r *messageRepository) FindRecent(ctx context.Context, limit int64) ([]models.ContactMessage, error) {
	queryType := "findRecent"
	repository := "message"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}}).SetLimit(limit)
	cursor, err := r.db.Collection("messages").Find(ctx, bson.M{}, opts)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("failed to list recent messages: %w", err)
	}

	messages := []models.ContactMessage{}
	if err := cursor.All(ctx, &messages); err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}
	return messages, nil
}

func (r *messageRepository) SetRead(ctx context.Context, id primitive.ObjectID, read bool) error {
	queryType := "setRead"
	repository := "message"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	update := bson.M{"$set": bson.M{"read": read}}
	_, err := r.db.Collection("messages").UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return fmt.Errorf("failed to update message read flag: %w", err)
	}
	return nil
}

func (r *messageRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	queryType := "delete"
	repository := "message"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	_, err := r.db.Collection("messages").DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return fmt.Errorf("failed to delete message: %w", err)
	}
	return nil
}

func (r *messageRepository) Count(ctx context.Context) (int64, error) {
	queryType := "count"
	repository := "message"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	count, err := r.db.Collection("messages").CountDocuments(ctx, bson.M{})
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}
	return count, nil
}

func (r *messageRepository) CountUnread(ctx context.Context) (int64, error) {
	queryType := "countUnread"
	repository := "message"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	count, err := r.db.Collection("messages").CountDocuments(ctx, bson.M{"read": false})
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}
	return count, nil
}
