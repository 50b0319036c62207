package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rukundohamza104/radical-design-ltd/internal/database"
	"github.com/rukundohamza104/radical-design-ltd/internal/models"
)

// SettingsRepository manages the singleton AdminSettings document.
type SettingsRepository interface {
	Get(ctx context.Context) (*models.AdminSettings, error)
	Replace(ctx context.Context, settings *models.AdminSettings) (*models.AdminSettings, error)
}

type settingsRepository struct {
	db database.Service
}

func NewSettingsRepository(db database.Service) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(ctx context.Context) (*models.AdminSettings, error) {
	var settings models.AdminSettings
	err := r.db.Collection("settings").FindOne(ctx, bson.M{}).Decode(&settings)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	return &settings, nil
}

func (r *settingsRepository) Replace(ctx context.Context, settings *models.AdminSettings) (*models.AdminSettings, error) {
	doc := bson.M{
		"phone":            settings.Phone,
		"address":          settings.Address,
		"email":            settings.Email,
		"maintenance_mode": settings.MaintenanceMode,
	}
	opts := options.Update().SetUpsert(true)
	_, err := r.db.Collection("settings").UpdateOne(ctx, bson.M{}, bson.M{"$set": doc}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to write settings: %w", err)
	}
	return settings, nil
}
