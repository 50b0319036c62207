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

// CredentialsRepository manages the singleton AdminCredentials document.
type CredentialsRepository interface {
	Get(ctx context.Context) (*models.AdminCredentials, error)
	Replace(ctx context.Context, creds *models.AdminCredentials) (*models.AdminCredentials, error)
}

type credentialsRepository struct {
	db database.Service
}

func NewCredentialsRepository(db database.Service) CredentialsRepository {
	return &credentialsRepository{db: db}
}

func (r *credentialsRepository) Get(ctx context.Context) (*models.AdminCredentials, error) {
	var creds models.AdminCredentials
	err := r.db.Collection("admin_credentials").FindOne(ctx, bson.M{}).Decode(&creds)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read admin credentials: %w", err)
	}
	return &creds, nil
}

func (r *credentialsRepository) Replace(ctx context.Context, creds *models.AdminCredentials) (*models.AdminCredentials, error) {
	doc := bson.M{
		"password_hash": creds.PasswordHash,
		"email":         creds.Email,
	}
	opts := options.Update().SetUpsert(true)
	_, err := r.db.Collection("admin_credentials").UpdateOne(ctx, bson.M{}, bson.M{"$set": doc}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to write admin credentials: %w", err)
	}
	return creds, nil
}
