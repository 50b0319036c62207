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

// AboutRepository manages the singleton AboutContent document.
type AboutRepository interface {
	Get(ctx context.Context) (*models.AboutContent, error)
	Replace(ctx context.Context, content *models.AboutContent) (*models.AboutContent, error)
}

type aboutRepository struct {
	db database.Service
}

func NewAboutRepository(db database.Service) AboutRepository {
	return &aboutRepository{db: db}
}

func (r *aboutRepository) Get(ctx context.Context) (*models.AboutContent, error) {
	var content models.AboutContent
	err := r.db.Collection("about").FindOne(ctx, bson.M{}).Decode(&content)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read about content: %w", err)
	}
	return &content, nil
}

func (r *aboutRepository) Replace(ctx context.Context, content *models.AboutContent) (*models.AboutContent, error) {
	doc := bson.M{
		"hero_title":    content.HeroTitle,
		"hero_subtitle": content.HeroSubtitle,
		"story_title":   content.StoryTitle,
		"story_content": content.StoryContent,
		"mission":       content.Mission,
		"vision":        content.Vision,
		"values":        content.Values,
	}
	opts := options.Update().SetUpsert(true)
	_, err := r.db.Collection("about").UpdateOne(ctx, bson.M{}, bson.M{"$set": doc}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to write about content: %w", err)
	}
	return content, nil
}
