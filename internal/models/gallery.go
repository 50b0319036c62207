package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GalleryCategories is the set of categories the admin panel offers.
var GalleryCategories = []string{"Stickers", "Banners", "Mugs", "Branding", "Events"}

func IsValidGalleryCategory(category string) bool {
	for _, c := range GalleryCategories {
		if c == category {
			return true
		}
	}
	return false
}

type GalleryImage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title     string             `bson:"title" json:"title"`
	Category  string             `bson:"category" json:"category"`
	ImageURL  string             `bson:"image_url" json:"imageUrl"`
	Visible   bool               `bson:"visible" json:"visible"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}

type AddGalleryImageRequest struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	ImageURL string `json:"imageUrl"`
	Visible  *bool  `json:"visible"`
}

type UpdateGalleryImageRequest struct {
	Title    *string `json:"title"`
	Category *string `json:"category"`
	ImageURL *string `json:"imageUrl"`
	Visible  *bool   `json:"visible"`
}
