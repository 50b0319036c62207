package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AboutValue struct {
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
}

type AboutContent struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	HeroTitle    string             `bson:"hero_title" json:"heroTitle"`
	HeroSubtitle string             `bson:"hero_subtitle" json:"heroSubtitle"`
	StoryTitle   string             `bson:"story_title" json:"storyTitle"`
	StoryContent string             `bson:"story_content" json:"storyContent"`
	Mission      string             `bson:"mission" json:"mission"`
	Vision       string             `bson:"vision" json:"vision"`
	Values       []AboutValue       `bson:"values" json:"values"`
}

// UpdateAboutContentRequest merges field-wise; Values replaces the whole list
// when present.
type UpdateAboutContentRequest struct {
	HeroTitle    *string       `json:"heroTitle"`
	HeroSubtitle *string       `json:"heroSubtitle"`
	StoryTitle   *string       `json:"storyTitle"`
	StoryContent *string       `json:"storyContent"`
	Mission      *string       `json:"mission"`
	Vision       *string       `json:"vision"`
	Values       *[]AboutValue `json:"values"`
}
