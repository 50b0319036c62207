package services

import (
	"context"

	"github.com/rukundohamza104/radical-design-ltd/internal/models"
	"github.com/rukundohamza104/radical-design-ltd/internal/repositories"
)

// DefaultAboutContent is the site copy served before the admin customizes it.
func DefaultAboutContent() *models.AboutContent {
	return &models.AboutContent{
		HeroTitle:    "About RADICAL DESIGN",
		HeroSubtitle: "Your trusted partner in printing and media solutions",
		StoryTitle:   "Our Story",
		StoryContent: "RADICAL DESIGN Ltd has been serving businesses and organizations with premium printing and media solutions. We combine modern technology with traditional craftsmanship to deliver exceptional results.",
		Mission:      "To deliver premium printing and media solutions that empower businesses to communicate effectively with their audience.",
		Vision:       "To be the leading provider of innovative printing and branding solutions in the region.",
		Values: []models.AboutValue{
			{
				Title:       "Quality Excellence",
				Description: "Premium materials and professional techniques for every project",
			},
			{
				Title:       "Customer Focus",
				Description: "Your satisfaction is our top priority in every interaction",
			},
			{
				Title:       "Fast Service",
				Description: "Quick turnaround without compromising on quality standards",
			},
		},
	}
}

type AboutService interface {
	Get(ctx context.Context) (*models.AboutContent, error)
	Update(ctx context.Context, req models.UpdateAboutContentRequest) (*models.AboutContent, error)
}

type aboutService struct {
	aboutRepo repositories.AboutRepository
}

func NewAboutService(aboutRepo repositories.AboutRepository) AboutService {
	return &aboutService{aboutRepo: aboutRepo}
}

func (s *aboutService) Get(ctx context.Context) (*models.AboutContent, error) {
	content, err := s.aboutRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return DefaultAboutContent(), nil
	}
	return content, nil
}

func (s *aboutService) Update(ctx context.Context, req models.UpdateAboutContentRequest) (*models.AboutContent, error) {
	content, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	if req.HeroTitle != nil {
		content.HeroTitle = *req.HeroTitle
	}
	if req.HeroSubtitle != nil {
		content.HeroSubtitle = *req.HeroSubtitle
	}
	if req.StoryTitle != nil {
		content.StoryTitle = *req.StoryTitle
	}
	if req.StoryContent != nil {
		content.StoryContent = *req.StoryContent
	}
	if req.Mission != nil {
		content.Mission = *req.Mission
	}
	if req.Vision != nil {
		content.Vision = *req.Vision
	}
	if req.Values != nil {
		content.Values = *req.Values
	}

	return s.aboutRepo.Replace(ctx, content)
}
