package services

import (
	"context"

	"github.com/rukundohamza104/radical-design-ltd/internal/models"
	"github.com/rukundohamza104/radical-design-ltd/internal/repositories"
)

type DashboardService interface {
	Stats(ctx context.Context) (*models.DashboardStats, error)
}

type dashboardService struct {
	messageRepo repositories.MessageRepository
	galleryRepo repositories.GalleryRepository
	serviceRepo repositories.ServiceRepository
}

func NewDashboardService(messageRepo repositories.MessageRepository, galleryRepo repositories.GalleryRepository, serviceRepo repositories.ServiceRepository) DashboardService {
	return &dashboardService{messageRepo: messageRepo, galleryRepo: galleryRepo, serviceRepo: serviceRepo}
}

func (s *dashboardService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	totalMessages, err := s.messageRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	unread, err := s.messageRepo.CountUnread(ctx)
	if err != nil {
		return nil, err
	}
	totalImages, err := s.galleryRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalServices, err := s.serviceRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.messageRepo.FindRecent(ctx, 5)
	if err != nil {
		return nil, err
	}

	return &models.DashboardStats{
		TotalMessages:      totalMessages,
		UnreadMessages:     unread,
		TotalGalleryImages: totalImages,
		TotalServices:      totalServices,
		RecentActivity:     recent,
	}, nil
}
