package services

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rukundohamza104/radical-design-ltd/internal/models"
)

type fakeMessageRepository struct {
	messages []models.ContactMessage
}

func (f *fakeMessageRepository) Insert(ctx context.Context, msg *models.ContactMessage) (*models.ContactMessage, error) {
	f.messages = append(f.messages, *msg)
	return msg, nil
}

func (f *fakeMessageRepository) FindAll(ctx context.Context) ([]models.ContactMessage, error) {
	return f.messages, nil
}

func (f *fakeMessageRepository) Search(ctx context.Context, query string) ([]models.ContactMessage, error) {
	return nil, nil
}

func (f *fakeMessageRepository) FindRecent(ctx context.Context, limit int64) ([]models.ContactMessage, error) {
	recent := append([]models.ContactMessage{}, f.messages...)
	sort.Slice(recent, func(i, j int) bool { return recent[i].Date.After(recent[j].Date) })
	if int64(len(recent)) > limit {
		recent = recent[:limit]
	}
	return recent, nil
}

func (f *fakeMessageRepository) SetRead(ctx context.Context, id primitive.ObjectID, read bool) error {
	return nil
}

func (f *fakeMessageRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return nil
}

func (f *fakeMessageRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(f.messages)), nil
}

func (f *fakeMessageRepository) CountUnread(ctx context.Context) (int64, error) {
	var unread int64
	for _, m := range f.messages {
		if !m.Read {
			unread++
		}
	}
	return unread, nil
}

type fakeGalleryRepository struct {
	images []models.GalleryImage
}

func (f *fakeGalleryRepository) Insert(ctx context.Context, image *models.GalleryImage) (*models.GalleryImage, error) {
	f.images = append(f.images, *image)
	return image, nil
}

func (f *fakeGalleryRepository) FindAll(ctx context.Context) ([]models.GalleryImage, error) {
	return f.images, nil
}

func (f *fakeGalleryRepository) FindVisible(ctx context.Context) ([]models.GalleryImage, error) {
	return f.images, nil
}

func (f *fakeGalleryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.GalleryImage, error) {
	return nil, nil
}

func (f *fakeGalleryRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.GalleryImage, error) {
	return nil, nil
}

func (f *fakeGalleryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return nil
}

func (f *fakeGalleryRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(f.images)), nil
}

type fakeServiceRepository struct {
	services []models.Service
}

func (f *fakeServiceRepository) Insert(ctx context.Context, svc *models.Service) (*models.Service, error) {
	f.services = append(f.services, *svc)
	return svc, nil
}

func (f *fakeServiceRepository) FindAll(ctx context.Context) ([]models.Service, error) {
	return f.services, nil
}

func (f *fakeServiceRepository) FindVisible(ctx context.Context) ([]models.Service, error) {
	return f.services, nil
}

func (f *fakeServiceRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Service, error) {
	return nil, nil
}

func (f *fakeServiceRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Service, error) {
	return nil, nil
}

func (f *fakeServiceRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return nil
}

func (f *fakeServiceRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(f.services)), nil
}

func TestDashboardServiceStats(t *testing.T) {
	ctx := context.Background()
	messageRepo := &fakeMessageRepository{}
	galleryRepo := &fakeGalleryRepository{}
	serviceRepo := &fakeServiceRepository{}

	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		_, err := messageRepo.Insert(ctx, &models.ContactMessage{
			ID:      primitive.NewObjectID(),
			Name:    "Visitor",
			Email:   "visitor@example.com",
			Message: "Hello",
			Date:    base.Add(time.Duration(i) * time.Hour),
			Read:    i < 4,
		})
		require.NoError(t, err)
	}
	for i := 0; i < 3; i++ {
		_, err := galleryRepo.Insert(ctx, &models.GalleryImage{ID: primitive.NewObjectID(), Title: "Image"})
		require.NoError(t, err)
	}
	_, err := serviceRepo.Insert(ctx, &models.Service{ID: primitive.NewObjectID(), Name: "Branding"})
	require.NoError(t, err)

	dashboard := NewDashboardService(messageRepo, galleryRepo, serviceRepo)
	stats, err := dashboard.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(7), stats.TotalMessages)
	assert.Equal(t, int64(3), stats.UnreadMessages)
	assert.Equal(t, int64(3), stats.TotalGalleryImages)
	assert.Equal(t, int64(1), stats.TotalServices)

	// Recent activity carries the 5 newest messages, newest first.
	require.Len(t, stats.RecentActivity, 5)
	for i, msg := range stats.RecentActivity {
		assert.Equal(t, base.Add(time.Duration(6-i)*time.Hour), msg.Date)
	}
}

func TestDashboardServiceStatsEmpty(t *testing.T) {
	dashboard := NewDashboardService(&fakeMessageRepository{}, &fakeGalleryRepository{}, &fakeServiceRepository{})

	stats, err := dashboard.Stats(context.Background())
	require.NoError(t, err)

	assert.Zero(t, stats.TotalMessages)
	assert.Zero(t, stats.UnreadMessages)
	assert.Zero(t, stats.TotalGalleryImages)
	assert.Zero(t, stats.TotalServices)
	assert.Empty(t, stats.RecentActivity)
}
