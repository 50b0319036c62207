package repositories

import (
	"context"
	"flag"
	"os"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/rukundohamza104/radical-design-ltd/internal/database"
	"github.com/rukundohamza104/radical-design-ltd/internal/models"
)

func mustStartMongoContainer() (func(context.Context, ...testcontainers.TerminateOption) error, error) {
	dbContainer, err := mongodb.Run(context.Background(), "mongo:latest")
	if err != nil {
		return nil, err
	}

	uri, err := dbContainer.ConnectionString(context.Background())
	if err != nil {
		return dbContainer.Terminate, err
	}

	os.Setenv("MONGO_URI", uri)
	os.Setenv("MONGO_DB", "radical_design_test")

	return dbContainer.Terminate, nil
}

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() || os.Getenv("SKIP_DB_TESTS") != "" {
		os.Exit(m.Run())
	}

	teardown, err := mustStartMongoContainer()
	if err != nil {
		log.Fatal().Err(err).Msg("Could not start mongodb container")
	}

	code := m.Run()

	if teardown != nil && teardown(context.Background()) != nil {
		log.Fatal().Msg("Could not teardown mongodb container")
	}

	os.Exit(code)
}

func TestMessageRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test in short mode.")
	}

	db := database.New()
	defer db.Close()

	messageRepo := NewMessageRepository(db)
	ctx := context.Background()

	t.Run("Insert and FindAll", func(t *testing.T) {
		msg := &models.ContactMessage{
			Name:    "Alice",
			Email:   "alice@example.com",
			Phone:   "0788000001",
			Message: "I need custom mugs.",
		}

		created, err := messageRepo.Insert(ctx, msg)
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.False(t, created.ID.IsZero())
		assert.False(t, created.Date.IsZero())
		assert.False(t, created.Read)

		all, err := messageRepo.FindAll(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, all)

		count, err := messageRepo.Count(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, count, int64(1))
	})

	t.Run("Search matches name case-insensitively", func(t *testing.T) {
		msg := &models.ContactMessage{
			Name:    "Searchable Bob",
			Email:   "bob@example.com",
			Phone:   "0788000002",
			Message: "Quote for event branding.",
		}
		_, err := messageRepo.Insert(ctx, msg)
		require.NoError(t, err)

		results, err := messageRepo.Search(ctx, "searchable")
		require.NoError(t, err)
		require.NotEmpty(t, results)
		assert.Equal(t, "Searchable Bob", results[0].Name)

		none, err := messageRepo.Search(ctx, "definitely-no-such-text")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("SetRead and CountUnread", func(t *testing.T) {
		msg := &models.ContactMessage{
			Name:    "Carol",
			Email:   "carol@example.com",
			Phone:   "0788000003",
			Message: "Sticker order.",
		}
		created, err := messageRepo.Insert(ctx, msg)
		require.NoError(t, err)

		before, err := messageRepo.CountUnread(ctx)
		require.NoError(t, err)

		require.NoError(t, messageRepo.SetRead(ctx, created.ID, true))

		after, err := messageRepo.CountUnread(ctx)
		require.NoError(t, err)
		assert.Equal(t, before-1, after)
	})

	t.Run("Delete is idempotent", func(t *testing.T) {
		msg := &models.ContactMessage{
			Name:    "Dave",
			Email:   "dave@example.com",
			Phone:   "0788000004",
			Message: "Banner reprint.",
		}
		created, err := messageRepo.Insert(ctx, msg)
		require.NoError(t, err)

		require.NoError(t, messageRepo.Delete(ctx, created.ID))
		require.NoError(t, messageRepo.Delete(ctx, created.ID))
	})

	t.Run("FindRecent honors the limit", func(t *testing.T) {
		recent, err := messageRepo.FindRecent(ctx, 2)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(recent), 2)
	})
}

func TestGalleryRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test in short mode.")
	}

	db := database.New()
	defer db.Close()

	galleryRepo := NewGalleryRepository(db)
	ctx := context.Background()

	t.Run("partial update merges fields", func(t *testing.T) {
		image := &models.GalleryImage{
			Title:    "Launch banner",
			Category: "Banners",
			ImageURL: "https://cdn.example.com/launch.jpg",
			Visible:  true,
		}
		created, err := galleryRepo.Insert(ctx, image)
		require.NoError(t, err)

		updated, err := galleryRepo.UpdateFields(ctx, created.ID, bson.M{"visible": false})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.False(t, updated.Visible)
		assert.Equal(t, "Launch banner", updated.Title)
		assert.Equal(t, "https://cdn.example.com/launch.jpg", updated.ImageURL)
	})

	t.Run("FindVisible excludes hidden images", func(t *testing.T) {
		hidden := &models.GalleryImage{
			Title:    "Hidden draft",
			Category: "Stickers",
			ImageURL: "https://cdn.example.com/draft.jpg",
			Visible:  false,
		}
		_, err := galleryRepo.Insert(ctx, hidden)
		require.NoError(t, err)

		visible, err := galleryRepo.FindVisible(ctx)
		require.NoError(t, err)
		for _, img := range visible {
			assert.True(t, img.Visible)
		}
	})

	t.Run("update of unknown id returns nil", func(t *testing.T) {
		created, err := galleryRepo.Insert(ctx, &models.GalleryImage{
			Title:    "Throwaway",
			Category: "Mugs",
			ImageURL: "https://cdn.example.com/mug.jpg",
			Visible:  true,
		})
		require.NoError(t, err)
		require.NoError(t, galleryRepo.Delete(ctx, created.ID))

		updated, err := galleryRepo.UpdateFields(ctx, created.ID, bson.M{"title": "Gone"})
		require.NoError(t, err)
		assert.Nil(t, updated)
	})
}
