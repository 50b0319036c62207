package services

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rukundohamza104/radical-design-ltd/internal/metrics"
	"github.com/rukundohamza104/radical-design-ltd/internal/models"
	"github.com/rukundohamza104/radical-design-ltd/internal/repositories"
)

type MessageService interface {
	Submit(ctx context.Context, req models.SubmitContactRequest) (*models.ContactMessage, error)
	// List returns messages in creation order; query filters by a
	// case-insensitive substring over name, email and message body.
	List(ctx context.Context, query string) ([]models.ContactMessage, error)
	MarkRead(ctx context.Context, id primitive.ObjectID, read bool) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type messageService struct {
	messageRepo repositories.MessageRepository
}

func NewMessageService(messageRepo repositories.MessageRepository) MessageService {
	return &messageService{messageRepo: messageRepo}
}

func (s *messageService) Submit(ctx context.Context, req models.SubmitContactRequest) (*models.ContactMessage, error) {
	msg := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
		Read:    false,
	}

	created, err := s.messageRepo.Insert(ctx, msg)
	if err != nil {
		return nil, err
	}

	metrics.MessagesCreatedTotal.Inc()
	log.Info().Str("message_id", created.ID.Hex()).Str("email", created.Email).Msg("Contact message received")
	return created, nil
}

func (s *messageService) List(ctx context.Context, query string) ([]models.ContactMessage, error) {
	if query != "" {
		return s.messageRepo.Search(ctx, query)
	}
	return s.messageRepo.FindAll(ctx)
}

func (s *messageService) MarkRead(ctx context.Context, id primitive.ObjectID, read bool) error {
	return s.messageRepo.SetRead(ctx, id, read)
}

func (s *messageService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.messageRepo.Delete(ctx, id)
}
