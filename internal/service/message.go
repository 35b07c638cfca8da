package service

import (
	"fmt"
	"strings"

	"shopbot/internal/domain"
	"shopbot/internal/repository"
)

// MessageService handles support messages
type MessageService struct {
	messageRepo repository.MessageRepository
}

// NewMessageService creates a new message service
func NewMessageService(messageRepo repository.MessageRepository) *MessageService {
	return &MessageService{messageRepo: messageRepo}
}

// Send records a support message from a user addressed to an admin
func (s *MessageService) Send(userID int, adminID int64, text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("message text cannot be empty")
	}
	return s.messageRepo.Create(userID, adminID, text)
}

// History returns the user's support messages
func (s *MessageService) History(userID int) ([]domain.Message, error) {
	return s.messageRepo.GetByUser(userID)
}
