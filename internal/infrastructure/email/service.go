package email

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Message is an outbound email
type Message struct {
	To      string
	Subject string
	Body    string
}

// Service sends transactional email. The worker uses it for order
// confirmations; swap implementations via EMAIL_PROVIDER.
type Service interface {
	Send(ctx context.Context, msg Message) error
}

// MockService logs instead of sending. Default provider for development
// and tests.
type MockService struct {
	From string
}

// NewMockService creates the logging email service
func NewMockService(from string) *MockService {
	return &MockService{From: from}
}

func (s *MockService) Send(_ context.Context, msg Message) error {
	log.Info().
		Str("from", s.From).
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Int("body_bytes", len(msg.Body)).
		Msg("📧 [MOCK] Email sent")
	return nil
}
