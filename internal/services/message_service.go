package services

import (
	"context"

	"github.com/getmentor/mentor-aggregator/internal/models"
	"github.com/getmentor/mentor-aggregator/internal/platforms"
	"github.com/getmentor/mentor-aggregator/pkg/logger"
	"github.com/getmentor/mentor-aggregator/pkg/metrics"
	"go.uber.org/zap"
)

// MessageService relays messages to mentors on their platform
type MessageService struct {
	mentors  MentorLookup
	registry *platforms.Registry
	opts     Options
}

// NewMessageService creates a new message service instance
func NewMessageService(mentors MentorLookup, registry *platforms.Registry, opts Options) *MessageService {
	return &MessageService{
		mentors:  mentors,
		registry: registry,
		opts:     opts,
	}
}

// SendMessageToMentor delivers req to the mentor. Only an unknown mentor is an
// error; delivery failures turn into a fallback acknowledgement.
func (s *MessageService) SendMessageToMentor(ctx context.Context, mentorID string, req models.SendMessageRequest) (*models.MessageResult, error) {
	mentor, err := s.mentors.GetMentorByID(ctx, mentorID)
	if err != nil {
		return nil, err
	}

	var result *models.MessageResult
	if !s.opts.Production {
		result = platforms.MockMessage(mentor)
	} else {
		result, err = s.send(ctx, mentor, req)
		if err != nil {
			logger.Warn("Message delivery failed, returning fallback acknowledgement",
				zap.String("mentor_id", mentor.ID),
				zap.String("platform", string(mentor.Platform)),
				zap.Error(err))
			metrics.FallbackResponses.WithLabelValues(string(mentor.Platform), "send_message", "delivery_failed").Inc()
			result = platforms.FallbackMessage(mentor)
		}
	}

	metrics.MentorMessages.WithLabelValues(string(mentor.Platform), string(result.Mode)).Inc()
	return result, nil
}

func (s *MessageService) send(ctx context.Context, mentor *models.Mentor, req models.SendMessageRequest) (*models.MessageResult, error) {
	messenger, err := s.registry.Messenger(mentor.Platform)
	if err != nil {
		return nil, err
	}
	return messenger.SendMessage(ctx, mentor, req)
}
