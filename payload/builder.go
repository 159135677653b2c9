package payload

import (
	"context"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/json"
	"github.com/txix-open/isp-kit/log"
)

type authenticatePayload struct {
	Event      string `json:"event"`
	UserId     string `json:"user_id"`
	Traits     any    `json:"traits,omitempty"`
	Properties any    `json:"properties,omitempty"`
}

type Builder struct {
	logger log.Logger
}

func NewBuilder(logger log.Logger) Builder {
	return Builder{
		logger: logger,
	}
}

// Authenticate assembles the authenticate request body. The user id may be
// empty when the caller intends anonymous authentication, so an empty value
// is only warned about, never rejected.
func (b Builder) Authenticate(ctx context.Context, event string, userId string, traits any, properties any) ([]byte, error) {
	if event == "" {
		return nil, errors.New("event is required")
	}
	if userId == "" {
		b.logger.Warn(ctx, "authenticate payload assembled without user id")
	}

	data, err := json.Marshal(authenticatePayload{
		Event:      event,
		UserId:     userId,
		Traits:     traits,
		Properties: properties,
	})
	if err != nil {
		return nil, errors.WithMessage(err, "json marshal authenticate payload")
	}

	return data, nil
}
