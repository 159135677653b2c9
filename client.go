package riskgate

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/http/httpcli"
	"github.com/txix-open/isp-kit/log"
	"riskgate-sdk/backend"
	"riskgate-sdk/conf"
	"riskgate-sdk/domain"
	"riskgate-sdk/payload"
)

type Client struct {
	builder payload.Builder
	backend backend.Backend
}

func New(config conf.Config, logger log.Logger) (*Client, error) {
	err := config.Validate()
	if err != nil {
		return nil, errors.WithMessage(err, "validate config")
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = conf.DefaultTimeout
	}
	cli := httpcli.NewWithClient(&http.Client{Timeout: timeout})

	riskBackend, err := backend.New(cli, config, logger)
	if err != nil {
		return nil, errors.WithMessage(err, "new backend")
	}

	return &Client{
		builder: payload.NewBuilder(logger),
		backend: riskBackend,
	}, nil
}

// Authenticate assembles the payload and issues the call synchronously.
// Depending on the configured failover strategy, transient backend
// unavailability is either returned as an error or swallowed into a
// synthetic verdict with the default action.
func (c *Client) Authenticate(ctx context.Context, event string, userId string, opts ...Option) (domain.Verdict, error) {
	options := newAuthenticateOptions(opts)

	body, err := c.builder.Authenticate(ctx, event, userId, options.traits, options.properties)
	if err != nil {
		return domain.Verdict{}, errors.WithMessage(err, "build authenticate payload")
	}

	return c.backend.Authenticate(ctx, body)
}

// AuthenticateAsync never fails synchronously; every outcome, including
// payload assembly errors, is delivered through the returned channel,
// resolved exactly once on a worker goroutine.
func (c *Client) AuthenticateAsync(ctx context.Context, event string, userId string, opts ...Option) <-chan backend.Result {
	options := newAuthenticateOptions(opts)

	body, err := c.builder.Authenticate(ctx, event, userId, options.traits, options.properties)
	if err != nil {
		result := make(chan backend.Result, 1)
		result <- backend.Result{Err: errors.WithMessage(err, "build authenticate payload")}
		close(result)
		return result
	}

	return c.backend.AuthenticateAsync(ctx, body)
}
