package conf

import (
	"net/url"
	"time"

	"github.com/pkg/errors"
	"riskgate-sdk/domain"
)

const (
	DefaultTimeout = 5 * time.Second
)

// Config is immutable for the lifetime of the transport instance.
type Config struct {
	ApiBaseUrl string
	ApiSecret  string
	Timeout    time.Duration
	Failover   domain.FailoverStrategy
}

func (c Config) Validate() error {
	if c.ApiBaseUrl == "" {
		return errors.New("apiBaseUrl is required")
	}
	u, err := url.Parse(c.ApiBaseUrl)
	if err != nil {
		return errors.WithMessage(err, "parse apiBaseUrl")
	}
	if !u.IsAbs() {
		return errors.New("apiBaseUrl must be an absolute url")
	}
	if c.Timeout < 0 {
		return errors.New("timeout must not be negative")
	}
	if !c.Failover.ThrowOnFailure() && c.Failover.DefaultAction() == "" {
		return errors.New("failover default action is required unless throw on failure is configured")
	}
	return nil
}
