package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/http/httpcli"
	"github.com/txix-open/isp-kit/json"
	"github.com/txix-open/isp-kit/log"
	"github.com/txix-open/isp-kit/requestid"
	"riskgate-sdk/apierrors"
	"riskgate-sdk/conf"
	"riskgate-sdk/domain"
)

const (
	requestIdHeader = "x-request-id"
	jsonContentType = "application/json; charset=utf-8"

	invalidJsonReason       = "invalid JSON in response"
	incompleteVerdictReason = "incomplete verdict in response"
)

// Backend issues authenticate calls against the risk-scoring API. It is
// stateless apart from the immutable configuration, so a single value is
// safe for concurrent use.
type Backend struct {
	cli             *httpcli.Client
	authenticateUrl string
	secret          string
	failover        domain.FailoverStrategy
	logger          log.Logger
}

func New(cli *httpcli.Client, config conf.Config, logger log.Logger) (Backend, error) {
	baseUrl, err := url.Parse(config.ApiBaseUrl)
	if err != nil {
		return Backend{}, errors.WithMessage(err, "parse api base url")
	}
	return Backend{
		cli:             cli,
		authenticateUrl: baseUrl.JoinPath("v1", "authenticate").String(),
		secret:          config.ApiSecret,
		failover:        config.Failover,
		logger:          logger,
	}, nil
}

// Authenticate blocks the calling goroutine for the duration of the network
// call. Timeouts are owned by the underlying HTTP client and surface here as
// network-level failures.
func (b Backend) Authenticate(ctx context.Context, payload []byte) (domain.Verdict, error) {
	userId := b.userIdFromPayload(ctx, payload)

	request := b.cli.Post(b.authenticateUrl).
		Header(requestIdHeader, b.requestId(ctx)).
		Header("Content-Type", jsonContentType).
		RequestBody(payload)
	if b.secret != "" {
		request = request.BasicAuth(httpcli.BasicAuth{Password: b.secret})
	}

	resp, err := request.Do(ctx)
	if err != nil {
		b.logger.Error(ctx, errors.WithMessage(err, "send authenticate request"))
		if b.failover.ThrowOnFailure() {
			return domain.Verdict{}, apierrors.Wrap(err)
		}
		return domain.FailoverVerdict(b.failover.DefaultAction(), userId, err.Error()), nil
	}
	defer resp.Close()

	return b.extractVerdict(resp, userId)
}

func (b Backend) extractVerdict(resp *httpcli.Response, userId string) (domain.Verdict, error) {
	// read happens before Close, and string(body) below copies the bytes
	body, err := resp.UnsafeBody()
	if err != nil {
		return domain.Verdict{}, errors.WithMessage(err, "read authenticate response body")
	}

	errorReason := http.StatusText(resp.StatusCode())
	if resp.IsSuccess() {
		transport := domain.AuthenticateResponse{}
		err := json.Unmarshal(body, &transport)
		switch {
		case err != nil:
			errorReason = invalidJsonReason
		case transport.Action == "" || transport.UserId == "":
			errorReason = incompleteVerdictReason
		default:
			return domain.VerdictFromTransport(transport), nil
		}
	}

	if resp.StatusCode() >= http.StatusInternalServerError && !b.failover.ThrowOnFailure() {
		return domain.FailoverVerdict(b.failover.DefaultAction(), userId, errorReason), nil
	}

	// client errors and malformed responses are contract violations,
	// never recoverable via failover
	return domain.Verdict{}, apierrors.New(resp.StatusCode(), errorReason, string(body))
}

// userIdFromPayload re-extracts the user id from the assembled payload
// instead of taking it from the builder's input, so the transport stays
// decoupled from payload assembly. The value is needed to synthesize
// failover verdicts.
func (b Backend) userIdFromPayload(ctx context.Context, payload []byte) string {
	aux := struct {
		UserId string `json:"user_id"`
	}{}
	err := json.Unmarshal(payload, &aux)
	if err != nil {
		b.logger.Warn(ctx, errors.WithMessage(err, "extract user id from authenticate payload"))
		return ""
	}
	if aux.UserId == "" {
		b.logger.Warn(ctx, "authenticate called without user id")
	}
	return aux.UserId
}

func (b Backend) requestId(ctx context.Context) string {
	requestId := requestid.FromContext(ctx)
	if requestId == "" {
		requestId = requestid.Next()
	}
	return requestId
}
