package riskgate_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/txix-open/isp-kit/test"
	"github.com/txix-open/isp-kit/test/httpt"
	riskgate "riskgate-sdk"
	"riskgate-sdk/conf"
	"riskgate-sdk/domain"
)

type authRequest struct {
	Event      string         `json:"event"`
	UserId     string         `json:"user_id"`
	Traits     map[string]any `json:"traits"`
	Properties map[string]any `json:"properties"`
}

func TestClientAuthenticate(t *testing.T) {
	t.Parallel()
	test, require := test.New(t)

	mock := httpt.NewMock(test)
	mock.POST("/v1/authenticate", func(ctx context.Context, httpReq *http.Request, req authRequest) domain.AuthenticateResponse {
		require.EqualValues("$login.succeeded", req.Event)
		require.EqualValues("12345", req.UserId)
		require.EqualValues(map[string]any{"plan": "premium"}, req.Traits)
		require.EqualValues(map[string]any{"ip_reputation": "clean"}, req.Properties)
		return domain.AuthenticateResponse{Action: domain.ActionAllow, UserId: req.UserId}
	})

	client, err := riskgate.New(conf.Config{
		ApiBaseUrl: mock.BaseURL(),
		ApiSecret:  "secret",
		Failover:   domain.NewFailoverStrategy(domain.ActionDeny),
	}, test.Logger())
	require.NoError(err)

	verdict, err := client.Authenticate(
		context.Background(),
		"$login.succeeded",
		"12345",
		riskgate.WithTraits(map[string]any{"plan": "premium"}),
		riskgate.WithProperties(map[string]any{"ip_reputation": "clean"}),
	)
	require.NoError(err)
	require.EqualValues(domain.ActionAllow, verdict.Action)
	require.EqualValues("12345", verdict.UserId)
	require.EqualValues(domain.OriginBackend, verdict.Origin)
}

func TestClientAuthenticateAsync(t *testing.T) {
	t.Parallel()
	test, require := test.New(t)

	mock := httpt.NewMock(test)
	mock.POST("/v1/authenticate", func(ctx context.Context, httpReq *http.Request, req authRequest) domain.AuthenticateResponse {
		return domain.AuthenticateResponse{Action: domain.ActionChallenge, UserId: req.UserId}
	})

	client, err := riskgate.New(conf.Config{
		ApiBaseUrl: mock.BaseURL(),
		Failover:   domain.ThrowFailoverStrategy(),
	}, test.Logger())
	require.NoError(err)

	result := <-client.AuthenticateAsync(context.Background(), "$login.succeeded", "12345")
	require.NoError(result.Err)
	require.EqualValues(domain.ActionChallenge, result.Verdict.Action)
	require.EqualValues("12345", result.Verdict.UserId)
}

func TestClientAuthenticateAsyncBuildErrorGoesThroughChannel(t *testing.T) {
	t.Parallel()
	test, require := test.New(t)

	client, err := riskgate.New(conf.Config{
		ApiBaseUrl: "http://localhost:1",
		Failover:   domain.ThrowFailoverStrategy(),
	}, test.Logger())
	require.NoError(err)

	result := <-client.AuthenticateAsync(context.Background(), "", "12345")
	require.Error(result.Err)
	require.Empty(result.Verdict)
}

func TestClientNewInvalidConfig(t *testing.T) {
	t.Parallel()
	test, require := test.New(t)

	_, err := riskgate.New(conf.Config{}, test.Logger())
	require.Error(err)
}
