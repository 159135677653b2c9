// Package riskgate is a client SDK for a fraud/risk-scoring HTTP API.
//
// The SDK wraps the authenticate endpoint of the vendor API with a
// synchronous and an asynchronous path. When the backend is unreachable or
// fails with a server error, the configured failover strategy decides
// whether the caller sees an error or a synthetic verdict carrying a default
// action.
package riskgate
