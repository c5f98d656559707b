// Copyright (c) 2026 AIC Discovery. All rights reserved.
// Author: emsager7@gmail.com

package catalog

import (
	"context"
	"errors"
	"log/slog"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
)

// BreakerFetcher wraps a Fetcher with a circuit breaker so that a
// provider outage fails fast instead of burning the full request
// timeout on every discovery call.
type BreakerFetcher struct {
	inner   Fetcher
	breaker *gobreaker.CircuitBreaker[[]RawRecord]
}

func NewBreakerFetcher(inner Fetcher, logger *slog.Logger) *BreakerFetcher {
	settings := gobreaker.Settings{
		Name:        "catalog",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("catalog_breaker_state_change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
		IsSuccessful: func(err error) bool {
			// Only transport-level failures count against the breaker.
			// A 4xx answer means the provider is up and talking.
			var fetchErr *Error
			if errors.As(err, &fetchErr) {
				return fetchErr.Kind == KindStatus && fetchErr.Status < 500
			}
			return err == nil
		},
	}

	return &BreakerFetcher{
		inner:   inner,
		breaker: gobreaker.NewCircuitBreaker[[]RawRecord](settings),
	}
}

func (fetcher *BreakerFetcher) FetchPage(ctx context.Context, query PageQuery) ([]RawRecord, error) {
	records, err := fetcher.breaker.Execute(func() ([]RawRecord, error) {
		return fetcher.inner.FetchPage(ctx, query)
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, &Error{Kind: KindConnection, Message: "provider circuit open"}
	}

	return records, err
}
