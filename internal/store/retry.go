// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-budget-keeper/internal/logger"
)

const (
	retryBaseDelay  = 50 * time.Millisecond
	retryMaxRetries = 3
)

// withRetry runs a read with exponential backoff while the classifier
// reports the failure as transient. Writes are never retried here.
func (db *DB) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(retryMaxRetries, retry.NewExponential(retryBaseDelay))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil && db.classify(err) == Retryable {
			logger.FromContext(ctx).Warn().Err(err).Str("func", "DB.withRetry").Msg("transient database error, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
}
