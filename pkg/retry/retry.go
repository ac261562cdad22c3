package retry

import (
	"context"
	stdErrors "errors"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/onboardhq/task-extractor/errors"
	"github.com/onboardhq/task-extractor/internal/domain/entities"
)

// Policy tunes the exponential backoff around an extraction call. The
// extraction service itself never retries; this wrapper is the caller-side
// policy layered on top of it.
type Policy struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
}

// DefaultPolicy returns the backoff tuning used by the CLI.
func DefaultPolicy() Policy {
	return Policy{
		InitialInterval: 2 * time.Second,
		MaxInterval:     10 * time.Second,
		MaxElapsedTime:  30 * time.Second,
	}
}

// Extraction runs fn with exponential backoff. Only transient upstream
// failures (AI_UNAVAILABLE) are retried; invalid input, rate limiting, quota
// exhaustion, and configuration errors are terminal and returned immediately.
func Extraction(ctx context.Context, p Policy, fn func(context.Context) (*entities.ExtractionResult, error)) (*entities.ExtractionResult, error) {
	var result *entities.ExtractionResult

	op := func() error {
		res, err := fn(ctx)
		if err != nil {
			var appErr errors.AppError
			if stdErrors.As(err, &appErr) && appErr.Code != errors.ErrorCode_AI_UNAVAILABLE {
				return backoff.Permanent(err)
			}
			return err
		}
		result = res
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = p.InitialInterval
	bo.MaxInterval = p.MaxInterval
	bo.MaxElapsedTime = p.MaxElapsedTime

	if err := backoff.Retry(op, backoff.WithContext(bo, ctx)); err != nil {
		return nil, err
	}
	return result, nil
}
