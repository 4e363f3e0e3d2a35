package llm

import (
	"context"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"llmcomplete/internal/config"
)

// Adapter executes requests against one Backend, applying the configured
// defaults, the per-call timeout, and the retry budget. Only rate-limit and
// timeout failures are retried here; everything else is a failover or
// propagate decision owned by the Client.
type Adapter struct {
	backend     Backend
	maxRetries  int
	timeout     time.Duration
	maxTokens   int
	temperature float64
	logger      zerolog.Logger

	// test seams
	sleep func(context.Context, time.Duration) error
	rng   func() float64
}

// NewAdapter wraps backend with the call policy from cfg.
func NewAdapter(backend Backend, cfg config.ProviderConfig, logger zerolog.Logger) *Adapter {
	return &Adapter{
		backend:     backend,
		maxRetries:  cfg.MaxRetries,
		timeout:     cfg.Timeout,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		logger:      logger.With().Str("provider", backend.Name()).Logger(),
		sleep:       sleepCtx,
		rng:         rand.Float64,
	}
}

// Do runs req against the backend. It returns the raw text and the number of
// attempts consumed; on failure the returned *Error carries the same count.
func (a *Adapter) Do(ctx context.Context, req *Request) (string, int, error) {
	run := *req
	if run.MaxTokens == 0 {
		run.MaxTokens = a.maxTokens
	}
	if run.Temperature == 0 {
		run.Temperature = a.temperature
	}

	// One jitter draw per invocation keeps the delay sequence non-decreasing;
	// a fresh draw per retry could shrink a near-cap delay.
	jitter := a.rng()

	var lastErr *Error
	for attempt := 0; attempt <= a.maxRetries; attempt++ {
		if attempt > 0 {
			delay := backoffDelay(attempt-1, backoffBase, backoffCap, jitter)
			if err := a.sleep(ctx, delay); err != nil {
				lastErr = &Error{
					Kind:     KindTimeout,
					Provider: a.backend.Name(),
					Message:  "canceled while waiting to retry",
					Attempts: attempt,
					Err:      err,
				}
				return "", attempt, lastErr
			}
		}

		rec := a.call(ctx, &run, attempt)
		if rec.OK {
			return rec.text, attempt + 1, nil
		}
		lastErr = rec.err
		if decisionFor(lastErr.Kind) != retrySame {
			break
		}
	}
	return "", lastErr.Attempts, lastErr
}

type attemptResult struct {
	AttemptRecord
	text string
	err  *Error
}

// call performs one bounded backend call and logs the attempt. The API key
// never appears in the log entry.
func (a *Adapter) call(ctx context.Context, req *Request, attempt int) attemptResult {
	callCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	start := time.Now()
	text, err := a.backend.Send(callCtx, req)
	elapsed := time.Since(start)

	res := attemptResult{
		AttemptRecord: AttemptRecord{
			Provider: a.backend.Name(),
			Attempt:  attempt + 1,
			OK:       err == nil,
			Elapsed:  elapsed,
		},
		text: text,
	}

	if err == nil {
		a.logger.Info().
			Int("attempt", res.Attempt).
			Dur("latency", elapsed).
			Msg("completion attempt succeeded")
		return res
	}

	res.err = asError(err, a.backend.Name())
	res.err.Attempts = attempt + 1
	res.Kind = res.err.Kind
	a.logger.Warn().
		Int("attempt", res.Attempt).
		Str("kind", res.Kind.String()).
		Dur("latency", elapsed).
		Msg("completion attempt failed")
	return res
}

// Name returns the wrapped backend's name.
func (a *Adapter) Name() string { return a.backend.Name() }

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
