package llm

import "time"

const (
	backoffBase = 2 * time.Second
	backoffCap  = 10 * time.Second
)

// backoffDelay returns the pause before retry n (0-based). The delay doubles
// per retry up to max, plus additive jitter of up to half the delay so
// concurrent callers do not retry in lockstep. For a fixed jitter fraction
// the sequence is non-decreasing: delay*1.5 never exceeds the next doubling.
// jitter must be in [0, 1).
func backoffDelay(retry int, base, max time.Duration, jitter float64) time.Duration {
	if retry < 0 {
		retry = 0
	}
	delay := base
	for i := 0; i < retry && delay < max; i++ {
		delay *= 2
	}
	if delay > max {
		delay = max
	}
	return delay + time.Duration(jitter*float64(delay/2))
}
