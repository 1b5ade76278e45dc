package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jsamuelsen11/go-ssr-template/internal/platform/config"
	"github.com/jsamuelsen11/go-ssr-template/internal/platform/logging"
)

// jitter spreads each delay by up to a quarter either way.
const jitter = 0.25

type retryPolicy struct {
	maxAttempts int
	initial     time.Duration
	ceiling     time.Duration
	multiplier  float64
}

func newRetryPolicy(cfg config.RetryConfig) retryPolicy {
	return retryPolicy{
		maxAttempts: cfg.MaxAttempts,
		initial:     cfg.InitialInterval,
		ceiling:     cfg.MaxInterval,
		multiplier:  cfg.Multiplier,
	}
}

// attemptsFor limits non-idempotent methods to one try. Replaying a POST
// could create a todo or an account twice.
func (p retryPolicy) attemptsFor(method string) int {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return p.maxAttempts
	default:
		return min(p.maxAttempts, 1)
	}
}

// delay is the wait before retry n, counting from 1. A positive hint from
// Retry-After replaces the exponential step. Either way the result stays
// under the ceiling.
func (p retryPolicy) delay(n int, hint time.Duration) time.Duration {
	if hint > 0 {
		return min(hint, p.ceiling)
	}
	d := min(float64(p.initial)*math.Pow(p.multiplier, float64(n-1)), float64(p.ceiling))
	d += d * jitter * (2*rand.Float64() - 1) //nolint:gosec // jitter needs no crypto randomness
	return time.Duration(max(d, 0))
}

// send runs the retry loop for one logical call. The request body is
// buffered once so every attempt replays it.
func (c *Client) send(ctx context.Context, req *http.Request) (*http.Response, error) {
	attempts := c.retry.attemptsFor(req.Method)
	if attempts < 1 {
		return nil, fmt.Errorf("httpclient: max attempts must be at least 1, got %d", c.retry.maxAttempts)
	}

	body, err := snapshotBody(req)
	if err != nil {
		return nil, err
	}

	var (
		lastErr error
		hint    time.Duration
	)
	for n := range attempts {
		if n > 0 {
			if err := c.pause(ctx, req, n, hint, lastErr); err != nil {
				return nil, err
			}
		}
		if body != nil {
			req.Body = io.NopCloser(bytes.NewReader(body))
			req.ContentLength = int64(len(body))
		}

		resp, err := c.http.Do(req)
		switch {
		case err != nil:
			if !retryableErr(err) {
				return nil, err
			}
			lastErr, hint = err, 0
		case !retryableStatus(resp.StatusCode):
			return resp, nil
		default:
			lastErr = fmt.Errorf("HTTP %d from %s", resp.StatusCode, c.peer)
			if n == attempts-1 {
				return resp, lastErr
			}
			hint = retryAfter(resp.Header.Get("Retry-After"), time.Now())
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		}
	}
	return nil, lastErr
}

func snapshotBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	defer req.Body.Close()
	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return b, nil
}

func (c *Client) pause(ctx context.Context, req *http.Request, n int, hint time.Duration, cause error) error {
	wait := c.retry.delay(n, hint)

	logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
		slog.String("method", req.Method),
		slog.String("url", redactURL(req.URL)),
		slog.String("peer_service", c.peer),
		slog.Int("attempt", n+1),
		slog.Int("max_attempts", c.retry.maxAttempts),
		slog.Duration("backoff", wait),
		slog.Any("error", cause),
	)

	t := time.NewTimer(wait)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// retryAfter parses a Retry-After value given either as seconds or as an
// HTTP date. Anything unparseable or in the past yields zero.
func retryAfter(v string, now time.Time) time.Duration {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(max(secs, 0)) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil && at.After(now) {
		return at.Sub(now)
	}
	return 0
}

// retryableErr treats transport failures as transient unless the caller's
// context ended or the URL can never work.
func retryableErr(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && strings.Contains(urlErr.Err.Error(), "unsupported protocol scheme") {
		return false
	}
	return true
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
