// Package limiter spaces out requests to a remote host and remembers, in a
// file, when the host last asked us to back off.
package limiter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
)

func New(filename string, delay time.Duration, log *zap.SugaredLogger) *Limiter {
	return &Limiter{
		filename: filename,
		delay:    delay,
		log:      log,
	}
}

type Limiter struct {
	filename string
	delay    time.Duration
	nextAt   time.Time
	log      *zap.SugaredLogger
}

// Load reads a back-off deadline saved by an earlier run, if there is one.
func (lim *Limiter) Load() error {
	bs, err := os.ReadFile(lim.filename)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	} else if err != nil {
		return fmt.Errorf("error reading limiter file '%s': %w", lim.filename, err)
	}

	lim.nextAt, err = time.Parse(time.UnixDate, string(bs))
	if err != nil {
		return fmt.Errorf("error parsing limiter file '%s': %w", lim.filename, err)
	}

	return nil
}

// NextAt is the earliest time the next request may go out.
func (lim *Limiter) NextAt() time.Time { return lim.nextAt }

// Wait blocks until the next request may go out.
func (lim *Limiter) Wait(ctx context.Context) error {
	if lim.nextAt.IsZero() {
		return nil
	}

	dur := time.Until(lim.nextAt)
	if dur > time.Second {
		lim.log.Infof("waiting %s until %s",
			dur.Truncate(time.Second),
			lim.nextAt.Format(time.StampMilli))
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(dur):
	}

	if err := os.Remove(lim.filename); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("error removing limiter file '%s': %w", lim.filename, err)
	}

	return nil
}

// SetNextAt backs off for the number of seconds in a Retry-After header value,
// plus one. An empty value means one minute. The deadline is saved so that
// the next run honors it too.
func (lim *Limiter) SetNextAt(secondsStr string) error {
	if secondsStr == "" {
		secondsStr = "60"
	}
	seconds, err := strconv.ParseInt(secondsStr, 10, 64)
	if err != nil {
		return fmt.Errorf("error parsing retry-after '%s': %w", secondsStr, err)
	}
	lim.nextAt = time.Now().Add(time.Duration(seconds)*time.Second + time.Second)
	if err := os.WriteFile(lim.filename, []byte(lim.nextAt.Format(time.UnixDate)), 0o666); err != nil {
		return fmt.Errorf("error writing limiter file '%s': %w", lim.filename, err)
	}
	return nil
}

// Delay schedules the next request one delay from now.
func (lim *Limiter) Delay() {
	lim.nextAt = time.Now().Add(lim.delay)
}
