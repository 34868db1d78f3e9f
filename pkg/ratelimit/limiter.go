package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"anonfeed/pkg/storage"
)

const DefaultCooldown = 69 * time.Second

// Error reports a rejected attempt with the whole seconds left until the
// cooldown elapses, rounded up.
type Error struct {
	RetryAfterSeconds int
}

func (e *Error) Error() string {
	return fmt.Sprintf("please wait %d seconds before posting again", e.RetryAfterSeconds)
}

// Limiter allows one post per user per cooldown window. The last accepted
// post time is kept durable under lastPost:<userID> so the window survives
// restarts.
type Limiter struct {
	kv       storage.KV
	cooldown time.Duration
}

func New(kv storage.KV, cooldown time.Duration) *Limiter {
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}

	return &Limiter{kv: kv, cooldown: cooldown}
}

// CheckAndRecord passes when the user has never posted or the cooldown has
// elapsed, and durably records now as the new last post time in the same
// call. Recording happens only on success.
func (l *Limiter) CheckAndRecord(ctx context.Context, userID string, now time.Time) error {
	last, ok, err := l.lastPostAt(ctx, userID)
	if err != nil {
		return err
	}

	if ok {
		elapsed := now.Sub(last)
		if elapsed < l.cooldown {
			retryAfter := int(math.Ceil((l.cooldown - elapsed).Seconds()))
			return &Error{RetryAfterSeconds: retryAfter}
		}
	}

	return l.kv.Set(ctx, lastPostKey(userID), now.Format(time.RFC3339Nano))
}

// Remaining is the display-only countdown, clamped at zero. The authoritative
// decision is always re-made by CheckAndRecord.
func (l *Limiter) Remaining(ctx context.Context, userID string, now time.Time) (int, error) {
	last, ok, err := l.lastPostAt(ctx, userID)
	if err != nil {
		return 0, err
	}

	if !ok {
		return 0, nil
	}

	remaining := int(l.cooldown.Seconds()) - int(now.Sub(last).Seconds())
	if remaining < 0 {
		return 0, nil
	}

	return remaining, nil
}

func (l *Limiter) lastPostAt(ctx context.Context, userID string) (time.Time, bool, error) {
	raw, err := l.kv.Get(ctx, lastPostKey(userID))
	if errors.Is(err, storage.ErrNotFound) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}

	last, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		// unreadable record, treat as never posted
		return time.Time{}, false, nil
	}

	return last, true, nil
}

func lastPostKey(userID string) string {
	return "lastPost:" + userID
}
