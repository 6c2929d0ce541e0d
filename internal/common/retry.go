package common

import (
	"time"
)

const (
	// DefaultRetryAttempts bounds how many times a store call is tried
	DefaultRetryAttempts = 2
	// DefaultRetryDelay is the fixed pause between attempts
	DefaultRetryDelay = 150 * time.Millisecond
)

// Retry runs fn up to attempts times, sleeping delay between failures.
// The last error is returned if every attempt fails. A transient store
// hiccup should not fail a whole page render, so retrieval callers wrap
// their store calls with a short bounded retry before surfacing failure.
func Retry(attempts int, delay time.Duration, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for i := 0; i < attempts; i++ {
		if err = fn(); err == nil {
			return nil
		}
		if i < attempts-1 {
			time.Sleep(delay)
		}
	}
	return err
}
