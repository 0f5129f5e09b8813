package testutil

import (
	"context"
	"time"
)

// TestContext returns a context with a 10 second deadline, enough for any
// single repository or cache call against the test containers.
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// TestContextWithTimeout returns a context with the given deadline, for
// slower operations such as report processing.
func TestContextWithTimeout(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}
