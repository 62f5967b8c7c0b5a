package circuitbreaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errUpstream = errors.New("upstream 503")

func TestBreaker_OpensAfterThresholdAndRecovers(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var transitions []string
	b := New(Config{
		FailureThreshold: 2,
		SuccessThreshold: 1,
		Timeout:          time.Minute,
		OnStateChange: func(from, to State) {
			transitions = append(transitions, from.String()+"->"+to.String())
		},
	}, nil)
	b.now = func() time.Time { return now }

	fail := func() error { return errUpstream }
	ok := func() error { return nil }

	require.ErrorIs(t, b.Execute(fail), errUpstream)
	require.ErrorIs(t, b.Execute(fail), errUpstream)
	assert.Equal(t, StateOpen, b.State())

	calls := 0
	err := b.Execute(func() error { calls++; return nil })
	require.ErrorIs(t, err, ErrCircuitOpen)
	assert.Zero(t, calls, "open circuit must not call the upstream")

	now = now.Add(2 * time.Minute)
	require.NoError(t, b.Execute(ok))
	assert.Equal(t, StateClosed, b.State())
	assert.Equal(t, []string{"closed->open", "open->half-open", "half-open->closed"}, transitions)
}

func TestBreaker_IgnoresNonFailures(t *testing.T) {
	t.Parallel()

	notFound := errors.New("404")
	b := New(Config{FailureThreshold: 1}, func(err error) bool { return !errors.Is(err, notFound) })

	for range 3 {
		_ = b.Execute(func() error { return notFound })
	}
	assert.Equal(t, StateClosed, b.State())
}
