package clock_test

import (
	"testing"
	"time"

	"warehouse/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestFixed(t *testing.T) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	c := clock.NewFixed(start)

	c.Advance(90 * time.Minute)

	assert.Equal(t, start.Add(90*time.Minute), c.Now())
}

func TestSystem(t *testing.T) {
	loc := time.FixedZone("EET", 2*60*60)

	now := clock.NewSystem(loc).Now()

	assert.Equal(t, loc, now.Location())
	assert.WithinDuration(t, time.Now(), now, time.Second)
	assert.Equal(t, time.UTC, clock.System{}.Now().Location())
}
