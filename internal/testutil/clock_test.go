package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSteppingClock_Advances(t *testing.T) {
	start := time.Date(2026, 8, 1, 9, 0, 0, 0, time.Local)
	c := NewSteppingClock(start, time.Minute)

	assert.Equal(t, start, c.Now())
	assert.Equal(t, start.Add(time.Minute), c.Now())
	assert.Equal(t, start.Add(2*time.Minute), c.Now())
}

func TestSteppingClock_Set(t *testing.T) {
	start := time.Date(2026, 8, 1, 9, 0, 0, 0, time.Local)
	c := NewSteppingClock(start, time.Hour)
	c.Now()

	later := start.Add(24 * time.Hour)
	c.Set(later)
	assert.Equal(t, later, c.Now())
}
