package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedClock(t *testing.T) {
	at := time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)
	c := Fixed(at)

	assert.True(t, c.Now().Equal(at))
	assert.True(t, c.Now().Equal(c.Now()))
}

func TestSystemClockUsesLocation(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	c := System(loc)

	assert.Equal(t, loc, c.Now().Location())
	assert.WithinDuration(t, time.Now(), c.Now(), time.Second)
}

func TestSystemClockNilLocation(t *testing.T) {
	c := System(nil)
	assert.Equal(t, time.Local, c.Now().Location())
}
