package aggregate_test

import (
	"testing"

	"github.com/amonks/genremap/aggregate"
	"github.com/stretchr/testify/assert"
)

func TestCounterMostCommon(t *testing.T) {
	var c aggregate.Counter
	c.Add("c", "a", "b", "a", "b", "a", "c", "a", "b", "c", "a")

	assert.Equal(t, []aggregate.Count{{"a", 5}, {"c", 3}, {"b", 3}}, c.MostCommon(-1))
	assert.Equal(t, []string{"a", "c"}, c.Top(2))
	assert.Equal(t, []string{"a", "c", "b"}, c.Top(20))
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 11, c.Total())
	assert.Equal(t, 0, c.Count("missing"))
}

func TestCounterZero(t *testing.T) {
	var c aggregate.Counter
	assert.Empty(t, c.Top(20))
	assert.Equal(t, 0, c.Total())
}
