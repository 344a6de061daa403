package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomIsDeterministic(t *testing.T) {
	a, b := NewRandom(7), NewRandom(7)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Range(-1, 1), b.Range(-1, 1))
		assert.Equal(t, a.IntRange(3, 9), b.IntRange(3, 9))
		assert.Equal(t, a.Bool(), b.Bool())
	}

	c := NewRandom(8)
	same := true
	for i := 0; i < 10; i++ {
		if a.Uint64() != c.Uint64() {
			same = false
		}
	}
	assert.False(t, same, "different seeds produce different streams")
}

func TestRandomBounds(t *testing.T) {
	r := NewRandom(1)
	for i := 0; i < 1000; i++ {
		v := r.Range(10, 20)
		assert.GreaterOrEqual(t, v, 10.0)
		assert.Less(t, v, 20.0)

		n := r.IntRange(-2, 2)
		assert.GreaterOrEqual(t, n, -2)
		assert.LessOrEqual(t, n, 2)

		assert.Less(t, r.Intn(5), 5)
	}

	assert.Equal(t, 4, r.IntRange(4, 4))
	assert.Equal(t, 0, r.Intn(0))
	assert.Equal(t, 3.0, r.Range(3, 3))
}
