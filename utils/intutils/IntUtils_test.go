package intutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClip(t *testing.T) {
	assert.Equal(t, 0, Clip(-3, 0, 4))
	assert.Equal(t, 4, Clip(9, 0, 4))
	assert.Equal(t, 2, Clip(2, 0, 4))
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, -1, Min(3, -1, 2))
	assert.Equal(t, 3, Max(3, -1, 2))
	assert.Equal(t, 5, Max(5))
}
