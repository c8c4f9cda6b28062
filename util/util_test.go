package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(5, Clamp(5, 0, 127))
	assert.Equal(0, Clamp(-3, 0, 127))
	assert.Equal(127, Clamp(500, 0, 127))
	assert.Equal(uint8(127), Clamp(uint8(200), uint8(0), uint8(127)))
}
