package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModWrapsNegatives(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(11, Mod(-1, 12))
	assert.Equal(0, Mod(-24, 12))
	assert.Equal(1, Mod(25, 12))
	assert.Equal(int8(3), Mod(int8(-9), int8(12)))
}

func TestClamp(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(30, Clamp(10, 30, 250))
	assert.Equal(250, Clamp(300, 30, 250))
	assert.Equal(120, Clamp(120, 30, 250))
	assert.Equal(0.5, Clamp(0.5, 0.0, 1.0))
}

func TestGetKeysSorted(t *testing.T) {
	m := map[string]int{"b": 2, "a": 1, "c": 3}
	assert.Equal(t, []string{"a", "b", "c"}, GetKeys(m))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{"C", "E", "G"}, "E"))
	assert.False(t, Contains([]string{"C", "E", "G"}, "F"))
}
