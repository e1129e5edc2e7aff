package formatter

import (
	"math"
	"testing"

	md "github.com/echenim/bookview/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestBarWidth(t *testing.T) {
	assert.Equal(t, 50.0, BarWidth(5, 10))
	assert.Equal(t, 100.0, BarWidth(10, 10))
	assert.Equal(t, 0.0, BarWidth(0, 10))
}

func TestBarWidth_Clamped(t *testing.T) {
	assert.Equal(t, 0.0, BarWidth(0, 0), "all-zero side")
	assert.Equal(t, 0.0, BarWidth(1, 0))
	assert.Equal(t, 100.0, BarWidth(15, 10))
	assert.Equal(t, 0.0, BarWidth(-1, 10))
	assert.Equal(t, 0.0, BarWidth(1, math.NaN()))
}

func TestMaxTotal(t *testing.T) {
	assert.Equal(t, 0.0, MaxTotal(nil))
	assert.Equal(t, 30.0, MaxTotal([]md.DisplayRow{{Total: 30}, {Total: 20}, {Total: 25}}))
}
