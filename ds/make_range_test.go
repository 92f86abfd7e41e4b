package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeRange(t *testing.T) {
	assert.Equal(t, []int{0, 2, 4}, MakeRange(0, 6, 2))
	assert.Empty(t, MakeRange(6, 0, 2))
}

func TestMakeRangeWraparoundStep(t *testing.T) {
	step := int64(1) << 32
	start := int64(67300)
	assert.Equal(
		t,
		[]int64{start, start + step, start + 2*step},
		MakeRange(start, start+2*step+1, step),
	)
}
