package wand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeResolve(t *testing.T) {
	tests := []struct {
		name   string
		r      Range
		extent int
		start  int
		stop   int
	}{
		{
			name:   "full",
			r:      All(),
			extent: 100,
			start:  0,
			stop:   100,
		},
		{
			name:   "span",
			r:      Span(10, 20),
			extent: 100,
			start:  10,
			stop:   20,
		},
		{
			name:   "open start",
			r:      To(100),
			extent: 300,
			start:  0,
			stop:   100,
		},
		{
			name:   "open stop",
			r:      From(200),
			extent: 300,
			start:  200,
			stop:   300,
		},
		{
			name:   "negative bounds count from the end",
			r:      Span(-70, -50),
			extent: 100,
			start:  30,
			stop:   50,
		},
		{
			name:   "negative start only",
			r:      From(-20),
			extent: 100,
			start:  80,
			stop:   100,
		},
		{
			name:   "single coordinate",
			r:      At(10),
			extent: 100,
			start:  10,
			stop:   11,
		},
		{
			name:   "negative single coordinate",
			r:      At(-1),
			extent: 100,
			start:  99,
			stop:   100,
		},
		{
			name:   "bound equal to extent",
			r:      Span(0, 100),
			extent: 100,
			start:  0,
			stop:   100,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, stop, err := tt.r.resolve(tt.extent)
			require.NoError(t, err)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.stop, stop)
		})
	}
}

func TestRangeResolveOutOfBounds(t *testing.T) {
	for _, r := range []Range{
		Span(0, 101),
		Span(101, 200),
		From(101),
		To(101),
		At(101),
	} {
		_, _, err := r.resolve(100)
		assert.ErrorIs(t, err, ErrRangeOutOfBounds)
	}
}

func TestRangeIsFull(t *testing.T) {
	assert.True(t, All().isFull())
	assert.False(t, From(0).isFull())
	assert.False(t, To(10).isFull())
	assert.False(t, At(0).isFull())
}
