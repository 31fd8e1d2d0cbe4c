package config

import (
	"testing"

	"github.com/gowand/wand"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	options, logger, err := Parse([]string{
		"-resize", "800x600",
		"-filter", "lanczos",
		"-blur", "0.8",
		"-crop", "10:200,20:",
		"-format", "png",
		"-concurrency", "4",
		"a.jpg", "b.jpg",
	})
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, options.Files)
	assert.Equal(t, 800, options.ResizeWidth)
	assert.Equal(t, 600, options.ResizeHeight)
	assert.Equal(t, wand.FilterLanczos, options.Filter)
	assert.Equal(t, 0.8, options.Blur)
	assert.True(t, options.Crop)
	assert.Equal(t, wand.Span(10, 200), options.CropX)
	assert.Equal(t, wand.From(20), options.CropY)
	assert.Equal(t, "png", options.Format)
	assert.Equal(t, 4, options.Concurrency)
}

func TestParseDefaults(t *testing.T) {
	options, _, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, options.Files)
	assert.Equal(t, 0, options.ResizeWidth)
	assert.Equal(t, 0, options.ResizeHeight)
	assert.Equal(t, wand.FilterTriangle, options.Filter)
	assert.Equal(t, 1.0, options.Blur)
	assert.False(t, options.Crop)
	assert.Equal(t, 1, options.Concurrency)
	assert.Equal(t, "_wand", options.Suffix)
}

func TestParseFilterIndex(t *testing.T) {
	options, _, err := Parse([]string{"-filter", "13"})
	require.NoError(t, err)
	assert.Equal(t, wand.FilterLanczos, options.Filter)

	_, _, err = Parse([]string{"-filter", "99"})
	assert.Error(t, err)
	_, _, err = Parse([]string{"-filter", "nearest"})
	assert.ErrorIs(t, err, wand.ErrInvalidFilter)
}

func TestParseGeometry(t *testing.T) {
	tests := []struct {
		geometry string
		width    int
		height   int
		wantErr  bool
	}{
		{geometry: "", width: 0, height: 0},
		{geometry: "800x600", width: 800, height: 600},
		{geometry: "800x", width: 800, height: 0},
		{geometry: "x600", width: 0, height: 600},
		{geometry: "800", wantErr: true},
		{geometry: "axb", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.geometry, func(t *testing.T) {
			width, height, err := parseGeometry(tt.geometry)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.width, width)
			assert.Equal(t, tt.height, height)
		})
	}
}

func TestParseCrop(t *testing.T) {
	tests := []struct {
		spec    string
		x       wand.Range
		y       wand.Range
		wantErr bool
	}{
		{spec: "10:200,20:", x: wand.Span(10, 200), y: wand.From(20)},
		{spec: ":,:", x: wand.All(), y: wand.All()},
		{spec: ":100,-20:-10", x: wand.To(100), y: wand.Span(-20, -10)},
		{spec: "5,10:20", x: wand.At(5), y: wand.Span(10, 20)},
		{spec: ",", x: wand.All(), y: wand.All()},
		{spec: "10:20", wantErr: true},
		{spec: "a:b,c:d", wantErr: true},
		{spec: "1:2,3:4,5:6", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			x, y, err := ParseCrop(tt.spec)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.x, x)
			assert.Equal(t, tt.y, y)
		})
	}
}
