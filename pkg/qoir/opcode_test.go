package qoir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheIndex(t *testing.T) {
	// 3r + 5g + 7b + 11a, mod 64.
	assert.Equal(t, 0, cacheIndex(pixel{0, 0, 0, 0}))
	assert.Equal(t, (3*10+5*20+7*30+11*255)%64, cacheIndex(pixel{10, 20, 30, 255}))
	assert.Equal(t, 4, cacheIndex(pixel{1, 1, 1, 255}))
	assert.Equal(t, (3*255+5*255+7*255+11*255)%64, cacheIndex(pixel{255, 255, 255, 255}))
}

func TestPixelFormatBytesPerPixel(t *testing.T) {
	assert.Equal(t, 3, PixelFormatRGB.BytesPerPixel())
	assert.Equal(t, 3, PixelFormatBGR.BytesPerPixel())
	assert.Equal(t, 4, PixelFormatRGBANonPremul.BytesPerPixel())
	assert.Equal(t, 4, PixelFormatBGRX.BytesPerPixel())
}

func TestPixelFormatAlpha(t *testing.T) {
	assert.Equal(t, AlphaOpaque, PixelFormatRGB.Alpha())
	assert.Equal(t, AlphaOpaque, PixelFormatRGBX.Alpha())
	assert.Equal(t, AlphaNonPremultiplied, PixelFormatRGBANonPremul.Alpha())
	assert.Equal(t, AlphaPremultiplied, PixelFormatBGRAPremul.Alpha())
}

func TestRunCapBelowLiteralMarkers(t *testing.T) {
	// The largest RUN byte must stay below the 0xFE/0xFF literal markers.
	assert.Less(t, int(opRun|byte(maxRun-1)), int(opRGB))
}
