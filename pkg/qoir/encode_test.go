package qoir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rgbBuffer builds a tightly packed 3-channel buffer from pixel triples.
func rgbBuffer(t *testing.T, width, height int, rgb ...byte) *PixelBuffer {
	t.Helper()
	require.Len(t, rgb, width*height*3)
	return &PixelBuffer{
		PixelConfiguration: PixelConfiguration{
			Format: PixelFormatRGB,
			Width:  uint32(width),
			Height: uint32(height),
		},
		Data:   rgb,
		Stride: 3 * width,
	}
}

// opcodes strips the header and trailer off a frame.
func opcodes(t *testing.T, frame []byte) []byte {
	t.Helper()
	require.GreaterOrEqual(t, len(frame), headerSize+trailerSize)
	return frame[headerSize : len(frame)-trailerSize]
}

func TestEncodeGoldenLiteralThenRun(t *testing.T) {
	// 2x1, both pixels (10,20,30): one RGB literal, then RUN of 1.
	frame, err := Encode(rgbBuffer(t, 2, 1, 10, 20, 30, 10, 20, 30), nil)
	require.NoError(t, err)

	want := []byte{
		'q', 'o', 'i', 'f',
		0x00, 0x00, 0x00, 0x02, // width
		0x00, 0x00, 0x00, 0x01, // height
		0x03, 0x00, // channels, colorspace
		opRGB, 10, 20, 30,
		opRun | 0x00,
		0, 0, 0, 0, 0, 0, 0, 1,
	}
	assert.Equal(t, want, frame)
}

func TestEncodeTieBreakIndexBeforeDiff(t *testing.T) {
	// Third pixel (1,1,1) is reachable by DIFF from (2,2,2) and already
	// sits in cache slot 4; the cheaper INDEX branch must win.
	frame, err := Encode(rgbBuffer(t, 3, 1, 1, 1, 1, 2, 2, 2, 1, 1, 1), nil)
	require.NoError(t, err)

	diffPlusOne := byte(opDiff | 3<<4 | 3<<2 | 3)
	assert.Equal(t, []byte{diffPlusOne, diffPlusOne, opIndex | 4}, opcodes(t, frame))
}

func TestEncodeRunBoundary(t *testing.T) {
	// A literal, then 62 repeats (the maximum one RUN can carry), then a
	// different pixel: exactly one RUN opcode, not two.
	pix := make([]byte, 0, 64*3)
	for i := 0; i < 63; i++ {
		pix = append(pix, 10, 20, 30)
	}
	pix = append(pix, 200, 100, 50)

	frame, err := Encode(rgbBuffer(t, 64, 1, pix...), nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{
		opRGB, 10, 20, 30,
		opRun | byte(maxRun-1),
		opRGB, 200, 100, 50,
	}, opcodes(t, frame))
}

func TestEncodeRunSplit(t *testing.T) {
	// 63 repeats do not fit one RUN opcode: expect RUN(62)+RUN(1).
	pix := make([]byte, 0, 64*3)
	for i := 0; i < 64; i++ {
		pix = append(pix, 10, 20, 30)
	}
	frame, err := Encode(rgbBuffer(t, 64, 1, pix...), nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{
		opRGB, 10, 20, 30,
		opRun | byte(maxRun-1),
		opRun | 0x00,
	}, opcodes(t, frame))
}

func TestEncodeAlphaChangeUsesRGBALiteral(t *testing.T) {
	src := NewPixelBuffer(PixelFormatRGBANonPremul, 2, 1)
	copy(src.Data, []byte{10, 20, 30, 255, 10, 20, 30, 128})
	frame, err := Encode(src, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{
		opRGB, 10, 20, 30,
		opRGBA, 10, 20, 30, 128,
	}, opcodes(t, frame))
}

func TestEncodeLuma(t *testing.T) {
	// Green moves +20, red/green and blue/green offsets stay within 4 bits.
	src := rgbBuffer(t, 2, 1, 100, 100, 100, 118, 120, 115)
	frame, err := Encode(src, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{
		opRGB, 100, 100, 100,
		opLuma | byte(20+32), byte(-2+8)<<4 | byte(-5+8),
	}, opcodes(t, frame))
}

func TestEncodeRejectsStride(t *testing.T) {
	src := NewPixelBuffer(PixelFormatRGB, 4, 4)
	src.Stride = 16 // padded rows are the caller's problem, not the codec's
	_, err := Encode(src, nil)
	assert.ErrorIs(t, err, ErrUnsupportedPixelBuffer)
}

func TestEncodeRejectsFormat(t *testing.T) {
	for _, f := range []PixelFormat{
		PixelFormatBGR, PixelFormatBGRANonPremul, PixelFormatRGBAPremul, PixelFormatInvalid,
	} {
		src := NewPixelBuffer(f, 2, 2)
		_, err := Encode(src, nil)
		assert.ErrorIs(t, err, ErrUnsupportedPixelFormat, "format %v", f)
	}
}

func TestEncodeInvalidArgument(t *testing.T) {
	_, err := Encode(nil, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	src := NewPixelBuffer(PixelFormatRGB, 2, 2)
	src.Data = src.Data[:6] // shorter than width*height*bpp
	_, err = Encode(src, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	zero := NewPixelBuffer(PixelFormatRGB, 0, 4)
	_, err = Encode(zero, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestEncodeOversizedDimensions(t *testing.T) {
	// Dimensions whose byte size overflows int must error out, not panic.
	src := &PixelBuffer{
		PixelConfiguration: PixelConfiguration{
			Format: PixelFormatRGB,
			Width:  1 << 31,
			Height: 1 << 31,
		},
		Data: make([]byte, 16),
	}
	_, err := Encode(src, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
