package qoir

// AlphaTransparency is the alpha interpretation carried in a PixelFormat's
// low two bits.
type AlphaTransparency uint32

const (
	AlphaOpaque            AlphaTransparency = 0x01
	AlphaNonPremultiplied  AlphaTransparency = 0x02
	AlphaPremultiplied     AlphaTransparency = 0x03
	alphaTransparencyMask                    = 0x03
)

// PixelFormat combines an alpha transparency choice with a pixel byte order.
// The bit layout matches the file format:
//   - the 0x10 bit means 3 (not 4) bytes per (fully opaque) pixel
//   - the 0x20 bit means RGBA (not BGRA) byte order
type PixelFormat uint32

const (
	PixelFormatInvalid       PixelFormat = 0x00
	PixelFormatBGRX          PixelFormat = 0x01
	PixelFormatBGRANonPremul PixelFormat = 0x02
	PixelFormatBGRAPremul    PixelFormat = 0x03
	PixelFormatBGR           PixelFormat = 0x11
	PixelFormatRGBX          PixelFormat = 0x21
	PixelFormatRGBANonPremul PixelFormat = 0x22
	PixelFormatRGBAPremul    PixelFormat = 0x23
	PixelFormatRGB           PixelFormat = 0x31
)

// BytesPerPixel reports the in-memory size of one pixel: 3 for the opaque
// packed formats, 4 otherwise.
func (f PixelFormat) BytesPerPixel() int {
	if f&0x10 != 0 {
		return 3
	}
	return 4
}

// Alpha reports the alpha transparency semantics of the format.
func (f PixelFormat) Alpha() AlphaTransparency {
	return AlphaTransparency(f & alphaTransparencyMask)
}

func (f PixelFormat) String() string {
	switch f {
	case PixelFormatBGRX:
		return "BGRX"
	case PixelFormatBGRANonPremul:
		return "BGRA (non-premultiplied)"
	case PixelFormatBGRAPremul:
		return "BGRA (premultiplied)"
	case PixelFormatBGR:
		return "BGR"
	case PixelFormatRGBX:
		return "RGBX"
	case PixelFormatRGBANonPremul:
		return "RGBA (non-premultiplied)"
	case PixelFormatRGBAPremul:
		return "RGBA (premultiplied)"
	case PixelFormatRGB:
		return "RGB"
	}
	return "invalid"
}

// PixelConfiguration describes a pixel buffer's shape without its data.
type PixelConfiguration struct {
	Format PixelFormat
	Width  uint32
	Height uint32
}

// PixelBuffer is a rectangular array of pixels in row-major order. Stride is
// the byte distance between the starts of consecutive rows; padding bytes
// between rows, if any, are never touched by the codec.
type PixelBuffer struct {
	PixelConfiguration
	Data   []byte
	Stride int
}

// NewPixelBuffer allocates a tightly packed buffer for the given shape.
func NewPixelBuffer(format PixelFormat, width, height uint32) *PixelBuffer {
	stride := format.BytesPerPixel() * int(width)
	return &PixelBuffer{
		PixelConfiguration: PixelConfiguration{Format: format, Width: width, Height: height},
		Data:               make([]byte, stride*int(height)),
		Stride:             stride,
	}
}
