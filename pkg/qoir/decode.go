package qoir

import (
	"encoding/binary"
)

// maxFramePixels bounds what one frame may hold on either side of the
// codec. A frame advertising more pixels than this fails with
// ErrOutOfMemory on decode before any allocation, and a buffer claiming
// more is rejected on encode before any size arithmetic can overflow.
const maxFramePixels = 1 << 30

// DecodeOptions configures Decode. A zero Format means RGBA non-premultiplied.
type DecodeOptions struct {
	// Format selects the destination pixel format to materialize into.
	Format PixelFormat
}

// DecodePixelConfiguration reads the frame header and returns the source
// width, height and inferred pixel format without decoding any pixels.
func DecodePixelConfiguration(src []byte) (PixelConfiguration, error) {
	if len(src) < headerSize || string(src[0:4]) != magic {
		return PixelConfiguration{}, ErrInvalidData
	}
	width := binary.BigEndian.Uint32(src[4:8])
	height := binary.BigEndian.Uint32(src[8:12])
	if width == 0 || height == 0 {
		return PixelConfiguration{}, ErrInvalidData
	}
	var format PixelFormat
	switch src[12] {
	case 3:
		format = PixelFormatRGB
	case 4:
		format = PixelFormatRGBANonPremul
	default:
		return PixelConfiguration{}, ErrInvalidData
	}
	return PixelConfiguration{Format: format, Width: width, Height: height}, nil
}

// Decode decompresses a frame into a freshly allocated, tightly packed
// pixel buffer in the requested destination format. A truncated opcode
// stream is not an error: remaining pixels repeat the last resolved pixel.
func Decode(src []byte, opts *DecodeOptions) (*PixelBuffer, error) {
	if src == nil {
		return nil, ErrInvalidArgument
	}
	if len(src) < headerSize+trailerSize {
		return nil, ErrInvalidData
	}
	cfg, err := DecodePixelConfiguration(src)
	if err != nil {
		return nil, err
	}

	dstFormat := PixelFormatRGBANonPremul
	if opts != nil && opts.Format != PixelFormatInvalid {
		dstFormat = opts.Format
	}
	store := storeFunc(dstFormat)
	if store == nil {
		return nil, ErrUnsupportedPixelFormat
	}

	pixels := uint64(cfg.Width) * uint64(cfg.Height)
	if pixels > maxFramePixels {
		return nil, ErrOutOfMemory
	}
	bpp := dstFormat.BytesPerPixel()
	dst := make([]byte, int(pixels)*bpp)
	decodeStream(dst, bpp, store, int(pixels), src[headerSize:])

	return &PixelBuffer{
		PixelConfiguration: PixelConfiguration{Format: dstFormat, Width: cfg.Width, Height: cfg.Height},
		Data:               dst,
		Stride:             bpp * int(cfg.Width),
	}, nil
}

// storeFunc returns the channel-placement function for a destination format,
// or nil when the format is not materializable by pure relabeling. The X
// padding byte of the 4-byte opaque formats receives the alpha value so a
// 3-channel source still yields 0xFF there.
func storeFunc(f PixelFormat) func(dst []byte, p *pixel) {
	switch f {
	case PixelFormatRGBX, PixelFormatRGBANonPremul:
		return func(dst []byte, p *pixel) {
			copy(dst[:4], p[:])
		}
	case PixelFormatBGRX, PixelFormatBGRANonPremul:
		return func(dst []byte, p *pixel) {
			dst[0], dst[1], dst[2], dst[3] = p[2], p[1], p[0], p[3]
		}
	case PixelFormatRGB:
		return func(dst []byte, p *pixel) {
			copy(dst[:3], p[:3])
		}
	case PixelFormatBGR:
		return func(dst []byte, p *pixel) {
			dst[0], dst[1], dst[2] = p[2], p[1], p[0]
		}
	}
	// Premultiplied destinations would need real conversion, not relabeling.
	return nil
}

// decodeStream runs the opcode loop for count pixels. The final 8 bytes of
// src are the end-of-stream trailer and are never read as an opcode byte;
// literal/luma payloads may overlap into them on a malformed stream, which
// keeps every read in bounds.
func decodeStream(dst []byte, bpp int, store func([]byte, *pixel), count int, src []byte) {
	var cache colorCache
	px := pixel{0, 0, 0, 0xFF}
	run := 0

	sp := 0
	sq := len(src) - trailerSize
	d := 0
	for ; count > 0; count-- {
		if run > 0 {
			run--
		} else if sp < sq {
			s0 := src[sp]
			sp++
			switch {
			case s0 == opRGB:
				px[0], px[1], px[2] = src[sp], src[sp+1], src[sp+2]
				sp += 3
				cache[cacheIndex(px)] = px
			case s0 == opRGBA:
				px[0], px[1], px[2], px[3] = src[sp], src[sp+1], src[sp+2], src[sp+3]
				sp += 4
				cache[cacheIndex(px)] = px
			default:
				switch s0 >> 6 {
				case 0: // INDEX: copy the slot verbatim, no re-insert
					px = cache[s0&0x3F]
				case 1: // DIFF: signed 2-bit deltas, wrapping
					px[0] += byte((s0>>4)&0x03) - 2
					px[1] += byte((s0>>2)&0x03) - 2
					px[2] += byte(s0&0x03) - 2
					cache[cacheIndex(px)] = px
				case 2: // LUMA: 6-bit green delta plus two 4-bit offsets
					s1 := src[sp]
					sp++
					dg := (s0 & 0x3F) - 32
					px[0] += dg - 8 + (s1 >> 4)
					px[1] += dg
					px[2] += dg - 8 + (s1 & 0x0F)
					cache[cacheIndex(px)] = px
				case 3: // RUN: repeats do not touch the cache
					run = int(s0 & 0x3F)
				}
			}
		}
		// Stream exhausted with no active run falls through here too,
		// padding the image with the last resolved pixel.
		store(dst[d:], &px)
		d += bpp
	}
}
