package qoir

import (
	"encoding/binary"
)

// EncodeOptions configures Encode. Reserved for future knobs; nil is valid.
type EncodeOptions struct{}

// Encode compresses a tightly packed RGB or RGBA (non-premultiplied) pixel
// buffer into a complete frame: header, opcode stream, trailer. The stream
// is greedy and single-pass; encoding the same buffer twice yields
// byte-identical output.
func Encode(src *PixelBuffer, opts *EncodeOptions) ([]byte, error) {
	if src == nil || src.Data == nil || src.Width == 0 || src.Height == 0 {
		return nil, ErrInvalidArgument
	}
	var channels byte
	switch src.Format {
	case PixelFormatRGB:
		channels = 3
	case PixelFormatRGBANonPremul:
		channels = 4
	default:
		return nil, ErrUnsupportedPixelFormat
	}
	bpp := int(channels)
	// Reject pixel counts whose byte sizes would overflow int before any
	// size arithmetic below.
	if uint64(src.Width)*uint64(src.Height) > maxFramePixels {
		return nil, ErrInvalidArgument
	}
	if src.Stride != bpp*int(src.Width) {
		return nil, ErrUnsupportedPixelBuffer
	}
	need := bpp * int(src.Width) * int(src.Height)
	if len(src.Data) < need {
		return nil, ErrInvalidArgument
	}

	// Worst case is one literal marker per pixel plus its channels.
	out := make([]byte, 0, headerSize+need+need/bpp+trailerSize)
	out = append(out, magic...)
	out = binary.BigEndian.AppendUint32(out, src.Width)
	out = binary.BigEndian.AppendUint32(out, src.Height)
	out = append(out, channels, 0) // 0 = sRGB colorspace flag

	var cache colorCache
	prev := pixel{0, 0, 0, 0xFF}
	run := 0

	data := src.Data[:need]
	for i := 0; i < need; i += bpp {
		px := pixel{data[i], data[i+1], data[i+2], 0xFF}
		if bpp == 4 {
			px[3] = data[i+3]
		}

		if px == prev {
			run++
			if run == maxRun {
				out = append(out, opRun|byte(run-1))
				run = 0
			}
			continue
		}
		if run > 0 {
			out = append(out, opRun|byte(run-1))
			run = 0
		}

		// Branch order is fixed: index, diff, luma, rgb, rgba. The first
		// match wins so output is reproducible byte-for-byte.
		slot := cacheIndex(px)
		if cache[slot] == px {
			out = append(out, opIndex|byte(slot))
			prev = px
			continue
		}

		if px[3] == prev[3] {
			dr := int8(px[0] - prev[0])
			dg := int8(px[1] - prev[1])
			db := int8(px[2] - prev[2])
			dgr := dr - dg
			dgb := db - dg
			switch {
			case dr >= -2 && dr <= 1 && dg >= -2 && dg <= 1 && db >= -2 && db <= 1:
				out = append(out, opDiff|byte(dr+2)<<4|byte(dg+2)<<2|byte(db+2))
			case dg >= -32 && dg <= 31 && dgr >= -8 && dgr <= 7 && dgb >= -8 && dgb <= 7:
				out = append(out, opLuma|byte(dg+32), byte(dgr+8)<<4|byte(dgb+8))
			default:
				out = append(out, opRGB, px[0], px[1], px[2])
			}
		} else {
			out = append(out, opRGBA, px[0], px[1], px[2], px[3])
		}
		cache[slot] = px
		prev = px
	}
	if run > 0 {
		out = append(out, opRun|byte(run-1))
	}

	out = append(out, trailer[:]...)
	return out, nil
}
