package qoir

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
)

// DecodeImage decodes a frame from r into an *image.NRGBA.
func DecodeImage(r io.Reader) (image.Image, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("qoir: read: %w", err)
	}
	buf, err := Decode(src, &DecodeOptions{Format: PixelFormatRGBANonPremul})
	if err != nil {
		return nil, err
	}
	return &image.NRGBA{
		Pix:    buf.Data,
		Stride: buf.Stride,
		Rect:   image.Rect(0, 0, int(buf.Width), int(buf.Height)),
	}, nil
}

// DecodeImageConfig reads only the frame header, for image.DecodeConfig.
func DecodeImageConfig(r io.Reader) (image.Config, error) {
	hdr := make([]byte, headerSize)
	if _, err := io.ReadFull(r, hdr); err != nil {
		return image.Config{}, ErrInvalidData
	}
	cfg, err := DecodePixelConfiguration(hdr)
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: color.NRGBAModel,
		Width:      int(cfg.Width),
		Height:     int(cfg.Height),
	}, nil
}

// EncodeImage encodes img and writes the frame to w. Fully opaque images
// are stored with 3 channels, everything else as non-premultiplied RGBA.
func EncodeImage(w io.Writer, img image.Image) error {
	if img == nil {
		return ErrInvalidArgument
	}
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return ErrInvalidArgument
	}

	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Rect.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, width, height))
		draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)
	}

	buf := &PixelBuffer{
		PixelConfiguration: PixelConfiguration{
			Format: PixelFormatRGBANonPremul,
			Width:  uint32(width),
			Height: uint32(height),
		},
		Data:   nrgba.Pix,
		Stride: nrgba.Stride,
	}
	if nrgba.Stride != 4*width {
		// Repack row by row; the codec itself only takes tight rows.
		buf.Data = make([]byte, 4*width*height)
		for y := 0; y < height; y++ {
			copy(buf.Data[y*4*width:], nrgba.Pix[y*nrgba.Stride:y*nrgba.Stride+4*width])
		}
		buf.Stride = 4 * width
	}
	if nrgba.Opaque() {
		buf = packOpaque(buf)
	}

	frame, err := Encode(buf, nil)
	if err != nil {
		return err
	}
	_, err = w.Write(frame)
	return err
}

// packOpaque drops the constant 0xFF alpha bytes from a tight RGBA buffer.
func packOpaque(src *PixelBuffer) *PixelBuffer {
	dst := NewPixelBuffer(PixelFormatRGB, src.Width, src.Height)
	for s, d := 0, 0; d < len(dst.Data); s, d = s+4, d+3 {
		copy(dst.Data[d:d+3], src.Data[s:s+3])
	}
	return dst
}

func init() {
	image.RegisterFormat("qoir", magic, DecodeImage, DecodeImageConfig)
}
