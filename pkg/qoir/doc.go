// Package qoir implements a lossless raster image codec over a fixed wire
// format: a 14-byte big-endian header, a variable-length opcode stream, and
// an 8-byte trailer.
//
// The opcode stream compresses pixels in raster order against a shared
// predictive state: a 64-slot color cache addressed by a byte hash, the
// previously resolved pixel, and a run counter. Encoder and decoder update
// that state identically, which is what makes decoding byte-exact.
//
// Most callers want Decode and Encode on raw pixel buffers, or DecodeImage
// and EncodeImage for image.Image interop. DecodePixelConfiguration peeks at
// a frame's dimensions and format without decoding pixels.
package qoir
