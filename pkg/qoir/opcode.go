package qoir

// Opcode tags for the compressed pixel stream. opRGB and opRGBA occupy a
// full byte; the rest use the top two bits with a 6-bit payload. The RUN
// payload is capped at 61 so the 0xFE/0xFF literal markers stay unambiguous.
const (
	opIndex = 0x00
	opDiff  = 0x40
	opLuma  = 0x80
	opRun   = 0xC0
	opRGB   = 0xFE
	opRGBA  = 0xFF

	// maxRun is the longest run one opcode can carry: the stored 6-bit
	// value is run-1, so values 0..61 cover runs of 1..62 pixels.
	maxRun = 62
)

const (
	magic       = "qoif"
	headerSize  = 14
	trailerSize = 8
)

// trailer is the fixed end-of-stream marker; never interpreted as opcodes.
var trailer = [trailerSize]byte{0, 0, 0, 0, 0, 0, 0, 1}

// pixel holds one pixel's channels in R, G, B, A order regardless of the
// surrounding buffer format.
type pixel [4]byte

// colorCache is the 64-slot direct-mapped table of recently seen pixels.
// Encoder and decoder must update it identically or every pixel after the
// first divergence is corrupted.
type colorCache [64]pixel

func cacheIndex(p pixel) int {
	return int(3*uint32(p[0])+5*uint32(p[1])+7*uint32(p[2])+11*uint32(p[3])) & 63
}
