package blockenv

// Params carry the block geometry handed to the inner transform on
// every call. The envelope passes them through verbatim and never
// interprets them; transforms that have no use for them ignore them.
type Params struct {
	BlockSize      uint32
	SuperblockSize uint32
	InnerParam     uint32
}

// Transform is the inner block compressor an Envelope delegates to.
// Implementations must be deterministic, hold no per-call state and
// be safe for concurrent use.
type Transform interface {
	// CompressBlock compresses src into dst and returns the number of
	// bytes written. Returning 0 signals that the input could not or
	// should not be compressed; the envelope then rejects the attempt
	// and the caller stores the raw bytes. dst is sized with
	// worst-case headroom and aligned to a 256-byte boundary.
	CompressBlock(dst, src []byte, p Params) int

	// DecompressBlock reconstructs exactly len(dst) bytes from src.
	// dst is zero-filled and aligned to a 256-byte boundary; len(dst)
	// is the origin length the container declared. Any error is
	// treated as fatal for the decode and surfaced as a corrupt
	// container.
	DecompressBlock(dst, src []byte, p Params) error
}
