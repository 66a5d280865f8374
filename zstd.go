package blockenv

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// ZstdTransform compresses blocks with zstd. The underlying encoder
// and decoder are created once and shared; EncodeAll and DecodeAll
// are safe for concurrent use.
type ZstdTransform struct {
	enc *zstd.Encoder
	dec *zstd.Decoder
}

// NewZstdTransform returns a zstd transform at the given level.
func NewZstdTransform(level zstd.EncoderLevel) (*ZstdTransform, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(level))
	if err != nil {
		return nil, err
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	return &ZstdTransform{enc: enc, dec: dec}, nil
}

// CompressBlock implements Transform.
func (t *ZstdTransform) CompressBlock(dst, src []byte, _ Params) int {
	out := t.enc.EncodeAll(src, dst[:0])
	if len(out) == 0 || len(out) > len(dst) {
		return 0
	}
	if &out[0] != &dst[0] {
		copy(dst, out)
	}
	return len(out)
}

// DecompressBlock implements Transform.
func (t *ZstdTransform) DecompressBlock(dst, src []byte, _ Params) error {
	out, err := t.dec.DecodeAll(src, dst[:0])
	if err != nil {
		return err
	}
	if len(out) != len(dst) {
		return fmt.Errorf("blockenv: zstd decoded %d bytes, expected %d", len(out), len(dst))
	}
	if &out[0] != &dst[0] {
		copy(dst, out)
	}
	return nil
}
