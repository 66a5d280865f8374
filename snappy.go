package blockenv

import (
	"fmt"

	"github.com/golang/snappy"
)

// SnappyTransform compresses blocks with the snappy codec. It is the
// default transform of an Envelope.
type SnappyTransform struct{}

// CompressBlock implements Transform.
func (SnappyTransform) CompressBlock(dst, src []byte, _ Params) int {
	if snappy.MaxEncodedLen(len(src)) > len(dst) {
		return 0
	}
	return len(snappy.Encode(dst, src))
}

// DecompressBlock implements Transform.
func (SnappyTransform) DecompressBlock(dst, src []byte, _ Params) error {
	out, err := snappy.Decode(dst, src)
	if err != nil {
		return err
	}
	if len(out) != len(dst) || (len(out) > 0 && &out[0] != &dst[0]) {
		return fmt.Errorf("blockenv: snappy decoded %d bytes, expected %d", len(out), len(dst))
	}
	return nil
}
