package blockenv

import (
	"fmt"

	"github.com/pierrec/lz4/v4"
)

// LZ4Transform compresses blocks with the LZ4 block format.
type LZ4Transform struct{}

// CompressBlock implements Transform. LZ4 natively reports
// incompressible input by writing nothing, which maps straight onto
// the transform's rejection sentinel.
func (LZ4Transform) CompressBlock(dst, src []byte, _ Params) int {
	var c lz4.Compressor // fresh hash table per call, keeps the transform stateless
	n, err := c.CompressBlock(src, dst)
	if err != nil {
		return 0
	}
	return n
}

// DecompressBlock implements Transform.
func (LZ4Transform) DecompressBlock(dst, src []byte, _ Params) error {
	n, err := lz4.UncompressBlock(src, dst)
	if err != nil {
		return err
	}
	if n != len(dst) {
		return fmt.Errorf("blockenv: lz4 decoded %d bytes, expected %d", n, len(dst))
	}
	return nil
}
