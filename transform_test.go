package blockenv_test

import (
	"bytes"
	"math/rand"

	"github.com/bsm/blockenv"
	"github.com/klauspost/compress/zstd"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Transform", func() {
	var params blockenv.Params

	roundTrip := func(tf blockenv.Transform, src []byte) []byte {
		dst := make([]byte, len(src)+len(src)/5+2048)
		n := tf.CompressBlock(dst, src, params)
		Expect(n).To(BeNumerically(">", 0))
		Expect(n).To(BeNumerically("<", len(src)))

		out := make([]byte, len(src))
		Expect(tf.DecompressBlock(out, dst[:n], params)).To(Succeed())
		return out
	}

	It("should round-trip snappy blocks", func() {
		src := bytes.Repeat([]byte("snappy-block-data"), 1024)
		Expect(bytes.Equal(roundTrip(blockenv.SnappyTransform{}, src), src)).To(BeTrue())
	})

	It("should round-trip lz4 blocks", func() {
		src := bytes.Repeat([]byte("lz4-block-data"), 1024)
		Expect(bytes.Equal(roundTrip(blockenv.LZ4Transform{}, src), src)).To(BeTrue())
	})

	It("should round-trip zstd blocks", func() {
		tf, err := blockenv.NewZstdTransform(zstd.SpeedDefault)
		Expect(err).NotTo(HaveOccurred())

		src := bytes.Repeat([]byte("zstd-block-data"), 1024)
		Expect(bytes.Equal(roundTrip(tf, src), src)).To(BeTrue())
	})

	It("should signal incompressible input via lz4", func() {
		src := make([]byte, 64*1024)
		rnd := rand.New(rand.NewSource(1))
		_, err := rnd.Read(src)
		Expect(err).NotTo(HaveOccurred())

		dst := make([]byte, len(src))
		Expect(blockenv.LZ4Transform{}.CompressBlock(dst, src, params)).To(Equal(0))
	})

	It("should reject payloads that decode to the wrong length", func() {
		src := bytes.Repeat([]byte("snappy-block-data"), 1024)
		dst := make([]byte, len(src)+2048)
		n := blockenv.SnappyTransform{}.CompressBlock(dst, src, params)
		Expect(n).To(BeNumerically(">", 0))

		short := make([]byte, len(src)-1)
		Expect(blockenv.SnappyTransform{}.DecompressBlock(short, dst[:n], params)).To(HaveOccurred())
	})
})
