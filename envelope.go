package blockenv

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Options define envelope specific options.
type Options struct {
	// Transform is the inner block compressor.
	// Default: SnappyTransform.
	Transform Transform

	// BlockSize is the block geometry passed to the transform.
	// Default: 64.
	BlockSize uint32

	// SuperblockSize is the superblock geometry passed to the transform.
	// Default: 65536.
	SuperblockSize uint32

	// InnerParam is the transform-specific tuning parameter.
	// Default: 16.
	InnerParam uint32

	// Observer receives trace events.
	// Default: discard.
	Observer Observer
}

func (o *Options) norm() *Options {
	var oo Options
	if o != nil {
		oo = *o
	}

	if oo.Transform == nil {
		oo.Transform = SnappyTransform{}
	}
	if oo.BlockSize < 1 {
		oo.BlockSize = DefaultBlockSize
	}
	if oo.SuperblockSize < 1 {
		oo.SuperblockSize = DefaultSuperblockSize
	}
	if oo.InnerParam < 1 {
		oo.InnerParam = DefaultInnerParam
	}
	if oo.Observer == nil {
		oo.Observer = nopObserver{}
	}

	return &oo
}

func (o *Options) params() Params {
	return Params{
		BlockSize:      o.BlockSize,
		SuperblockSize: o.SuperblockSize,
		InnerParam:     o.InnerParam,
	}
}

// Envelope encodes raw buffers into self-describing compressed
// containers and reconstructs them. It is stateless and reentrant:
// concurrent calls on independent inputs share nothing, and each call
// owns its scratch buffers exclusively.
type Envelope struct {
	o *Options
}

// New returns an Envelope. Options may be nil.
func New(o *Options) *Envelope {
	return &Envelope{o: o.norm()}
}

// Encode compresses raw into a container. It returns ErrTooSmall for
// inputs below MinInputLen, ErrTooLarge for inputs above MaxOriginLen
// and ErrNotEffective when the compressed form would not be strictly
// smaller than the input; on any of these the caller must store the
// raw bytes unmodified, since the container format cannot represent
// an uncompressed block.
func (e *Envelope) Encode(raw []byte) ([]byte, error) {
	originLen := len(raw)
	if originLen < MinInputLen {
		e.o.Observer.Rejected(originLen, ErrTooSmall)
		return nil, ErrTooSmall
	}
	// Decode refuses containers declaring more than MaxOriginLen, and
	// the header cannot represent lengths beyond 32 bits; such inputs
	// must never be framed in the first place.
	if originLen > MaxOriginLen {
		e.o.Observer.Rejected(originLen, ErrTooLarge)
		return nil, ErrTooLarge
	}

	// Worst-case headroom: the transform may expand incompressible
	// input and must never have to grow the buffer mid-call.
	maxOut := originLen + originLen/5 + encodeSlack
	out := NewAlignedBuffer(maxOut)
	defer out.Release()

	compressedLen := e.o.Transform.CompressBlock(out.Bytes()[:maxOut], raw, e.o.params())
	if !effective(originLen, compressedLen) {
		e.o.Observer.Rejected(originLen, ErrNotEffective)
		return nil, ErrNotEffective
	}

	container := make([]byte, headerLen+compressedLen)
	binary.LittleEndian.PutUint32(container, uint32(originLen))
	copy(container[headerLen:], out.Bytes()[:compressedLen])

	e.o.Observer.Encoded(originLen, compressedLen)
	return container, nil
}

// Decode validates a container and reconstructs the original buffer.
// Malformed input fails with an error wrapping ErrCorrupt.
func (e *Envelope) Decode(container []byte) ([]byte, error) {
	return e.DecodeChunk(bytes.NewReader(container), len(container))
}

// DecodeChunk decodes one container read from src. containerLen is the
// container's total length as recorded by the storage layer; src may
// hold fewer bytes than that, in which case the container is truncated
// and the decode fails before any buffer is allocated.
func (e *Envelope) DecodeChunk(src ByteStream, containerLen int) ([]byte, error) {
	bounds, err := validateBounds(src, containerLen)
	if err != nil {
		e.o.Observer.Corrupt(err)
		return nil, err
	}

	in := NewAlignedBuffer(bounds.payloadLen)
	defer in.Release()

	if _, err := io.ReadFull(src, in.Bytes()[:bounds.payloadLen]); err != nil {
		e.o.Observer.Corrupt(errTruncated)
		return nil, errTruncated
	}

	out := NewAlignedBuffer(int(bounds.originLen))
	defer out.Release()

	err = e.o.Transform.DecompressBlock(
		out.Bytes()[:bounds.originLen],
		in.Bytes()[:bounds.payloadLen],
		e.o.params(),
	)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrCorrupt, err)
		e.o.Observer.Corrupt(err)
		return nil, err
	}

	raw := make([]byte, bounds.originLen)
	copy(raw, out.Bytes())

	e.o.Observer.Decoded(bounds.payloadLen, int(bounds.originLen))
	return raw, nil
}

// OriginLen reports the original buffer length a container declares,
// without decoding it. Storage layers use it to size their reads.
func OriginLen(container []byte) (uint32, error) {
	if len(container) <= headerLen {
		return 0, errNoPayload
	}
	return binary.LittleEndian.Uint32(container), nil
}
