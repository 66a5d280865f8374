package blockenv

import (
	"errors"
	"fmt"
)

const (
	// MinInputLen is the smallest input Encode will attempt to compress.
	// Below it the container overhead cannot be amortised.
	MinInputLen = 64

	// MaxOriginLen is the largest original length a container may declare.
	// Decode fails before any allocation when it is exceeded.
	MaxOriginLen = 100 * 1024 * 1024

	// Default block geometry passed to the inner transform.
	DefaultBlockSize      = 64
	DefaultSuperblockSize = 65536
	DefaultInnerParam     = 16
)

const (
	headerLen   = 4    // fixed-width origin length prefix
	encodeSlack = 2048 // constant headroom on top of the worst-case expansion
)

// Recoverable encode rejections. Callers must store the raw buffer
// unmodified when any of these is returned.
var (
	ErrTooSmall     = errors.New("blockenv: input below minimum block size")
	ErrTooLarge     = errors.New("blockenv: input above maximum block size")
	ErrNotEffective = errors.New("blockenv: compressed size not smaller than original")
)

// ErrCorrupt is returned by Decode when a container fails validation.
// The returned error wraps ErrCorrupt with the specific check that
// failed; use errors.Is to detect it.
var ErrCorrupt = errors.New("blockenv: corrupt container")

var (
	errNoPayload   = fmt.Errorf("%w: no payload", ErrCorrupt)
	errBadHeader   = fmt.Errorf("%w: bad header", ErrCorrupt)
	errSizeCeiling = fmt.Errorf("%w: declared size implausible", ErrCorrupt)
	errTruncated   = fmt.Errorf("%w: truncated payload", ErrCorrupt)
)
