package blockenv

// Observer receives envelope trace events. All methods are invoked
// synchronously from Encode and Decode; implementations must be safe
// for concurrent use and should return quickly. The default observer
// discards everything.
type Observer interface {
	// Encoded is called after a successful encode.
	Encoded(originLen, compressedLen int)

	// Rejected is called when an encode attempt is not kept. The
	// reason is ErrTooSmall, ErrTooLarge or ErrNotEffective.
	Rejected(originLen int, reason error)

	// Decoded is called after a successful decode.
	Decoded(compressedLen, originLen int)

	// Corrupt is called when a container fails validation or the
	// transform rejects its payload.
	Corrupt(err error)
}

type nopObserver struct{}

func (nopObserver) Encoded(int, int)    {}
func (nopObserver) Rejected(int, error) {}
func (nopObserver) Decoded(int, int)    {}
func (nopObserver) Corrupt(error)       {}
