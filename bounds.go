package blockenv

import (
	"encoding/binary"
	"io"
)

// ByteStream is the view of an input stream the decode path requires:
// sequential reads plus the number of bytes still unread. It is
// satisfied by *bytes.Reader and *bytes.Buffer.
type ByteStream interface {
	io.Reader
	Len() int
}

// containerBounds is the validated shape of an encoded container.
type containerBounds struct {
	originLen  uint32 // declared length of the reconstructed buffer
	payloadLen int    // compressed payload bytes following the header
}

// validateBounds runs the pre-flight checks on an encoded container,
// strictly in order and without allocating: overall length, header
// parse, declared-size ceiling, remaining payload bytes. A crafted
// container must not be able to force an attacker-sized allocation,
// so nothing is allocated until every check has passed. The 4-byte
// header is consumed from src on success.
func validateBounds(src ByteStream, containerLen int) (containerBounds, error) {
	if containerLen <= headerLen {
		return containerBounds{}, errNoPayload
	}

	var hdr [headerLen]byte
	if _, err := io.ReadFull(src, hdr[:]); err != nil {
		return containerBounds{}, errBadHeader
	}
	originLen := binary.LittleEndian.Uint32(hdr[:])

	if originLen > MaxOriginLen {
		return containerBounds{}, errSizeCeiling
	}

	payloadLen := containerLen - headerLen
	if src.Len() < payloadLen {
		return containerBounds{}, errTruncated
	}

	return containerBounds{originLen: originLen, payloadLen: payloadLen}, nil
}
