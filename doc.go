/*
Package blockenv implements a self-describing compression envelope for
data blocks on the value path of a storage engine.

An Envelope delegates the actual compression to a pluggable block
Transform and only frames, validates and buffers around it: on encode
it decides whether a compression attempt is worth keeping, on decode it
hardens the container against truncated or adversarial input before a
single byte is allocated.

Data Structure Documentation

Container

A container is the encoded representation of one compressed block. The
origin length field is fixed-width little-endian; the payload is opaque
to the envelope.

	Container layout:
	+-------------------------+----------------------------------+
	| origin length (4 bytes) |  payload (container length - 4)  |
	+-------------------------+----------------------------------+

The format has no way to represent an uncompressed block. When the
envelope rejects an encode attempt (input too small, or the compressed
form not strictly smaller than the original) the caller must store the
raw bytes through its own framing; see the objstore subpackage for a
store that does exactly that with a record tag byte.

Buffers handed to the Transform are allocated on a 256-byte alignment
boundary and zero-filled, as required by the vectorised access patterns
of block transforms, and are released on every exit path.
*/
package blockenv
