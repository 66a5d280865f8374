package blockenv

// effective reports whether a compression attempt is worth keeping:
// the transform produced output and that output is strictly smaller
// than the input. Break-even attempts are rejected; any byte saved is
// kept, regardless of how it was paid for in CPU.
func effective(originLen, compressedLen int) bool {
	return compressedLen > 0 && compressedLen < originLen
}
