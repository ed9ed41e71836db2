package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption = goerr.New("invalid option")

	// ErrAccess is a filesystem access failure: root missing or unreadable, or output not writable.
	ErrAccess = goerr.New("filesystem access error")

	// ErrCorruptArchive means the decoder rejected the compressed stream.
	ErrCorruptArchive = goerr.New("corrupt archive")

	ErrEntryFailed = goerr.New("some archives failed to decompress")
)
