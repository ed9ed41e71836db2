package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . Decompressor

import (
	"io"
)

// Decompressor turns a compressed stream into its decompressed bytes.
type Decompressor interface {
	NewReader(r io.Reader) (io.Reader, error)
}
