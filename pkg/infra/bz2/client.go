package bz2

import (
	"compress/bzip2"
	"errors"
	"io"

	"github.com/m-mizutani/bzsweep/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Client decodes bzip2 streams, including concatenated multi-stream files.
type Client struct{}

func New() *Client {
	return &Client{}
}

func (x *Client) NewReader(r io.Reader) (io.Reader, error) {
	return &reader{r: bzip2.NewReader(r)}, nil
}

// errTrailingData is what the decoder reports when bytes after a finished stream do not start a new one.
const errTrailingData = bzip2.StructuralError("bad magic value in continuation file")

// reader tags decoder failures as ErrCorruptArchive and ends the stream at trailing non-bzip2 bytes.
type reader struct {
	r    io.Reader
	done bool
}

func (x *reader) Read(p []byte) (int, error) {
	if x.done {
		return 0, io.EOF
	}

	n, err := x.r.Read(p)
	if err == nil || err == io.EOF {
		return n, err
	}

	var se bzip2.StructuralError
	if errors.As(err, &se) && se == errTrailingData {
		x.done = true
		return n, io.EOF
	}
	if errors.As(err, &se) || errors.Is(err, io.ErrUnexpectedEOF) {
		return n, goerr.Wrap(types.ErrCorruptArchive, "invalid bzip2 stream", goerr.V("cause", err.Error()))
	}
	return n, err
}
