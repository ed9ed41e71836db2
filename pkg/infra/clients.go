package infra

import (
	"github.com/m-mizutani/bzsweep/pkg/domain/interfaces"
	"github.com/m-mizutani/bzsweep/pkg/infra/bz2"
)

type Clients struct {
	decompressor interfaces.Decompressor
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		decompressor: bz2.New(),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) Decompressor() interfaces.Decompressor {
	return x.decompressor
}

func WithDecompressor(d interfaces.Decompressor) Option {
	return func(x *Clients) {
		x.decompressor = d
	}
}
