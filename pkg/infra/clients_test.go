package infra_test

import (
	"testing"

	"github.com/m-mizutani/bzsweep/pkg/domain/mock"
	"github.com/m-mizutani/bzsweep/pkg/infra"
	"github.com/m-mizutani/bzsweep/pkg/infra/bz2"
	"github.com/m-mizutani/gt"
)

func TestNew(t *testing.T) {
	t.Run("default decompressor is bzip2", func(t *testing.T) {
		clients := infra.New()
		_, ok := clients.Decompressor().(*bz2.Client)
		gt.True(t, ok)
	})

	t.Run("WithDecompressor option sets decompressor", func(t *testing.T) {
		mockDecomp := &mock.DecompressorMock{}
		clients := infra.New(infra.WithDecompressor(mockDecomp))
		gt.V(t, clients.Decompressor()).Equal(mockDecomp)
	})
}
