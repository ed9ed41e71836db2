package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/m-mizutani/bzsweep/pkg/domain/model"
)

type UseCase interface {
	SweepArchives(ctx context.Context, input *model.SweepInput) (*model.SweepReport, error)
}
