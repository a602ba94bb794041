package actions

import (
	"fmt"

	"github.com/aratama/magiacircle/internal/engine/handlers"
	"github.com/aratama/magiacircle/internal/systems"
	"github.com/aratama/magiacircle/pkg/api"
)

func HandleMove(ctx handlers.Context, p api.DirectionPayload) (handlers.Result, error) {
	res := systems.CalculateMove(ctx.Actor, p.Dx, p.Dy, ctx.World)

	if res.HasMoved {
		systems.ApplyMove(ctx.Actor, res)
		return handlers.EmptyResult(), nil
	}
	if res.BlockedBy != nil {
		return handlers.ErrorResult(fmt.Sprintf("Путь прегражден: %s.", res.BlockedBy.Name)), nil
	}
	return handlers.ErrorResult("Путь прегражден."), nil
}
