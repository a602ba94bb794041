package actions

import (
	"github.com/aratama/magiacircle/internal/engine/handlers"
	"github.com/aratama/magiacircle/internal/systems"
	"github.com/aratama/magiacircle/pkg/api"
)

// HandleCast нажимает на спуск посоха. Перезарядка и нехватка маны
// не считаются ошибкой: каст просто ничего не создает.
func HandleCast(ctx handlers.Context, p api.CastPayload) (handlers.Result, error) {
	wand := ctx.Actor.Actor.ActiveWand(p.Wand)
	if wand == nil {
		return handlers.ErrorResult("В руке нет посоха."), nil
	}
	ctx.Actor.Actor.CurrentWand = p.Wand

	effects := ctx.Resolver.Trigger(ctx.Actor.Actor, wand, p.Angle)
	systems.ApplyEffects(ctx.World, ctx.Actor, effects)

	return handlers.Result{Effects: effects}, nil
}
