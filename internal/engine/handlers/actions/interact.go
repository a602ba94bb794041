package actions

import (
	"fmt"

	"github.com/aratama/magiacircle/internal/core/types"
	"github.com/aratama/magiacircle/internal/domain"
	"github.com/aratama/magiacircle/internal/engine/handlers"
	"github.com/aratama/magiacircle/internal/engine/handlers/events"
	"github.com/aratama/magiacircle/internal/systems"
	"github.com/aratama/magiacircle/pkg/api"
)

func HandleInteract(ctx handlers.Context, p api.EntityPayload) (handlers.Result, error) {
	id, err := types.ParseEntityID(p.TargetID)
	if err != nil {
		return handlers.EmptyResult(), err
	}

	// 1. Поиск цели взаимодействия
	target := ctx.World.GetEntity(id)
	if target == nil {
		return handlers.ErrorResult("Вы не видите, с чем взаимодействовать."), nil
	}

	// 2. Проверка дистанции
	if ctx.Actor.Pos.DistanceTo(target.Pos) > domain.InteractRange {
		return handlers.ErrorResult("Нужно подойти ближе."), nil
	}

	// 3. Реакция цели
	switch {
	case target.MagicCircle != nil:
		if target.MagicCircle.Broken {
			return handlers.Result{Msg: "Круг разрушен и не отвечает.", MsgType: "INFO"}, nil
		}
		next := ctx.World.Current.Next()
		if target.MagicCircle.Destination == domain.DestinationArena {
			next = domain.MultiPlayArena()
		}
		return handlers.Result{
			Msg:     fmt.Sprintf("%s ступает в магический круг...", ctx.Actor.Name),
			MsgType: "INFO",
			Event:   events.NewLevelTransition(next),
		}, nil

	case target.Chest != nil:
		msg := systems.PayLoot(ctx.Actor, target)
		ctx.World.Despawn(target.ID)
		if msg == "" {
			msg = fmt.Sprintf("%s пуст.", target.Name)
		}
		return handlers.Result{Msg: msg, MsgType: "INFO"}, nil

	case target.Dropped != nil:
		if ctx.Actor.Player == nil || !ctx.Actor.Player.Inventory.Insert(target.Dropped.Item) {
			return handlers.ErrorResult("Инвентарь полон."), nil
		}
		ctx.World.Despawn(target.ID)
		return handlers.Result{Msg: fmt.Sprintf("%s подбирает %s.", ctx.Actor.Name, target.Name), MsgType: "INFO"}, nil
	}

	return handlers.Result{Msg: fmt.Sprintf("Ничего не происходит при взаимодействии с %s.", target.Name), MsgType: "INFO"}, nil
}
