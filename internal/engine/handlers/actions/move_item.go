package actions

import (
	"errors"

	"github.com/aratama/magiacircle/internal/domain"
	"github.com/aratama/magiacircle/internal/engine/handlers"
	"github.com/aratama/magiacircle/internal/systems"
	"github.com/aratama/magiacircle/pkg/api"
)

func slotRef(p api.SlotPayload) (domain.SlotRef, error) {
	ref := domain.SlotRef{Wand: p.Wand, Index: p.Index}
	err := ref.Area.UnmarshalText([]byte(p.Area))
	return ref, err
}

func HandleMoveItem(ctx handlers.Context, p api.MoveItemPayload) (handlers.Result, error) {
	from, err := slotRef(p.From)
	if err != nil {
		return handlers.EmptyResult(), err
	}
	to, err := slotRef(p.To)
	if err != nil {
		return handlers.EmptyResult(), err
	}

	msg, err := systems.MoveItem(ctx.Actor, from, to, ctx.Spawner)
	switch {
	case errors.Is(err, systems.ErrSlotOccupied):
		return handlers.ErrorResult("Слот занят."), nil
	case errors.Is(err, systems.ErrEmptySource):
		return handlers.ErrorResult("Там ничего нет."), nil
	case err != nil:
		return handlers.ErrorResult("Так переложить нельзя."), nil
	}

	if msg != "" {
		return handlers.Result{Msg: msg, MsgType: "INFO"}, nil
	}
	return handlers.EmptyResult(), nil
}
