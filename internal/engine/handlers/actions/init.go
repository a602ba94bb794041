package actions

import (
	"fmt"

	"github.com/aratama/magiacircle/internal/engine/handlers"
	"github.com/aratama/magiacircle/pkg/api"
)

// HandleInit - первое сообщение клиента. Имя ведьмы меняется только
// для отображения: UUID и инвентарь остаются прежними.
func HandleInit(ctx handlers.Context, p api.InitPayload) (handlers.Result, error) {
	if p.Name != "" && ctx.Actor.Player != nil {
		ctx.Actor.Name = p.Name
		ctx.Actor.Player.Name = p.Name
	}
	return handlers.Result{
		Msg:     fmt.Sprintf("%s входит в %s.", ctx.Actor.Name, ctx.World.Slice),
		MsgType: "INFO",
	}, nil
}
