package actions

import "github.com/aratama/magiacircle/internal/engine/handlers"

func HandleWait(ctx handlers.Context) (handlers.Result, error) {
	return handlers.EmptyResult(), nil
}
