package handlers

import (
	"encoding/json"
	"math/rand"

	"github.com/aratama/magiacircle/internal/domain"
	"github.com/aratama/magiacircle/internal/systems"
	"github.com/aratama/magiacircle/pkg/dungeon"
)

// Context передает хендлеру состояние мира.
// Мы передаем ссылки, чтобы хендлер мог менять состояние (мутировать данные).
type Context struct {
	World    *domain.GameWorld
	Actor    *domain.Entity // Ведьма, от имени которой выполняется команда
	Resolver *systems.CastResolver
	Spawner  dungeon.Spawner
	Rng      *rand.Rand
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет в логи сессии напрямую, он возвращает данные.
type Result struct {
	Msg     string          // Текст лога
	MsgType string          // Тип лога (INFO, COMBAT, ERROR)
	Effects []domain.Effect // Эффекты каста для снимка
	Event   json.RawMessage // Сырые данные события для обработки движком
}

// HandlerFunc - это контракт для любой команды (MOVE, CAST, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}

// ErrorResult - отказ, который показывается игроку в логе.
func ErrorResult(msg string) Result {
	return Result{Msg: msg, MsgType: "ERROR"}
}
