package domain

import (
	"encoding/json"

	"github.com/aratama/magiacircle/internal/core/types"
)

// ReplayAction - это запись одного действия извне (от игрока)
type ReplayAction struct {
	Tick    int             `json:"tick"`
	Token   types.EntityID  `json:"token"`   // Кто сделал
	Action  ActionType      `json:"action"`  // Что сделал
	Payload json.RawMessage `json:"payload"` // С какими параметрами
}

// ReplaySession - полная запись партии: сид и стартовый уровень
// однозначно восстанавливают мир, действия проигрываются поверх.
type ReplaySession struct {
	Seed       int64          `json:"seed"`
	Level      NextLevel      `json:"level"`
	PlayerName string         `json:"playerName"`
	Timestamp  int64          `json:"timestamp"`
	Actions    []ReplayAction `json:"actions"`
}
