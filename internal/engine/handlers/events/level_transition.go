package events

import (
	"encoding/json"
	"fmt"

	"github.com/aratama/magiacircle/internal/domain"
)

// LevelTransitionEvent - имя события смены уровня.
const LevelTransitionEvent = "LEVEL_TRANSITION"

// LevelTransition - событие, которое хендлер возвращает движку
// при активации магического круга.
type LevelTransition struct {
	Event string           `json:"event"`
	Next  domain.NextLevel `json:"next"`
}

// NewLevelTransition упаковывает запрос уровня в событие.
func NewLevelTransition(next domain.NextLevel) json.RawMessage {
	data, _ := json.Marshal(LevelTransition{Event: LevelTransitionEvent, Next: next})
	return data
}

// ParseLevelTransition разбирает событие обратно.
func ParseLevelTransition(raw json.RawMessage) (domain.NextLevel, error) {
	var e LevelTransition
	if err := json.Unmarshal(raw, &e); err != nil {
		return domain.NextLevel{}, fmt.Errorf("parse %s: %w", LevelTransitionEvent, err)
	}
	if e.Event != LevelTransitionEvent {
		return domain.NextLevel{}, fmt.Errorf("unexpected event %q", e.Event)
	}
	return e.Next, nil
}
