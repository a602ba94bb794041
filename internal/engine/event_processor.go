package engine

import (
	"encoding/json"

	"github.com/aratama/magiacircle/internal/engine/handlers/events"
)

// processEvent - является точкой входа для обработки событий, возвращенных хендлерами.
func (s *Session) processEvent(eventData json.RawMessage) {
	var genericEvent struct {
		Event string `json:"event"`
	}
	if err := json.Unmarshal(eventData, &genericEvent); err != nil {
		s.log.WithError(err).Error("Error parsing event")
		return
	}

	switch genericEvent.Event {
	case events.LevelTransitionEvent:
		s.handleLevelTransition(eventData)
	default:
		s.log.WithField("event", genericEvent.Event).Warn("Unknown event type")
	}
}

// handleLevelTransition ставит запрос в очередь: уровень сменится
// в том же тике, после всех команд.
func (s *Session) handleLevelTransition(eventData json.RawMessage) {
	next, err := events.ParseLevelTransition(eventData)
	if err != nil {
		s.log.WithError(err).Error("Error parsing LEVEL_TRANSITION event")
		return
	}
	s.Requests.Request(next)
	s.log.WithField("level", next).Debug("Level transition requested")
}
