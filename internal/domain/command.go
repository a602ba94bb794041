package domain

import (
	"encoding/json"

	"github.com/aratama/magiacircle/internal/core/types"
)

// InternalCommand - оптимизированная команда для движка.
// Использует ActionType вместо string.
type InternalCommand struct {
	Action  ActionType      // Число! Быстро и безопасно.
	Token   types.EntityID  // ID сущности (Actor)
	Payload json.RawMessage // Сырые данные (парсятся хендлером)
}
