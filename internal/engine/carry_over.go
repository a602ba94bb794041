package engine

import (
	"github.com/aratama/magiacircle/internal/core/types/enums"
	"github.com/aratama/magiacircle/internal/domain"
)

// WitchState - то, что ведьма уносит с собой на следующий уровень.
// Загрузчик всегда создает ведьму по умолчанию, сессия поверх нее
// восстанавливает прежнее состояние.
type WitchState struct {
	Name       string
	UUID       string
	Life       int
	MaxLife    int
	Golds      int
	Inventory  *domain.Inventory
	Wands      [domain.MaxWands]*domain.Wand
	Equipments [domain.MaxItemsInEquipment]enums.EquipmentType
}

// CaptureWitch снимает копию состояния. Копии не делят срезы с оригиналом:
// старая сущность уходит вместе с эпохой.
func CaptureWitch(e *domain.Entity) WitchState {
	s := WitchState{Name: e.Name}
	if e.Actor != nil {
		s.Life = e.Actor.Life
		s.MaxLife = e.Actor.MaxLife
		for i, w := range e.Actor.Wands {
			s.Wands[i] = w.Clone()
		}
	}
	if e.Player != nil {
		s.UUID = e.Player.UUID
		s.Golds = e.Player.Golds
		s.Equipments = e.Player.Equipments
		if e.Player.Inventory != nil {
			s.Inventory = e.Player.Inventory.Clone()
		}
	}
	return s
}

// Apply переносит состояние на свежую ведьму. Мана и перезарядка
// начинаются заново.
func (s WitchState) Apply(e *domain.Entity) {
	e.Name = s.Name
	if e.Actor != nil {
		e.Actor.Life = s.Life
		e.Actor.MaxLife = s.MaxLife
		e.Actor.IsDead = s.Life <= 0
		for i, w := range s.Wands {
			if w != nil {
				w.Delay = 0
			}
			e.Actor.Wands[i] = w
		}
	}
	if e.Player != nil {
		e.Player.Name = s.Name
		e.Player.UUID = s.UUID
		e.Player.Golds = s.Golds
		e.Player.Equipments = s.Equipments
		if s.Inventory != nil {
			e.Player.Inventory = s.Inventory
		}
	}
}
