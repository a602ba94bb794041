package systems

import (
	"fmt"
	"math"

	"github.com/aratama/magiacircle/internal/core/types/enums"
	"github.com/aratama/magiacircle/internal/domain"
	"github.com/aratama/magiacircle/pkg/logger"
	"github.com/sirupsen/logrus"
)

// EnemyAction - решение врага на текущий шаг.
type EnemyAction struct {
	Dx, Dy int
	Attack bool // ведьма в соседней клетке
}

// ComputeEnemyAction решает, что делать врагу: ждать, идти к ведьме или атаковать.
func ComputeEnemyAction(npc, player *domain.Entity, w *domain.GameWorld) EnemyAction {
	aiLogger := logger.For("ai_system").WithFields(logrus.Fields{
		"npc":  npc.ID,
		"name": npc.Name,
	})

	if npc.Actor == nil || npc.Actor.IsDead || player == nil || player.Actor == nil || player.Actor.IsDead {
		return EnemyAction{}
	}
	if w.Map == nil {
		return EnemyAction{}
	}

	from, to := npc.Cell(), player.Cell()
	dist := math.Hypot(float64(to.X-from.X), float64(to.Y-from.Y))

	// 1. Дальность обзора
	if dist > domain.EnemySightRadius {
		return EnemyAction{}
	}

	// 2. Видимость
	if !HasLineOfSight(w.Map, from, to) {
		aiLogger.Trace("Target not visible.")
		return EnemyAction{}
	}

	// 3. Соседняя клетка (включая диагональ) - атака
	if from.IsAdjacent(to) {
		return EnemyAction{Attack: true}
	}

	// 4. Преследование
	dx, dy := calculateSmartMove(npc, to, w)
	aiLogger.WithFields(logrus.Fields{"dx": dx, "dy": dy}).Trace("Pursuing target.")
	return EnemyAction{Dx: dx, Dy: dy}
}

// calculateSmartMove выбирает шаг к цели: сначала по диагонали,
// затем по приоритетной оси, затем по второй.
func calculateSmartMove(npc *domain.Entity, target domain.Position, w *domain.GameWorld) (int, int) {
	from := npc.Cell()
	dxRaw := target.X - from.X
	dyRaw := target.Y - from.Y

	stepX := sign(dxRaw)
	stepY := sign(dyRaw)

	// Попытка 1: Идеальный путь
	if checkMove(npc, stepX, stepY, w) {
		return stepX, stepY
	}

	// Попытка 2: Smart Sliding (выбор приоритетной оси)
	if abs(dxRaw) > abs(dyRaw) {
		if stepX != 0 && checkMove(npc, stepX, 0, w) {
			return stepX, 0
		}
		if stepY != 0 && checkMove(npc, 0, stepY, w) {
			return 0, stepY
		}
	} else {
		if stepY != 0 && checkMove(npc, 0, stepY, w) {
			return 0, stepY
		}
		if stepX != 0 && checkMove(npc, stepX, 0, w) {
			return stepX, 0
		}
	}

	return 0, 0 // Тупик
}

func checkMove(e *domain.Entity, dx, dy int, w *domain.GameWorld) bool {
	if dx == 0 && dy == 0 {
		return false
	}
	return CalculateMove(e, dx, dy, w).HasMoved
}

// StepEnemies - ход всех врагов. Враги действуют раз в EnemyStepInterval тиков.
// Возвращает сообщения для лога клиента.
func StepEnemies(w *domain.GameWorld) []string {
	if w.Tick%domain.EnemyStepInterval != 0 {
		return nil
	}

	player := w.Player()
	var logs []string

	for _, npc := range w.EntitiesOf(enums.EntityEnemy) {
		action := ComputeEnemyAction(npc, player, w)

		if action.Attack {
			if msg := ApplyDamage(w, npc, player, domain.EnemyContactDamage); msg != "" {
				logs = append(logs, fmt.Sprintf("%s атакует. %s", npc.Name, msg))
			}
			continue
		}
		if action.Dx != 0 || action.Dy != 0 {
			ApplyMove(npc, CalculateMove(npc, action.Dx, action.Dy, w))
		}
	}
	return logs
}
