package systems

import (
	"fmt"

	"github.com/aratama/magiacircle/internal/core/types"
	"github.com/aratama/magiacircle/internal/core/types/enums"
	"github.com/aratama/magiacircle/internal/domain"
	"github.com/aratama/magiacircle/pkg/logger"
	"github.com/sirupsen/logrus"
)

// ApplyDamage наносит урон цели: персонажу (Actor) или разрушаемому объекту.
// attacker может быть nil (снаряд пережил владельца).
// Возвращает сообщение для лога клиента, пустое если урон не прошел.
func ApplyDamage(w *domain.GameWorld, attacker, target *domain.Entity, damage int) string {
	combatLogger := logger.Log.WithFields(logrus.Fields{
		"component":   "combat_system",
		"target_id":   target.ID,
		"target_name": target.Name,
		"damage":      damage,
	})

	switch {
	case target.Actor != nil:
		if target.Actor.IsDead {
			return ""
		}
		lifeBefore := target.Actor.Life
		died := target.Actor.TakeDamage(damage)

		combatLogger.WithFields(logrus.Fields{
			"life_before": lifeBefore,
			"life_after":  target.Actor.Life,
			"died":        died,
		}).Debug("Damage applied.")

		msg := fmt.Sprintf("%s получает %d урона.", target.Name, damage)
		if died {
			msg += fmt.Sprintf(" %s погибает.", target.Name)
			// Ведьма остается лежать, враги исчезают
			if target.Kind != enums.EntityPlayer {
				w.Despawn(target.ID)
			}
		}
		return msg

	case target.Breakable != nil:
		target.Breakable.Life -= damage
		if target.Breakable.Life > 0 {
			return ""
		}

		combatLogger.Debug("Object broken.")
		w.Despawn(target.ID)
		despawnOwnedLights(w, target.ID)

		msg := fmt.Sprintf("%s разрушен.", target.Name)
		if loot := PayLoot(attacker, target); loot != "" {
			msg += " " + loot
		}
		return msg
	}

	combatLogger.Warn("Damage ignored: target has neither actor nor breakable.")
	return ""
}

// PayLoot отдает золото сундука ведьме. Пустая строка - платить некому или нечего.
func PayLoot(receiver, chest *domain.Entity) string {
	if chest.Chest == nil || chest.Chest.Golds == 0 {
		return ""
	}
	if receiver == nil || receiver.Player == nil {
		return ""
	}
	receiver.Player.Golds += chest.Chest.Golds
	msg := fmt.Sprintf("%s находит %d золота.", receiver.Name, chest.Chest.Golds)
	chest.Chest.Golds = 0
	return msg
}

// despawnOwnedLights убирает свет разрушенного фонаря.
func despawnOwnedLights(w *domain.GameWorld, owner types.EntityID) {
	for _, l := range w.EntitiesOf(enums.EntityLight) {
		if l.Light != nil && l.Light.Owner == owner {
			w.Despawn(l.ID)
		}
	}
}
