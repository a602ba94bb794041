package systems

import (
	"math"

	"github.com/aratama/magiacircle/internal/core/types/enums"
	"github.com/aratama/magiacircle/internal/domain"
	"github.com/aratama/magiacircle/pkg/logger"
	"github.com/sirupsen/logrus"
)

// KnockbackScale - сколько единиц импульса дают пиксель отбрасывания.
const KnockbackScale = 5000.0

// StepBullets двигает все снаряды на один тик.
// Снаряд исчезает, когда истекает время жизни, когда путь перекрыт стеной
// или после первого попадания. Владелец снарядом не задевается.
// Возвращает сообщения о попаданиях для лога клиента.
func StepBullets(w *domain.GameWorld) []string {
	var logs []string

	for _, b := range w.EntitiesOf(enums.EntityBullet) {
		bc := b.Bullet

		bc.Lifetime--
		if bc.Lifetime < 0 {
			w.Despawn(b.ID)
			continue
		}

		from := b.Cell()
		b.Pos = b.Pos.Add(bc.Velocity)

		if w.Map != nil {
			if stop, blocked := TraceLine(w.Map, from, b.Cell()); blocked {
				logger.For("bullet_system").WithFields(logrus.Fields{
					"bullet": b.ID,
					"wall":   stop,
				}).Trace("Bullet hit a wall.")
				w.Despawn(b.ID)
				continue
			}
		}

		target := findBulletTarget(w, b)
		if target == nil {
			continue
		}

		knockback(w.Map, target, bc)
		if msg := ApplyDamage(w, w.GetEntity(bc.Owner), target, bc.Damage); msg != "" {
			logs = append(logs, msg)
		}
		w.Despawn(b.ID)
	}

	return logs
}

// findBulletTarget ищет первую по порядку создания цель, которой касается снаряд.
func findBulletTarget(w *domain.GameWorld, b *domain.Entity) *domain.Entity {
	radius := 0.0
	if b.Collider != nil {
		radius = b.Collider.Radius
	}

	for _, e := range w.Entities() {
		if e.ID == b.Bullet.Owner || e.Collider == nil {
			continue
		}
		if e.Actor == nil && e.Breakable == nil {
			continue
		}
		if e.Actor != nil && e.Actor.IsDead {
			continue
		}
		if touches(b.Pos, radius, e) {
			return e
		}
	}
	return nil
}

// touches проверяет пересечение круга снаряда с коллайдером сущности.
func touches(p domain.Vec2, radius float64, e *domain.Entity) bool {
	c := e.Collider
	switch c.Shape {
	case domain.ShapeBall:
		return p.DistanceTo(e.Pos) <= radius+c.Radius
	default:
		dx := math.Max(math.Abs(p.X-e.Pos.X)-c.HalfW, 0)
		dy := math.Max(math.Abs(p.Y-e.Pos.Y)-c.HalfH, 0)
		return math.Hypot(dx, dy) <= radius
	}
}

// knockback отбрасывает персонажа по направлению полета снаряда,
// если клетка назначения проходима.
func knockback(m *domain.LevelTileMap, target *domain.Entity, bc *domain.BulletComponent) {
	if target.Actor == nil || bc.Impulse <= 0 {
		return
	}
	speed := math.Hypot(bc.Velocity.X, bc.Velocity.Y)
	if speed == 0 {
		return
	}

	shift := bc.Velocity.Scale(bc.Impulse / KnockbackScale / speed)
	next := target.Pos.Add(shift)
	if m != nil {
		c := next.Cell()
		if !m.IsWalkable(c.X, c.Y) {
			return
		}
	}
	target.Pos = next
}
