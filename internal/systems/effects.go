package systems

import (
	"github.com/aratama/magiacircle/internal/core/types/enums"
	"github.com/aratama/magiacircle/internal/domain"
	"github.com/aratama/magiacircle/pkg/logger"
	"github.com/sirupsen/logrus"
)

// BulletVelocity переводит скорость заклинания в пиксели за тик:
// скорость 100 - одна клетка за тик.
func BulletVelocity(angle, speed float64) domain.Vec2 {
	return domain.FromAngle(angle, speed/100*domain.TileSize)
}

// ApplyEffects применяет результат каста к миру.
// SpawnBullet создает снаряд в позиции заклинателя, HealEffect лечит заклинателя.
// Возвращает число созданных снарядов.
func ApplyEffects(w *domain.GameWorld, caster *domain.Entity, effects []domain.Effect) int {
	bullets := 0
	for _, eff := range effects {
		switch e := eff.(type) {
		case domain.SpawnBullet:
			b := &domain.Entity{
				Kind:     enums.EntityBullet,
				Name:     e.Slice,
				Pos:      caster.Pos,
				Render:   &domain.RenderComponent{Slice: e.Slice, Layer: domain.BulletLayerZ},
				Collider: &domain.ColliderComponent{Shape: domain.ShapeBall, Radius: e.ColliderRadius},
				Light:    &domain.LightComponent{LightParams: e.Light},
				Bullet: &domain.BulletComponent{
					Owner:    caster.ID,
					Spell:    e.Spell,
					Velocity: BulletVelocity(e.Angle, e.Speed),
					Lifetime: e.Lifetime,
					Damage:   e.Damage,
					Impulse:  e.Impulse,
				},
			}
			b.Light.Owner = w.Spawn(b)
			bullets++

		case domain.HealEffect:
			if caster.Actor != nil {
				caster.Actor.Heal(e.Amount)
			}

		default:
			logger.For("effects_system").WithField("effect", eff).Warn("Unknown effect skipped.")
		}
	}

	if len(effects) > 0 {
		logger.For("effects_system").WithFields(logrus.Fields{
			"caster":  caster.ID,
			"effects": len(effects),
			"bullets": bullets,
		}).Debug("Effects applied.")
	}
	return bullets
}
