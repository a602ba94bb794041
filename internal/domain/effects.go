package domain

import "github.com/aratama/magiacircle/internal/core/types/enums"

// Effect - результат разрешения каста. Закрытая сумма типов:
// SpawnBullet | HealEffect. Обрабатывается исчерпывающим type switch.
type Effect interface {
	isEffect()
	SpellType() enums.SpellType
}

// SpawnBullet - создать снаряд. Разброс уже применен к Angle.
type SpawnBullet struct {
	Spell          enums.SpellType `json:"spell"`
	Slice          string          `json:"slice"`
	ColliderRadius float64         `json:"colliderRadius"`
	Speed          float64         `json:"speed"`
	Lifetime       int             `json:"lifetime"`
	Damage         int             `json:"damage"`
	Impulse        float64         `json:"impulse"`
	Angle          float64         `json:"angle"`
	Light          LightParams     `json:"light"`
}

// HealEffect - вылечить заклинателя.
type HealEffect struct {
	Spell  enums.SpellType `json:"spell"`
	Amount int             `json:"amount"`
}

func (SpawnBullet) isEffect() {}
func (HealEffect) isEffect() {}

func (b SpawnBullet) SpellType() enums.SpellType { return b.Spell }
func (h HealEffect) SpellType() enums.SpellType { return h.Spell }
