package spell

import (
	"errors"
	"fmt"

	"github.com/aratama/magiacircle/internal/core/types/enums"
	"github.com/aratama/magiacircle/internal/domain"
)

// ErrMissingProps - для заклинания нет записи в каталоге.
// Это ошибка сборки контента, а не игровая ситуация.
var ErrMissingProps = errors.New("spell props missing")

// noLight - снаряд без собственного света.
var noLight = domain.LightParams{Color: [4]float64{0, 0, 0, 1}}

var catalog = map[enums.SpellType]Props{
	enums.SpellMagicBolt: {
		Name:        "Magic Bolt",
		Description: "A basic attack spell that fires a bolt of magic.",
		ManaDrain:   50,
		CastDelay:   10,
		Icon:        "bullet_magic_bolt",
		Cast: BulletCast{
			Slice:          "bullet_magic_bolt",
			ColliderRadius: 5,
			Speed:          100,
			Lifetime:       240,
			Damage:         8,
			Impulse:        20000,
			Scattering:     0.4,
			Light: domain.LightParams{
				Intensity: 1,
				Radius:    50,
				Color:     [4]float64{245, 1, 0.6, 1},
			},
		},
	},
	enums.SpellPurpleBolt: {
		Name:        "Evil Eye",
		Description: "Fires a slow-moving purple energy bolt. It is weak but consumes little mana.",
		ManaDrain:   10,
		CastDelay:   120,
		Icon:        "bullet_purple",
		Cast: BulletCast{
			Slice:          "bullet_purple",
			ColliderRadius: 5,
			Speed:          50,
			Lifetime:       500,
			Damage:         3,
			Impulse:        0,
			Scattering:     0.6,
			Light:          noLight,
		},
	},
	enums.SpellSlimeCharge: {
		Name:        "Slime Limp",
		Description: "Slap with a soft and squishy lump. It doesn't hurt much, but it blows the opponent away.",
		ManaDrain:   200,
		CastDelay:   30,
		Icon:        "bullet_slime_charge",
		Cast: BulletCast{
			Slice:          "bullet_slime_charge",
			ColliderRadius: 5,
			Speed:          2,
			Lifetime:       5,
			Damage:         1,
			Impulse:        40000,
			Scattering:     0,
			Light:          noLight,
		},
	},
	enums.SpellHeal: {
		Name:        "Heal",
		Description: "Heals a small amount of your own health.",
		ManaDrain:   20,
		CastDelay:   120,
		Icon:        "spell_heal",
		Cast:        HealCast{},
	},
	enums.SpellBulletSpeedUp: {
		Name:        "Speed Up",
		Description: "Increases the speed of the next magic bullet by 50%.",
		ManaDrain:   20,
		Icon:        "bullet_speed_up",
		Cast:        SpeedUpDownCast{Delta: 0.5},
	},
	enums.SpellBulletSpeedDown: {
		Name:        "Speed Down",
		Description: "Reduces the speed of the next magic bullet by 50%.",
		ManaDrain:   20,
		Icon:        "bullet_speed_down",
		Cast:        SpeedUpDownCast{Delta: -0.5},
	},
	enums.SpellDualCast: {
		Name:        "Dual Cast",
		Description: "Casts two spells at the same time.",
		ManaDrain:   20,
		Icon:        "spell_dual_cast",
		Cast:        MultipleCast{Amount: 2},
	},
	enums.SpellTripleCast: {
		Name:        "Triple Cast",
		Description: "Casts three spells at the same time.",
		ManaDrain:   20,
		Icon:        "spell_triple_cast",
		Cast:        MultipleCast{Amount: 3},
	},
}

// Lookup возвращает описание заклинания.
func Lookup(t enums.SpellType) (Props, error) {
	p, ok := catalog[t]
	if !ok {
		return Props{}, fmt.Errorf("%w: %s", ErrMissingProps, t)
	}
	return p, nil
}

// MustLookup - как Lookup, но паникует: отсутствие записи - ошибка программы.
func MustLookup(t enums.SpellType) Props {
	p, err := Lookup(t)
	if err != nil {
		panic(err)
	}
	return p
}

// ValidateCatalog проверяет, что у каждого заклинания есть запись.
// Вызывается при старте сервера.
func ValidateCatalog() error {
	var errs []error
	for _, t := range enums.AllSpells {
		if _, err := Lookup(t); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
