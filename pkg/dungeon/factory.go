package dungeon

import (
	"math/rand"

	"github.com/aratama/magiacircle/internal/core/types/enums"
	"github.com/aratama/magiacircle/internal/domain"
	"github.com/google/uuid"
)

// StarterInventory - стартовый набор заклинаний ведьмы.
func StarterInventory() *domain.Inventory {
	inv := domain.NewInventory(domain.MaxItemsInInventory)
	spells := []enums.SpellType{
		enums.SpellMagicBolt,
		enums.SpellMagicBolt,
		enums.SpellSlimeCharge,
		enums.SpellHeal,
		enums.SpellBulletSpeedUp,
		enums.SpellBulletSpeedUp,
		enums.SpellBulletSpeedUp,
		enums.SpellBulletSpeedDown,
		enums.SpellBulletSpeedDown,
		enums.SpellBulletSpeedDown,
		enums.SpellPurpleBolt,
		enums.SpellDualCast,
		enums.SpellTripleCast,
	}
	for i, s := range spells {
		inv.Set(i, domain.SpellItem(s))
	}
	return inv
}

// CreateWitch создает ведьму со стартовыми характеристиками, инвентарем
// и кипарисовым посохом с одной магической стрелой.
// UUID ведьмы берется из rng, чтобы реплей давал тот же идентификатор.
func CreateWitch(name string, pos domain.Vec2, rng *rand.Rand) *domain.Entity {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		id = uuid.Nil
	}

	actor := domain.NewActor(domain.PlayerLife, domain.PlayerLife, domain.PlayerMana)
	actor.Wands[0] = domain.NewWand(enums.WandCypress, enums.SpellMagicBolt)

	return &domain.Entity{
		Kind: enums.EntityPlayer,
		Name: name,
		Pos:  pos,
		Render: &domain.RenderComponent{
			Slice: "witch",
			Layer: domain.DepthLayer(pos),
		},
		Collider: &domain.ColliderComponent{Shape: domain.ShapeBall, Radius: 5},
		Actor:    actor,
		Player: &domain.PlayerComponent{
			Name:      name,
			UUID:      id.String(),
			Golds:     domain.PlayerGolds,
			Inventory: StarterInventory(),
		},
	}
}
