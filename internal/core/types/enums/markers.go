package enums

import "strings"

// GameEntity - маркер сущности, нарисованный цветным пикселем на карте уровня.
// Клетка с маркером остается полом, маркер записывается отдельно по координатам.
type GameEntity uint8

const (
	MarkerUnknown GameEntity = iota
	MarkerBookShelf
	MarkerChest
	MarkerCrate
	MarkerMagicCircle
	MarkerMultiPlayArenaMagicCircle
	MarkerBrokenMagicCircle
	MarkerStoneLantern
	MarkerUsage  // надпись-подсказка на полу
	MarkerRoutes // нарисованные маршруты
	MarkerSpell  // выпавшее заклинание
	MarkerWand   // выпавший посох
)

var gameEntityToString = map[GameEntity]string{
	MarkerBookShelf:                 "BOOK_SHELF",
	MarkerChest:                     "CHEST",
	MarkerCrate:                     "CRATE",
	MarkerMagicCircle:               "MAGIC_CIRCLE",
	MarkerMultiPlayArenaMagicCircle: "ARENA_MAGIC_CIRCLE",
	MarkerBrokenMagicCircle:         "BROKEN_MAGIC_CIRCLE",
	MarkerStoneLantern:              "STONE_LANTERN",
	MarkerUsage:                     "USAGE",
	MarkerRoutes:                    "ROUTES",
	MarkerSpell:                     "SPELL",
	MarkerWand:                      "WAND",
}

var gameEntityStringToType = map[string]GameEntity{
	"BOOK_SHELF":          MarkerBookShelf,
	"CHEST":               MarkerChest,
	"CRATE":               MarkerCrate,
	"MAGIC_CIRCLE":        MarkerMagicCircle,
	"ARENA_MAGIC_CIRCLE":  MarkerMultiPlayArenaMagicCircle,
	"BROKEN_MAGIC_CIRCLE": MarkerBrokenMagicCircle,
	"STONE_LANTERN":       MarkerStoneLantern,
	"USAGE":               MarkerUsage,
	"ROUTES":              MarkerRoutes,
	"SPELL":               MarkerSpell,
	"WAND":                MarkerWand,
}

func (g GameEntity) String() string {
	if val, ok := gameEntityToString[g]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseGameEntity используется палитрой из YAML. Неизвестные имена дают MarkerUnknown,
// который спавнер молча пропускает.
func ParseGameEntity(s string) GameEntity {
	if val, ok := gameEntityStringToType[strings.ToUpper(s)]; ok {
		return val
	}
	return MarkerUnknown
}

func (g GameEntity) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

func (g *GameEntity) UnmarshalText(text []byte) error {
	*g = ParseGameEntity(string(text))
	return nil
}
