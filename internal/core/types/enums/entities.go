package enums

import "strings"

// EntityKind - вид сущности в арене мира. Кладется в биты Kind у EntityID.
type EntityKind uint8

const (
	EntityUnknown EntityKind = iota
	EntityTile
	EntityWallCollider
	EntityRoof
	EntityPlayer
	EntityEnemy
	EntityChest
	EntityBookShelf
	EntityStoneLantern
	EntityLight
	EntityMagicCircle
	EntityBrokenMagicCircle
	EntityPaint
	EntityDroppedItem
	EntityBullet
)

var entityKindToString = map[EntityKind]string{
	EntityTile:              "TILE",
	EntityWallCollider:      "WALL_COLLIDER",
	EntityRoof:              "ROOF",
	EntityPlayer:            "PLAYER",
	EntityEnemy:             "ENEMY",
	EntityChest:             "CHEST",
	EntityBookShelf:         "BOOK_SHELF",
	EntityStoneLantern:      "STONE_LANTERN",
	EntityLight:             "LIGHT",
	EntityMagicCircle:       "MAGIC_CIRCLE",
	EntityBrokenMagicCircle: "BROKEN_MAGIC_CIRCLE",
	EntityPaint:             "PAINT",
	EntityDroppedItem:       "DROPPED_ITEM",
	EntityBullet:            "BULLET",
}

var entityKindStringToType = map[string]EntityKind{
	"TILE":                EntityTile,
	"WALL_COLLIDER":       EntityWallCollider,
	"ROOF":                EntityRoof,
	"PLAYER":              EntityPlayer,
	"ENEMY":               EntityEnemy,
	"CHEST":               EntityChest,
	"BOOK_SHELF":          EntityBookShelf,
	"STONE_LANTERN":       EntityStoneLantern,
	"LIGHT":               EntityLight,
	"MAGIC_CIRCLE":        EntityMagicCircle,
	"BROKEN_MAGIC_CIRCLE": EntityBrokenMagicCircle,
	"PAINT":               EntityPaint,
	"DROPPED_ITEM":        EntityDroppedItem,
	"BULLET":              EntityBullet,
}

// String возвращает строковое представление (для логов и дебага)
func (e EntityKind) String() string {
	if val, ok := entityKindToString[e]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseEntityKind конвертирует строку в Enum (фильтр в /debug/entities)
func ParseEntityKind(s string) EntityKind {
	if val, ok := entityKindStringToType[strings.ToUpper(s)]; ok {
		return val
	}
	return EntityUnknown
}

func (e EntityKind) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}
