package enums

import "strings"

// SpellType - идентификатор заклинания. SpellNone означает пустой слот посоха.
type SpellType uint8

const (
	SpellNone SpellType = iota
	SpellMagicBolt
	SpellPurpleBolt
	SpellSlimeCharge
	SpellHeal
	SpellBulletSpeedUp
	SpellBulletSpeedDown
	SpellDualCast
	SpellTripleCast
)

// AllSpells перечисляет все реальные заклинания (без SpellNone).
// Каталог обязан содержать запись для каждого из них.
var AllSpells = []SpellType{
	SpellMagicBolt,
	SpellPurpleBolt,
	SpellSlimeCharge,
	SpellHeal,
	SpellBulletSpeedUp,
	SpellBulletSpeedDown,
	SpellDualCast,
	SpellTripleCast,
}

var spellTypeToString = map[SpellType]string{
	SpellNone:            "NONE",
	SpellMagicBolt:       "MAGIC_BOLT",
	SpellPurpleBolt:      "PURPLE_BOLT",
	SpellSlimeCharge:     "SLIME_CHARGE",
	SpellHeal:            "HEAL",
	SpellBulletSpeedUp:   "BULLET_SPEED_UP",
	SpellBulletSpeedDown: "BULLET_SPEED_DOWN",
	SpellDualCast:        "DUAL_CAST",
	SpellTripleCast:      "TRIPLE_CAST",
}

var spellTypeStringToType = map[string]SpellType{
	"NONE":              SpellNone,
	"MAGIC_BOLT":        SpellMagicBolt,
	"PURPLE_BOLT":       SpellPurpleBolt,
	"SLIME_CHARGE":      SpellSlimeCharge,
	"HEAL":              SpellHeal,
	"BULLET_SPEED_UP":   SpellBulletSpeedUp,
	"BULLET_SPEED_DOWN": SpellBulletSpeedDown,
	"DUAL_CAST":         SpellDualCast,
	"TRIPLE_CAST":       SpellTripleCast,
}

func (s SpellType) String() string {
	if val, ok := spellTypeToString[s]; ok {
		return val
	}
	return "UNKNOWN"
}

func (s SpellType) IsNone() bool { return s == SpellNone }

func ParseSpellType(s string) SpellType {
	if val, ok := spellTypeStringToType[strings.ToUpper(s)]; ok {
		return val
	}
	return SpellNone
}

func (s SpellType) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *SpellType) UnmarshalText(text []byte) error {
	*s = ParseSpellType(string(text))
	return nil
}
