package enums

import "strings"

// TileKind - вид клетки сетки уровня. Определяется цветом пикселя при декодировании.
type TileKind uint8

const (
	TileBlank TileKind = iota // пустота за пределами комнаты, не проходима
	TileFloor                 // каменный пол
	TileWall
)

var tileKindToString = map[TileKind]string{
	TileBlank: "BLANK",
	TileFloor: "FLOOR",
	TileWall:  "WALL",
}

var tileKindStringToType = map[string]TileKind{
	"BLANK": TileBlank,
	"FLOOR": TileFloor,
	"WALL":  TileWall,
}

func (t TileKind) String() string {
	if val, ok := tileKindToString[t]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseTileKind разбирает имя из палитры. Неизвестное имя - Blank.
func ParseTileKind(s string) TileKind {
	if val, ok := tileKindStringToType[strings.ToUpper(s)]; ok {
		return val
	}
	return TileBlank
}

// MarshalText нужен для ключей и значений в JSON/YAML (палитра, дебаг-ручки).
func (t TileKind) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TileKind) UnmarshalText(text []byte) error {
	*t = ParseTileKind(string(text))
	return nil
}
