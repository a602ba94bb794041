package dungeon

import (
	"fmt"
	"os"

	"github.com/aratama/magiacircle/internal/core/types"
	"github.com/aratama/magiacircle/internal/core/types/enums"
	"gopkg.in/yaml.v3"
)

// PaletteEntry - что означает цвет пикселя на карте уровня.
// Клетка с маркером или точкой входа остается полом.
type PaletteEntry struct {
	Tile   enums.TileKind   `yaml:"tile"`
	Marker enums.GameEntity `yaml:"marker,omitempty"`
	Entry  bool             `yaml:"entry,omitempty"`
}

// Palette - точное соответствие цвет -> смысл. Неизвестный цвет - Blank.
type Palette map[types.Pixel]PaletteEntry

// Цвета карты по умолчанию
var (
	ColorFloor        = types.MakePixel(0x52, 0x52, 0x52, 0xFF)
	ColorWall         = types.MakePixel(0xDC, 0xDC, 0xDC, 0xFF)
	ColorEntry        = types.MakePixel(0xFF, 0x00, 0x00, 0xFF)
	ColorBookShelf    = types.MakePixel(0x8B, 0x45, 0x13, 0xFF)
	ColorChest        = types.MakePixel(0xFF, 0xFF, 0x00, 0xFF)
	ColorCrate        = types.MakePixel(0xA0, 0x52, 0x2D, 0xFF)
	ColorMagicCircle  = types.MakePixel(0x00, 0x00, 0xFF, 0xFF)
	ColorArenaCircle  = types.MakePixel(0x00, 0xFF, 0xFF, 0xFF)
	ColorBrokenCircle = types.MakePixel(0x00, 0x00, 0x80, 0xFF)
	ColorStoneLantern = types.MakePixel(0xFF, 0xA5, 0x00, 0xFF)
	ColorUsage        = types.MakePixel(0xFF, 0x00, 0xFF, 0xFF)
	ColorRoutes       = types.MakePixel(0x80, 0x00, 0x80, 0xFF)
	ColorSpell        = types.MakePixel(0x00, 0xFF, 0x00, 0xFF)
	ColorWand         = types.MakePixel(0x00, 0x80, 0x00, 0xFF)
)

func marker(m enums.GameEntity) PaletteEntry {
	return PaletteEntry{Tile: enums.TileFloor, Marker: m}
}

// DefaultPalette возвращает новую копию палитры по умолчанию.
func DefaultPalette() Palette {
	return Palette{
		ColorFloor:        {Tile: enums.TileFloor},
		ColorWall:         {Tile: enums.TileWall},
		ColorEntry:        {Tile: enums.TileFloor, Entry: true},
		ColorBookShelf:    marker(enums.MarkerBookShelf),
		ColorChest:        marker(enums.MarkerChest),
		ColorCrate:        marker(enums.MarkerCrate),
		ColorMagicCircle:  marker(enums.MarkerMagicCircle),
		ColorArenaCircle:  marker(enums.MarkerMultiPlayArenaMagicCircle),
		ColorBrokenCircle: marker(enums.MarkerBrokenMagicCircle),
		ColorStoneLantern: marker(enums.MarkerStoneLantern),
		ColorUsage:        marker(enums.MarkerUsage),
		ColorRoutes:       marker(enums.MarkerRoutes),
		ColorSpell:        marker(enums.MarkerSpell),
		ColorWand:         marker(enums.MarkerWand),
	}
}

// ColorOf ищет цвет по смыслу (нужно генератору карт).
func (p Palette) ColorOf(want PaletteEntry) (types.Pixel, bool) {
	for px, e := range p {
		if e == want {
			return px, true
		}
	}
	return 0, false
}

// ParsePalette накладывает YAML поверх палитры по умолчанию.
//
//	"#RRGGBBAA": {tile: WALL}
//	"#FFFF00":   {tile: FLOOR, marker: CHEST}
func ParsePalette(data []byte) (Palette, error) {
	var raw map[string]PaletteEntry
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse palette: %w", err)
	}

	pal := DefaultPalette()
	for key, entry := range raw {
		px, err := types.ParsePixel(key)
		if err != nil {
			return nil, fmt.Errorf("parse palette: %w", err)
		}
		if (entry.Marker != enums.MarkerUnknown || entry.Entry) && entry.Tile == enums.TileBlank {
			entry.Tile = enums.TileFloor
		}
		pal[px] = entry
	}
	return pal, nil
}

// LoadPalette читает палитру из файла. Пустой путь - палитра по умолчанию.
func LoadPalette(path string) (Palette, error) {
	if path == "" {
		return DefaultPalette(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read palette %s: %w", path, err)
	}
	return ParsePalette(data)
}
