package dungeon

import (
	"fmt"
	"image"
	"math/rand"

	"github.com/aratama/magiacircle/internal/core/types/enums"
	"github.com/aratama/magiacircle/internal/domain"
	"github.com/aratama/magiacircle/pkg/logger"
)

// Константы генерации
const (
	MapWidth  = 40
	MapHeight = 25
	MaxRooms  = 8
	MinSize   = 4
	MaxSize   = 10
)

// GenerateAtlas рисует атлас уровней, когда готового атласа нет:
// level0 (стартовый зал), level1..levelN-1 (комнаты и коридоры)
// и multiplay_arena. Срезы идут слева направо.
func GenerateAtlas(rng *rand.Rand, levels int, pal Palette) *Atlas {
	names := make([]string, 0, levels+1)
	for i := 0; i < levels; i++ {
		names = append(names, fmt.Sprintf("level%d", i))
	}
	names = append(names, domain.ArenaSlice)

	img := image.NewNRGBA(image.Rect(0, 0, MapWidth*len(names), MapHeight))
	atlas := &Atlas{Image: img, Slices: make(map[string]image.Rectangle, len(names))}

	for i, name := range names {
		var b *LevelBuilder
		switch {
		case name == domain.DefaultLevelSlice:
			b = NewLevel(rng, pal).WithSize(MapWidth, MapHeight).WithHall().
				PlaceEntry().
				PlaceExit(enums.MarkerMagicCircle).
				PlaceMarker(enums.MarkerMultiPlayArenaMagicCircle, 1).
				PlaceMarker(enums.MarkerUsage, 1).
				PlaceMarker(enums.MarkerRoutes, 1).
				PlaceMarker(enums.MarkerBookShelf, 2).
				PlaceMarker(enums.MarkerStoneLantern, 4).
				PlaceMarker(enums.MarkerWand, 1).
				PlaceMarker(enums.MarkerSpell, 1)
		case name == domain.ArenaSlice:
			b = NewLevel(rng, pal).WithSize(MapWidth, MapHeight).WithHall().
				PlaceEntry().
				PlaceMarker(enums.MarkerStoneLantern, 6).
				PlaceMarker(enums.MarkerBrokenMagicCircle, 1)
		default:
			b = NewLevel(rng, pal).WithSize(MapWidth, MapHeight).WithRooms(MaxRooms).
				PlaceEntry().
				PlaceExit(enums.MarkerMagicCircle).
				PlaceMarker(enums.MarkerChest, 2).
				PlaceMarker(enums.MarkerCrate, 4).
				PlaceMarker(enums.MarkerStoneLantern, 3).
				PlaceMarker(enums.MarkerSpell, 1)
		}

		origin := image.Pt(i*MapWidth, 0)
		b.DrawTo(img, origin)
		atlas.Slices[name] = image.Rect(origin.X, 0, origin.X+MapWidth, MapHeight)
	}

	logger.For("dungeon_generator").WithField("slices", len(names)).Info("Level atlas generated.")
	return atlas
}
