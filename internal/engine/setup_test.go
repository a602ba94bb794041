package engine

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"testing"

	"github.com/aratama/magiacircle/internal/core/types"
	"github.com/aratama/magiacircle/pkg/dungeon"
	"github.com/aratama/magiacircle/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

var testLegend = map[rune]types.Pixel{
	'#': dungeon.ColorWall,
	'.': dungeon.ColorFloor,
	'E': dungeon.ColorEntry,
	'M': dungeon.ColorMagicCircle,
	'C': dungeon.ColorChest,
}

// level0: вход (1,1), магический круг рядом (2,1), сундук (3,3).
var level0 = []string{
	"#######",
	"#EM...#",
	"#.....#",
	"#..C..#",
	"#######",
}

// level1: вход (1,1), круг дальше по коридору.
var level1 = []string{
	"#######",
	"#E....#",
	"#.....#",
	"#....M#",
	"#######",
}

// testAtlas собирает атлас из двух уровней, срезы идут слева направо:
// клетки level1 сохраняют координаты атласа (x от 7).
// Арены в атласе нет: ее загрузка - ошибка автора уровня.
func testAtlas() *dungeon.Atlas {
	levels := [][]string{level0, level1}
	w, h := len(level0[0]), len(level0)

	img := image.NewNRGBA(image.Rect(0, 0, w*len(levels), h))
	atlas := &dungeon.Atlas{Image: img, Slices: map[string]image.Rectangle{}}

	for i, rows := range levels {
		ox := i * w
		for y, row := range rows {
			for x, ch := range row {
				c := color.NRGBA{}
				if px, ok := testLegend[ch]; ok {
					c = px.NRGBA()
				}
				img.SetNRGBA(ox+x, y, c)
			}
		}
		atlas.Slices[fmt.Sprintf("level%d", i)] = image.Rect(ox, 0, ox+w, h)
	}
	return atlas
}

func testConfig() Config {
	cfg := NewConfig()
	cfg.Seed = 42
	cfg.Levels = 2
	cfg.PlayerName = "tester"
	return cfg
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(testConfig(), testAtlas(), dungeon.DefaultPalette())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}
