package dungeon

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/aratama/magiacircle/internal/core/types/enums"
	"github.com/aratama/magiacircle/internal/domain"
	"github.com/aratama/magiacircle/pkg/utils"
)

// Rect - Вспомогательная структура для комнаты
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.W && r.X+r.W >= other.X &&
		r.Y <= other.Y+other.H && r.Y+r.H >= other.Y
}

// LevelBuilder предоставляет fluent API для рисования карты уровня
// цветами палитры. Результат декодируется так же, как нарисованный вручную.
type LevelBuilder struct {
	width  int
	height int
	pal    Palette
	rng    *rand.Rand

	rooms   []Rect
	tiles   [][]enums.TileKind
	claimed map[domain.Position]PaletteEntry
}

// NewLevel создает builder карты
func NewLevel(rng *rand.Rand, pal Palette) *LevelBuilder {
	return &LevelBuilder{
		width:   MapWidth,
		height:  MapHeight,
		pal:     pal,
		rng:     rng,
		claimed: make(map[domain.Position]PaletteEntry),
	}
}

// WithSize устанавливает размер карты
func (b *LevelBuilder) WithSize(width, height int) *LevelBuilder {
	b.width = width
	b.height = height
	return b
}

func (b *LevelBuilder) randRange(min, max int) int {
	return b.rng.Intn(max-min+1) + min
}

func (b *LevelBuilder) fillWalls() {
	b.tiles = make([][]enums.TileKind, b.height)
	for y := range b.tiles {
		row := make([]enums.TileKind, b.width)
		for x := range row {
			row[x] = enums.TileWall
		}
		b.tiles[y] = row
	}
}

func (b *LevelBuilder) carve(x, y int) {
	if 0 < x && x < b.width-1 && 0 < y && y < b.height-1 {
		b.tiles[y][x] = enums.TileFloor
	}
}

func (b *LevelBuilder) carveRoom(room Rect) {
	for y := room.Y + 1; y < room.Y+room.H; y++ {
		for x := room.X + 1; x < room.X+room.W; x++ {
			b.carve(x, y)
		}
	}
}

func (b *LevelBuilder) carveHCorridor(x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		b.carve(x, y)
	}
}

func (b *LevelBuilder) carveVCorridor(y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		b.carve(x, y)
	}
}

// WithRooms генерирует комнаты и коридоры
func (b *LevelBuilder) WithRooms(maxRooms int) *LevelBuilder {
	b.fillWalls()

	b.rooms = make([]Rect, 0, maxRooms)
	for i := 0; i < maxRooms; i++ {
		w := b.randRange(MinSize, min(MaxSize, b.width-3))
		h := b.randRange(MinSize, min(MaxSize, b.height-3))
		x := b.randRange(1, b.width-w-2)
		y := b.randRange(1, b.height-h-2)

		newRoom := Rect{X: x, Y: y, W: w, H: h}

		// Проверяем пересечения
		failed := false
		for _, other := range b.rooms {
			if newRoom.Intersects(other) {
				failed = true
				break
			}
		}
		if failed {
			continue
		}

		b.carveRoom(newRoom)

		// Соединяем с предыдущей комнатой
		if len(b.rooms) > 0 {
			prevX, prevY := b.rooms[len(b.rooms)-1].Center()
			currX, currY := newRoom.Center()

			if b.rng.Intn(2) == 0 {
				b.carveHCorridor(prevX, currX, prevY)
				b.carveVCorridor(prevY, currY, currX)
			} else {
				b.carveVCorridor(prevY, currY, prevX)
				b.carveHCorridor(prevX, currX, currY)
			}
		}
		b.rooms = append(b.rooms, newRoom)
	}

	return b
}

// WithHall делает одну большую комнату на всю карту (стартовый уровень, арена)
func (b *LevelBuilder) WithHall() *LevelBuilder {
	b.fillWalls()
	hall := Rect{X: 1, Y: 1, W: b.width - 3, H: b.height - 3}
	b.carveRoom(hall)
	b.rooms = []Rect{hall}
	return b
}

func (b *LevelBuilder) claim(p domain.Position, e PaletteEntry) bool {
	if b.tiles == nil || b.tiles[p.Y][p.X] != enums.TileFloor {
		return false
	}
	if _, taken := b.claimed[p]; taken {
		return false
	}
	b.claimed[p] = e
	return true
}

func (b *LevelBuilder) roomCenter(i int) domain.Position {
	cx, cy := b.rooms[i].Center()
	return domain.Position{X: cx, Y: cy}
}

// PlaceEntry ставит точку входа в центр первой комнаты
func (b *LevelBuilder) PlaceEntry() *LevelBuilder {
	if len(b.rooms) > 0 {
		b.claim(b.roomCenter(0), PaletteEntry{Tile: enums.TileFloor, Entry: true})
	}
	return b
}

// PlaceExit ставит магический круг в центр последней комнаты
func (b *LevelBuilder) PlaceExit(m enums.GameEntity) *LevelBuilder {
	if len(b.rooms) > 0 {
		p := b.roomCenter(len(b.rooms) - 1)
		if !b.claim(p, marker(m)) {
			b.PlaceMarker(m, 1)
		}
	}
	return b
}

// PlaceMarker ставит count маркеров на случайные свободные клетки пола
func (b *LevelBuilder) PlaceMarker(m enums.GameEntity, count int) *LevelBuilder {
	var free []domain.Position
	for y := range b.tiles {
		for x := range b.tiles[y] {
			p := domain.Position{X: x, Y: y}
			if _, taken := b.claimed[p]; !taken && b.tiles[y][x] == enums.TileFloor {
				free = append(free, p)
			}
		}
	}
	for i := 0; i < count && len(free) > 0; i++ {
		b.claim(utils.RandomSelect(b.rng, &free), marker(m))
	}
	return b
}

// Rooms возвращает сгенерированные комнаты
func (b *LevelBuilder) Rooms() []Rect {
	return b.rooms
}

// DrawTo рисует карту в img с левым верхним углом в origin.
func (b *LevelBuilder) DrawTo(img *image.NRGBA, origin image.Point) {
	floor, _ := b.pal.ColorOf(PaletteEntry{Tile: enums.TileFloor})
	wall, _ := b.pal.ColorOf(PaletteEntry{Tile: enums.TileWall})

	for y := range b.tiles {
		for x, t := range b.tiles[y] {
			var c color.NRGBA
			switch t {
			case enums.TileFloor:
				c = floor.NRGBA()
			case enums.TileWall:
				c = wall.NRGBA()
			}
			if e, ok := b.claimed[domain.Position{X: x, Y: y}]; ok {
				if px, found := b.pal.ColorOf(e); found {
					c = px.NRGBA()
				}
			}
			img.SetNRGBA(origin.X+x, origin.Y+y, c)
		}
	}
}

// Build рисует карту на отдельном изображении
func (b *LevelBuilder) Build() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	b.DrawTo(img, image.Point{})
	return img
}
