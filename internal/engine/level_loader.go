package engine

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/aratama/magiacircle/internal/domain"
	"github.com/aratama/magiacircle/pkg/dungeon"
	"github.com/aratama/magiacircle/pkg/logger"
	"github.com/aratama/magiacircle/pkg/utils"
	"github.com/sirupsen/logrus"
)

// ErrLevelAuthoring - дефект ресурса уровня: нет среза, нет точки входа,
// срез за пределами атласа. Загрузка прерывается, прежний мир не тронут.
var ErrLevelAuthoring = errors.New("level authoring defect")

// LoadState - шаг загрузки уровня.
type LoadState uint8

const (
	LoadIdle LoadState = iota
	LoadDecoding
	LoadClearingPrevious
	LoadRebuildingStatic
	LoadSpawningDynamic
	LoadReady
)

var loadStateNames = map[LoadState]string{
	LoadIdle:             "IDLE",
	LoadDecoding:         "DECODING",
	LoadClearingPrevious: "CLEARING_PREVIOUS",
	LoadRebuildingStatic: "REBUILDING_STATIC",
	LoadSpawningDynamic:  "SPAWNING_DYNAMIC",
	LoadReady:            "READY",
}

func (s LoadState) String() string {
	if n, ok := loadStateNames[s]; ok {
		return n
	}
	return "UNKNOWN"
}

// LoadResult - итог загрузки уровня.
type LoadResult struct {
	Slice   string
	Entry   domain.Position
	Witch   *domain.Entity
	Removed int
	Enemies int
	Markers int
}

// LevelLoader собирает уровень из атласа: декодирует срез, очищает прошлую
// эпоху, перестраивает тайлы и коллайдеры, расставляет ведьму, врагов и маркеры.
type LevelLoader struct {
	Atlas          *dungeon.Atlas
	Palette        dungeon.Palette
	Levels         int
	EnemyDensity   int
	EnemiesPerKind int
	LifeBar        dungeon.LifeBarHandle

	rng   *rand.Rand
	state LoadState
}

func NewLevelLoader(atlas *dungeon.Atlas, pal dungeon.Palette, cfg Config, rng *rand.Rand) *LevelLoader {
	return &LevelLoader{
		Atlas:          atlas,
		Palette:        pal,
		Levels:         cfg.Levels,
		EnemyDensity:   cfg.EnemyDensity,
		EnemiesPerKind: cfg.EnemiesPerKind,
		LifeBar:        dungeon.DefaultLifeBar,
		rng:            rng,
	}
}

// State возвращает текущий шаг (IDLE до первой загрузки, READY после).
func (l *LevelLoader) State() LoadState { return l.state }

func (l *LevelLoader) enter(s LoadState, next domain.NextLevel) {
	logger.For("level_loader").WithFields(logrus.Fields{
		"from":  l.state,
		"to":    s,
		"level": next,
	}).Debug("Level load state changed.")
	l.state = s
}

// Load загружает уровень next в мир w. Сущности создаются через spawner.
// Ошибка декодирования оставляет прежний мир нетронутым.
func (l *LevelLoader) Load(w *domain.GameWorld, spawner dungeon.Spawner, next domain.NextLevel, playerName string) (LoadResult, error) {
	prev := l.state
	res := LoadResult{Slice: next.SliceName(l.Levels)}

	// 1. Декодирование среза
	l.enter(LoadDecoding, next)
	rect, err := l.Atlas.Slice(res.Slice)
	if err != nil {
		l.state = prev
		return res, fmt.Errorf("%w: %w", ErrLevelAuthoring, err)
	}
	m, err := dungeon.DecodeTileMap(l.Atlas.Image, rect, l.Palette)
	if err != nil {
		l.state = prev
		return res, fmt.Errorf("%w: %s: %w", ErrLevelAuthoring, res.Slice, err)
	}

	// 2. Очистка прошлого уровня одной эпохой
	l.enter(LoadClearingPrevious, next)
	res.Removed = w.AdvanceEpoch()

	// 3. Статика: тайлы, крыши, коллайдеры стен
	l.enter(LoadRebuildingStatic, next)
	w.Map = m
	w.Slice = res.Slice
	w.Current = next.Current(l.Levels)
	dungeon.RebuildTiles(w, m)
	dungeon.RebuildWallColliders(w, m)

	// 4. Динамика: ведьма, враги, маркеры
	l.enter(LoadSpawningDynamic, next)
	entries := append([]domain.Position(nil), m.EntryPoints...)
	res.Entry = utils.RandomSelect(l.rng, &entries)
	res.Witch = spawner.SpawnWitch(playerName, res.Entry.Center())

	// Враги занимают клетки прямо из m.Empties: после загрузки там
	// остаются только свободные клетки.
	if l.EnemyDensity < len(m.Empties) {
		for _, t := range dungeon.EnemyTemplates {
			for i := 0; i < l.EnemiesPerKind && len(m.Empties) > 0; i++ {
				spawner.SpawnEnemy(t, utils.RandomSelect(l.rng, &m.Empties).Center(), l.LifeBar)
				res.Enemies++
			}
		}
	}

	for _, marker := range m.Entities {
		if dungeon.SpawnMarker(spawner, marker) {
			res.Markers++
		} else {
			logger.For("level_loader").WithField("marker", marker.Marker).Warn("Unknown marker skipped.")
		}
	}

	l.enter(LoadReady, next)

	logger.For("level_loader").WithFields(logrus.Fields{
		"slice":   res.Slice,
		"bounds":  fmt.Sprintf("[%d,%d)x[%d,%d)", m.MinX, m.MaxX, m.MinY, m.MaxY),
		"entry":   res.Entry,
		"enemies": res.Enemies,
		"markers": res.Markers,
		"removed": res.Removed,
		"epoch":   w.Epoch,
	}).Info("Level loaded.")

	return res, nil
}
