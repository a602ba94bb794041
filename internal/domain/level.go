package domain

import "fmt"

// NextLevelKind - вид запроса на следующий уровень.
type NextLevelKind uint8

const (
	NextLevelNone  NextLevelKind = iota // стартовый уровень
	NextLevelIndex                      // обычный уровень по индексу
	NextLevelArena                      // арена для мультиплеера
)

// Имена срезов атласа
const (
	DefaultLevelSlice = "level0"
	ArenaSlice        = "multiplay_arena"
)

// NextLevel - какой уровень загрузить при следующем входе в игру.
type NextLevel struct {
	Kind  NextLevelKind `json:"kind"`
	Index int           `json:"index,omitempty"`
}

func LevelNone() NextLevel { return NextLevel{Kind: NextLevelNone} }
func LevelIndex(i int) NextLevel { return NextLevel{Kind: NextLevelIndex, Index: i} }
func MultiPlayArena() NextLevel { return NextLevel{Kind: NextLevelArena} }

// wrap - индекс по модулю числа уровней, всегда неотрицательный.
func wrap(i, levels int) int {
	if levels <= 0 {
		return 0
	}
	return ((i % levels) + levels) % levels
}

// SliceName возвращает имя среза атласа для уровня.
func (n NextLevel) SliceName(levels int) string {
	switch n.Kind {
	case NextLevelIndex:
		return fmt.Sprintf("level%d", wrap(n.Index, levels))
	case NextLevelArena:
		return ArenaSlice
	default:
		return DefaultLevelSlice
	}
}

// Current возвращает индикатор текущего уровня после загрузки.
func (n NextLevel) Current(levels int) CurrentLevel {
	if n.Kind == NextLevelIndex {
		return CurrentLevel{Index: wrap(n.Index, levels), Valid: true}
	}
	return CurrentLevel{}
}

func (n NextLevel) String() string {
	switch n.Kind {
	case NextLevelIndex:
		return fmt.Sprintf("Level(%d)", n.Index)
	case NextLevelArena:
		return "MultiPlayArena"
	default:
		return "None"
	}
}

// CurrentLevel - номер загруженного уровня. Valid=false для стартового уровня и арены.
type CurrentLevel struct {
	Index int  `json:"index"`
	Valid bool `json:"valid"`
}

// Next возвращает запрос для магического круга "дальше".
func (c CurrentLevel) Next() NextLevel {
	if !c.Valid {
		return LevelIndex(1)
	}
	return LevelIndex(c.Index + 1)
}
