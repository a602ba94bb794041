package types

import (
	"fmt"
	"strconv"
)

// EntityID — 64-битный идентификатор сущности мира.
//
// Формат битов (от старших к младшим):
//
//	[ Reserved (8) | Kind (8) | Epoch (16) | Index (32) ]
//
// Где:
//   - Kind — вид сущности (тайл, коллайдер, игрок, враг и т.д.)
//   - Epoch — эпоха уровня, в которой сущность создана
//   - Index — порядковый номер сущности внутри эпохи
//
// Эпоха позволяет удалять весь уровень одной операцией:
// все ID с эпохой предыдущего уровня считаются устаревшими.
type EntityID uint64

// NilEntityID — нулевой идентификатор сущности.
const NilEntityID EntityID = 0

// Конфигурация битов EntityID.
const (
	bitsIndex = 32
	bitsEpoch = 16
	bitsKind  = 8

	shiftEpoch = bitsIndex
	shiftKind  = bitsIndex + bitsEpoch

	maskIndex = (1 << bitsIndex) - 1
	maskEpoch = (1 << bitsEpoch) - 1
	maskKind  = (1 << bitsKind) - 1
)

// PackEntityID собирает EntityID из составных частей.
// Проверок диапазонов нет: лишние биты отбрасываются масками.
func PackEntityID(kind uint8, epoch uint16, index uint32) EntityID {
	return EntityID(
		(uint64(kind)&maskKind)<<shiftKind |
			(uint64(epoch)&maskEpoch)<<shiftEpoch |
			uint64(index)&maskIndex,
	)
}

// Index возвращает порядковый номер сущности внутри эпохи.
func (id EntityID) Index() uint32 {
	return uint32(id & maskIndex)
}

// Epoch возвращает эпоху уровня.
func (id EntityID) Epoch() uint16 {
	return uint16((id >> shiftEpoch) & maskEpoch)
}

// Kind возвращает вид сущности.
func (id EntityID) Kind() uint8 {
	return uint8((id >> shiftKind) & maskKind)
}

func (id EntityID) IsNil() bool {
	return id == NilEntityID
}

// BelongsTo проверяет, создана ли сущность в указанной эпохе.
func (id EntityID) BelongsTo(epoch uint16) bool {
	return !id.IsNil() && id.Epoch() == epoch
}

// String предназначен для логов: [kind=.. epoch=.. idx=..]
func (id EntityID) String() string {
	if id.IsNil() {
		return "<nil>"
	}
	return fmt.Sprintf("[kind=%d epoch=%d idx=%d]", id.Kind(), id.Epoch(), id.Index())
}

// MarshalJSON сериализует EntityID строкой: JS теряет точность на uint64.
func (id EntityID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + strconv.FormatUint(uint64(id), 10) + `"`), nil
}

// UnmarshalJSON принимает как строку, так и число.
func (id *EntityID) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) > 1 && s[0] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "" {
		*id = NilEntityID
		return nil
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return err
	}
	*id = EntityID(v)
	return nil
}

// ParseEntityID разбирает десятичное представление (из payload клиента).
func ParseEntityID(s string) (EntityID, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return NilEntityID, fmt.Errorf("invalid entity id %q: %w", s, err)
	}
	return EntityID(v), nil
}
