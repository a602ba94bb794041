package utils

import "math/rand"

// RandomSelect удаляет из xs случайный элемент и возвращает его.
// Индекс выбирается равномерно по текущей длине, порядок остальных сохраняется.
// Вызов на пустом срезе - ошибка вызывающего кода (проверяйте длину заранее).
func RandomSelect[T any](rng *rand.Rand, xs *[]T) T {
	items := *xs
	if len(items) == 0 {
		panic("utils.RandomSelect: empty candidate list")
	}

	i := rng.Intn(len(items))
	picked := items[i]

	copy(items[i:], items[i+1:])
	var zero T
	items[len(items)-1] = zero // не держим ссылку в хвосте
	*xs = items[:len(items)-1]

	return picked
}
