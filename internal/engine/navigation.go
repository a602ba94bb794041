package engine

import "github.com/aratama/magiacircle/internal/domain"

// LevelRequests - очередь запросов на смену уровня емкостью в один элемент.
// Новый запрос заменяет необработанный: побеждает последний.
type LevelRequests struct {
	ch chan domain.NextLevel
}

func NewLevelRequests() *LevelRequests {
	return &LevelRequests{ch: make(chan domain.NextLevel, 1)}
}

// Request ставит запрос, вытесняя необработанный.
func (r *LevelRequests) Request(next domain.NextLevel) {
	for {
		select {
		case r.ch <- next:
			return
		default:
		}
		select {
		case <-r.ch:
		default:
		}
	}
}

// Take забирает запрос, не блокируясь.
func (r *LevelRequests) Take() (domain.NextLevel, bool) {
	select {
	case next := <-r.ch:
		return next, true
	default:
		return domain.NextLevel{}, false
	}
}
