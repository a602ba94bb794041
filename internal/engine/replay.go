package engine

import (
	"fmt"

	"github.com/aratama/magiacircle/internal/domain"
	"github.com/aratama/magiacircle/pkg/dungeon"
	"github.com/aratama/magiacircle/pkg/logger"
	"github.com/sirupsen/logrus"
)

// RunReplay заново проигрывает записанную партию: сид и стартовый уровень
// восстанавливают мир, команды подаются в те же тики, что и при записи.
// Возвращает сессию в состоянии после последней команды.
func RunReplay(cfg Config, atlas *dungeon.Atlas, pal dungeon.Palette, rep *domain.ReplaySession) (*Session, error) {
	cfg.Seed = rep.Seed
	cfg.PlayerName = rep.PlayerName
	cfg.ReplayDir = ""

	s, err := newSession(cfg, atlas, pal, rep.Level)
	if err != nil {
		return nil, fmt.Errorf("replay start: %w", err)
	}

	log := logger.For("replay")
	next := 0
	for next < len(rep.Actions) {
		for next < len(rep.Actions) && rep.Actions[next].Tick <= s.World.Tick {
			act := rep.Actions[next]
			next++
			if act.Tick < s.World.Tick {
				log.WithField("tick", act.Tick).Warn("Out of order action skipped")
				continue
			}

			select {
			case s.CommandChan <- domain.InternalCommand{Action: act.Action, Token: act.Token, Payload: act.Payload}:
			default:
				return s, fmt.Errorf("replay tick %d: %w", act.Tick, ErrQueueFull)
			}
		}
		s.Step()
	}

	log.WithFields(logrus.Fields{
		"seed":    rep.Seed,
		"actions": len(rep.Actions),
		"ticks":   s.World.Tick,
	}).Info("Replay finished")

	return s, nil
}
