package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/aratama/magiacircle/internal/core/types"
	"github.com/aratama/magiacircle/internal/domain"
	"github.com/aratama/magiacircle/internal/engine/handlers"
	"github.com/aratama/magiacircle/internal/engine/handlers/actions"
	"github.com/aratama/magiacircle/internal/infrastructure/storage"
	"github.com/aratama/magiacircle/internal/network"
	"github.com/aratama/magiacircle/internal/systems"
	"github.com/aratama/magiacircle/pkg/api"
	"github.com/aratama/magiacircle/pkg/dungeon"
	"github.com/aratama/magiacircle/pkg/logger"
	"github.com/sirupsen/logrus"
)

// CommandQueueSize - сколько команд может ждать следующего тика.
const CommandQueueSize = 100

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrQueueFull     = errors.New("command queue full")
)

// Session - одна запущенная партия: мир, загрузчик уровней и цикл тиков.
// Все изменения мира происходят внутри Step под мьютексом.
type Session struct {
	mu sync.RWMutex

	Config   Config
	World    *domain.GameWorld
	Loader   *LevelLoader
	Spawner  *dungeon.WorldSpawner
	Resolver *systems.CastResolver
	Requests *LevelRequests
	Hub      *network.Broadcaster
	Rng      *rand.Rand

	CommandChan chan domain.InternalCommand
	Replay      *domain.ReplaySession

	logs         []api.LogEntry
	logSeq       int
	effects      []domain.Effect
	levelChanged bool

	handlers map[domain.ActionType]handlers.HandlerFunc
	log      *logrus.Entry
}

// NewSession собирает сессию и загружает стартовый уровень.
// Весь случайный выбор идет от одного генератора с сидом из конфига.
func NewSession(cfg Config, atlas *dungeon.Atlas, pal dungeon.Palette) (*Session, error) {
	return newSession(cfg, atlas, pal, domain.LevelNone())
}

func newSession(cfg Config, atlas *dungeon.Atlas, pal dungeon.Palette, start domain.NextLevel) (*Session, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	world := domain.NewGameWorld()

	s := &Session{
		Config:      cfg,
		World:       world,
		Loader:      NewLevelLoader(atlas, pal, cfg, rng),
		Spawner:     dungeon.NewWorldSpawner(world, rng),
		Resolver:    systems.NewCastResolver(rng),
		Requests:    NewLevelRequests(),
		Hub:         network.NewBroadcaster(),
		Rng:         rng,
		CommandChan: make(chan domain.InternalCommand, CommandQueueSize),
		Replay: &domain.ReplaySession{
			Seed:       cfg.Seed,
			Level:      start,
			PlayerName: cfg.PlayerName,
			Timestamp:  time.Now().Unix(),
			Actions:    make([]domain.ReplayAction, 0),
		},
		handlers: make(map[domain.ActionType]handlers.HandlerFunc),
		log:      logger.For("session"),
	}
	s.registerHandlers()

	if _, err := s.Loader.Load(s.World, s.Spawner, start, cfg.PlayerName); err != nil {
		return nil, err
	}
	s.levelChanged = true

	return s, nil
}

func (s *Session) registerHandlers() {
	s.handlers[domain.ActionInit] = handlers.WithPayload(actions.HandleInit)
	s.handlers[domain.ActionMove] = handlers.WithPayload(actions.HandleMove)
	s.handlers[domain.ActionCast] = handlers.WithPayload(actions.HandleCast)
	s.handlers[domain.ActionMoveItem] = handlers.WithPayload(actions.HandleMoveItem)
	s.handlers[domain.ActionInteract] = handlers.WithPayload(actions.HandleInteract)
	s.handlers[domain.ActionWait] = handlers.WithEmptyPayload(actions.HandleWait)
}

// ProcessCommand принимает команду от внешнего мира (WebSocket).
// Команда выполняется в начале следующего тика.
func (s *Session) ProcessCommand(externalCmd api.ClientCommand) error {
	actionType := domain.ParseAction(externalCmd.Action)
	if actionType == domain.ActionUnknown {
		return fmt.Errorf("%w: %q", ErrUnknownAction, externalCmd.Action)
	}

	// Токен только записывается в реплей: ведьма в сессии одна,
	// а ее ID меняется с каждой эпохой.
	token, _ := types.ParseEntityID(externalCmd.Token)

	select {
	case s.CommandChan <- domain.InternalCommand{Action: actionType, Token: token, Payload: externalCmd.Payload}:
		return nil
	default:
		return ErrQueueFull
	}
}

// Step - один кадр симуляции.
func (s *Session) Step() {
	s.mu.Lock()
	defer s.mu.Unlock()

	// 1. Команды, пришедшие с прошлого кадра
	s.drainCommands()

	// 2. Смена уровня, запрошенная магическим кругом
	if next, ok := s.Requests.Take(); ok {
		s.changeLevel(next)
	}

	// 3. Перезарядка посохов и мана
	for _, e := range s.World.Entities() {
		if e.Actor != nil && !e.Actor.IsDead {
			systems.TickActor(e.Actor)
		}
	}

	// 4. Снаряды и враги
	for _, msg := range systems.StepBullets(s.World) {
		s.AddLog(msg, "COMBAT")
	}
	for _, msg := range systems.StepEnemies(s.World) {
		s.AddLog(msg, "COMBAT")
	}

	s.World.Tick++

	// 5. Рассылка снимка
	s.publishUpdate()
}

// Run крутит Step с фиксированным шагом до отмены контекста.
// При выходе реплей сохраняется, если задан ReplayDir.
func (s *Session) Run(ctx context.Context) error {
	s.log.WithFields(logrus.Fields{
		"seed":      s.Config.Seed,
		"tick_rate": s.Config.TickRate,
	}).Info("Session loop started")

	ticker := time.NewTicker(s.Config.TickInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.saveReplay()
			return ctx.Err()
		case <-ticker.C:
			s.Step()
		}
	}
}

func (s *Session) drainCommands() {
	for {
		select {
		case cmd := <-s.CommandChan:
			s.executeCommand(cmd)
		default:
			return
		}
	}
}

// executeCommand выполняет команду от имени ведьмы и пишет логи
func (s *Session) executeCommand(cmd domain.InternalCommand) {
	actor := s.World.Player()
	if actor == nil {
		return
	}
	if actor.Actor.IsDead && cmd.Action != domain.ActionInit {
		return
	}

	handler, ok := s.handlers[cmd.Action]
	if !ok {
		return
	}
	s.recordAction(cmd)

	ctx := handlers.Context{
		World:    s.World,
		Actor:    actor,
		Resolver: s.Resolver,
		Spawner:  s.Spawner,
		Rng:      s.Rng,
	}

	result, err := handler(ctx, cmd.Payload)
	if err != nil {
		s.log.WithError(err).WithField("action", cmd.Action).Warn("Command rejected")
		return
	}

	if result.Msg != "" {
		msgType := result.MsgType
		if msgType == "" {
			msgType = "INFO"
		}
		s.AddLog(result.Msg, msgType)
	}
	s.effects = append(s.effects, result.Effects...)

	if result.Event != nil {
		s.processEvent(result.Event)
	}
}

func (s *Session) recordAction(cmd domain.InternalCommand) {
	s.Replay.Actions = append(s.Replay.Actions, domain.ReplayAction{
		Tick:    s.World.Tick,
		Token:   cmd.Token,
		Action:  cmd.Action,
		Payload: cmd.Payload,
	})
}

// changeLevel перезагружает мир. Ведьма переносит свое состояние;
// если уровень не собрался, остается прежний мир.
func (s *Session) changeLevel(next domain.NextLevel) {
	name := s.Config.PlayerName
	var carry *WitchState
	if old := s.World.Player(); old != nil {
		st := CaptureWitch(old)
		carry = &st
		name = old.Name
	}

	res, err := s.Loader.Load(s.World, s.Spawner, next, name)
	if err != nil {
		s.log.WithError(err).WithField("level", next).Error("Level load failed, keeping previous world")
		s.AddLog("Магический круг гаснет.", "ERROR")
		return
	}

	if carry != nil {
		carry.Apply(res.Witch)
	}
	s.levelChanged = true
	s.AddLog(fmt.Sprintf("%s переносится: %s.", name, res.Slice), "INFO")
}

func (s *Session) saveReplay() {
	if s.Config.ReplayDir == "" {
		return
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	path, err := storage.NewReplayService(s.Config.ReplayDir).Save(s.Replay)
	if err != nil {
		s.log.WithError(err).Error("Failed to save replay")
		return
	}
	s.log.WithFields(logrus.Fields{
		"path":    path,
		"actions": len(s.Replay.Actions),
	}).Info("Replay saved")
}

// View дает доступ к миру на чтение (отладочные маршруты).
func (s *Session) View(fn func(w *domain.GameWorld)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.World)
}

// Subscribe регистрирует подписчика и кладет ему в очередь полный снимок.
// Под блокировкой тик не успеет разослать обновление раньше снимка.
func (s *Session) Subscribe(id string) chan api.ServerResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	updates := s.Hub.Register(id)
	s.Hub.SendTo(id, *s.BuildState(true))
	return updates
}
