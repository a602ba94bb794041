package server

import (
	"fmt"
	"net/http"

	"github.com/aratama/magiacircle/internal/core/types/enums"
	"github.com/aratama/magiacircle/internal/domain"
	"github.com/aratama/magiacircle/internal/engine"
	"github.com/gorilla/mux"
)

// DebugHandler предоставляет доступ к внутреннему состоянию сессии
type DebugHandler struct {
	Session *engine.Session
}

func NewDebugHandler(s *engine.Session) *DebugHandler {
	return &DebugHandler{Session: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/level", h.handleLevel).Methods(http.MethodGet)
	r.HandleFunc("/entities", h.handleDumpEntities).Methods(http.MethodGet)
	r.HandleFunc("/entities/{kind}", h.handleDumpEntities).Methods(http.MethodGet)
}

// LevelDump - карта уровня строками: '#' стена, '.' пол, ' ' пустота.
type LevelDump struct {
	Slice    string              `json:"slice"`
	Current  domain.CurrentLevel `json:"current"`
	Epoch    uint16              `json:"epoch"`
	Tick     int                 `json:"tick"`
	Bounds   string              `json:"bounds"`
	Rows     []string            `json:"rows"`
	Entities int                 `json:"entities"`
}

var tileGlyphs = map[enums.TileKind]byte{
	enums.TileBlank: ' ',
	enums.TileFloor: '.',
	enums.TileWall:  '#',
}

// /debug/level - текущая карта
func (h *DebugHandler) handleLevel(w http.ResponseWriter, r *http.Request) {
	var dump LevelDump
	h.Session.View(func(world *domain.GameWorld) {
		dump = LevelDump{
			Slice:    world.Slice,
			Current:  world.Current,
			Epoch:    world.Epoch,
			Tick:     world.Tick,
			Entities: world.Len(),
		}
		m := world.Map
		if m == nil {
			return
		}
		dump.Bounds = fmt.Sprintf("[%d,%d)x[%d,%d)", m.MinX, m.MaxX, m.MinY, m.MaxY)
		for y := m.MinY; y < m.MaxY; y++ {
			row := make([]byte, 0, m.Width())
			for x := m.MinX; x < m.MaxX; x++ {
				row = append(row, tileGlyphs[m.GetTile(x, y)])
			}
			dump.Rows = append(dump.Rows, string(row))
		}
	})

	writeJSON(w, dump)
}

// /debug/entities/{kind} - дамп сущностей арены (все или одного вида)
func (h *DebugHandler) handleDumpEntities(w http.ResponseWriter, r *http.Request) {
	kind := enums.EntityUnknown
	if name, ok := mux.Vars(r)["kind"]; ok {
		kind = enums.ParseEntityKind(name)
		if kind == enums.EntityUnknown {
			http.Error(w, "unknown entity kind", http.StatusBadRequest)
			return
		}
	}

	// Мы возвращаем полные структуры domain.Entity, включая скрытые компоненты
	out := []*domain.Entity{}
	h.Session.View(func(world *domain.GameWorld) {
		if kind == enums.EntityUnknown {
			out = append(out, world.Entities()...)
			return
		}
		out = append(out, world.EntitiesOf(kind)...)
	})

	writeJSON(w, out)
}
