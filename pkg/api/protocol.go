package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это корневой объект, который сервер отправляет клиенту.
// Снимок мира после тика. Map и Roofs заполняются только в первом снимке
// после загрузки уровня: статическая геометрия между загрузками не меняется.
type ServerResponse struct {
	// Type тип сообщения: "UPDATE" или "LEVEL" (первый снимок уровня).
	Type string `json:"type"`

	// Tick номер кадра симуляции.
	Tick int `json:"tick"`

	// MyEntityID ID ведьмы, которой управляет клиент.
	MyEntityID string `json:"myEntityId,omitempty"`

	// Level какой уровень загружен.
	Level LevelView `json:"level"`

	// Grid границы карты уровня в клетках.
	Grid *GridMeta `json:"grid,omitempty"`

	// Map клетки пола и стен (пустота не передается).
	Map []TileView `json:"map,omitempty"`

	// Roofs клетки стен, которым нужна крыша.
	Roofs []CellView `json:"roofs,omitempty"`

	// Entities динамические сущности (без тайлов, крыш и коллайдеров).
	Entities []EntityView `json:"entities,omitempty"`

	// Effects эффекты кастов за этот тик (для звуков и вспышек у клиента).
	Effects []EffectView `json:"effects,omitempty"`

	// Inventory инвентарь, посохи и экипировка ведьмы.
	Inventory *InventoryView `json:"inventory,omitempty"`

	// Logs новые сообщения с прошлого снимка.
	Logs []LogEntry `json:"logs,omitempty"`
}

// LevelView описывает текущий уровень.
type LevelView struct {
	Slice string `json:"slice"`
	Index int    `json:"index"`
	Valid bool   `json:"valid"`
	Epoch uint16 `json:"epoch"`
}

// GridMeta содержит границы карты [minX,maxX)×[minY,maxY).
type GridMeta struct {
	MinX int `json:"minX"`
	MaxX int `json:"maxX"`
	MinY int `json:"minY"`
	MaxY int `json:"maxY"`
}

// CellView координата клетки.
type CellView struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// TileView это DTO для одной клетки карты.
type TileView struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Kind string `json:"kind"` // FLOOR, WALL
}

// EntityView это DTO для игровой сущности.
type EntityView struct {
	ID   string `json:"id"`
	Kind string `json:"kind"` // PLAYER, ENEMY, CHEST, BULLET...
	Name string `json:"name"`

	Pos struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	} `json:"pos"`

	Slice string  `json:"slice,omitempty"`
	Layer float64 `json:"layer"`

	// Stats поле есть только у персонажей.
	Stats *StatsView `json:"stats,omitempty"`

	// Light параметры света (фонари, снаряды).
	Light *LightView `json:"light,omitempty"`
}

// StatsView это DTO для жизни, маны и золота.
type StatsView struct {
	Life    int  `json:"life"`
	MaxLife int  `json:"maxLife"`
	Mana    int  `json:"mana,omitempty"`
	MaxMana int  `json:"maxMana,omitempty"`
	Golds   int  `json:"golds,omitempty"`
	IsDead  bool `json:"isDead"`
}

// LightView это DTO для точечного источника света.
type LightView struct {
	Intensity float64    `json:"intensity"`
	Radius    float64    `json:"radius"`
	Falloff   float64    `json:"falloff"`
	Color     [4]float64 `json:"color"`
}

// EffectView это DTO одного эффекта каста.
type EffectView struct {
	Kind  string  `json:"kind"` // BULLET, HEAL
	Spell string  `json:"spell"`
	Angle float64 `json:"angle,omitempty"`
}

// LogEntry представляет одну запись в игровом логе (чате).
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, COMBAT, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// ItemView представляет предмет для клиента. Пустой слот - пустой Kind.
type ItemView struct {
	Kind        string `json:"kind,omitempty"` // WAND, SPELL, EQUIPMENT
	Name        string `json:"name,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Width       int    `json:"width,omitempty"`
	Description string `json:"description,omitempty"`
	Appendix    string `json:"appendix,omitempty"`
}

// WandView представляет посох в руке.
type WandView struct {
	Type   string     `json:"type"`
	Slots  []ItemView `json:"slots"`
	Cursor int        `json:"cursor"`
	Delay  int        `json:"delay"`
}

// InventoryView представляет инвентарь, посохи и экипировку.
type InventoryView struct {
	Capacity   int         `json:"capacity"`
	Items      []ItemView  `json:"items"`
	Wands      []*WandView `json:"wands"`
	Equipments []string    `json:"equipments"`
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Token ID ведьмы, от имени которой выполняется действие.
	// Не нужен для первого сообщения "INIT".
	Token string `json:"token,omitempty"`

	// Action название действия, которое нужно выполнить.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// InitPayload используется для INIT: имя ведьмы (необязательно).
type InitPayload struct {
	Name string `json:"name,omitempty"`
}

// DirectionPayload используется для шага на соседнюю клетку (MOVE).
type DirectionPayload struct {
	Dx int `json:"dx"` // Смещение по X (-1, 0, 1)
	Dy int `json:"dy"` // Смещение по Y (-1, 0, 1)
}

// CastPayload используется для CAST: номер посоха и угол прицела в радианах.
type CastPayload struct {
	Wand  int     `json:"wand"`
	Angle float64 `json:"angle"`
}

// SlotPayload адрес слота: INVENTORY, WAND_SPELL, WAND, EQUIPMENT.
type SlotPayload struct {
	Area  string `json:"area"`
	Wand  int    `json:"wand,omitempty"`
	Index int    `json:"index"`
}

// MoveItemPayload используется для MOVE_ITEM.
type MoveItemPayload struct {
	From SlotPayload `json:"from"`
	To   SlotPayload `json:"to"`
}

// EntityPayload используется для действий, нацеленных на другую сущность (INTERACT).
type EntityPayload struct {
	TargetID string `json:"targetId"`
}
