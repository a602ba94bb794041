package engine

import (
	"strconv"

	"github.com/aratama/magiacircle/internal/core/types/enums"
	"github.com/aratama/magiacircle/internal/domain"
	"github.com/aratama/magiacircle/internal/spell"
	"github.com/aratama/magiacircle/pkg/api"
	"github.com/aratama/magiacircle/pkg/dungeon"
)

// publishUpdate рассылает снимок всем подписчикам и очищает буферы тика.
// Статика уровня уходит только в первом снимке после загрузки.
func (s *Session) publishUpdate() {
	if s.Hub.SubscriberCount() > 0 {
		s.Hub.Broadcast(*s.BuildState(s.levelChanged))
		s.levelChanged = false
	}

	s.logs = nil
	s.effects = nil
}

// BuildState создает снимок мира. full=true добавляет карту и крыши.
func (s *Session) BuildState(full bool) *api.ServerResponse {
	w := s.World

	resp := &api.ServerResponse{
		Type: "UPDATE",
		Tick: w.Tick,
		Level: api.LevelView{
			Slice: w.Slice,
			Index: w.Current.Index,
			Valid: w.Current.Valid,
			Epoch: w.Epoch,
		},
	}

	// 1. Статика уровня
	if full && w.Map != nil {
		resp.Type = "LEVEL"
		resp.Grid = &api.GridMeta{MinX: w.Map.MinX, MaxX: w.Map.MaxX, MinY: w.Map.MinY, MaxY: w.Map.MaxY}
		for y := w.Map.MinY; y < w.Map.MaxY; y++ {
			for x := w.Map.MinX; x < w.Map.MaxX; x++ {
				kind := w.Map.GetTile(x, y)
				if kind == enums.TileBlank {
					continue
				}
				resp.Map = append(resp.Map, api.TileView{X: x, Y: y, Kind: kind.String()})
			}
		}
		for _, p := range dungeon.RoofCaps(w.Map) {
			resp.Roofs = append(resp.Roofs, api.CellView{X: p.X, Y: p.Y})
		}
	}

	// 2. Динамические сущности
	for _, e := range w.Entities() {
		switch e.Kind {
		case enums.EntityTile, enums.EntityRoof, enums.EntityWallCollider:
			continue
		}
		resp.Entities = append(resp.Entities, toEntityView(e))
	}

	// 3. Ведьма и ее инвентарь
	if p := w.Player(); p != nil {
		resp.MyEntityID = strconv.FormatUint(uint64(p.ID), 10)
		resp.Inventory = toInventoryView(p)
	}

	// 4. Эффекты и логи тика
	for _, eff := range s.effects {
		resp.Effects = append(resp.Effects, toEffectView(eff))
	}
	resp.Logs = append([]api.LogEntry(nil), s.logs...)

	return resp
}

// toEntityView конвертирует доменную сущность в DTO для отправки клиенту.
func toEntityView(e *domain.Entity) api.EntityView {
	view := api.EntityView{
		ID:   strconv.FormatUint(uint64(e.ID), 10),
		Kind: e.Kind.String(),
		Name: e.Name,
	}
	view.Pos.X = e.Pos.X
	view.Pos.Y = e.Pos.Y

	if e.Render != nil {
		view.Slice = e.Render.Slice
		view.Layer = e.Render.Layer
	}

	if e.Actor != nil {
		view.Stats = &api.StatsView{
			Life:    e.Actor.Life,
			MaxLife: e.Actor.MaxLife,
			IsDead:  e.Actor.IsDead,
		}
		// Ману и золото видит только владелец, а владелец у нас - ведьма
		if e.Player != nil {
			view.Stats.Mana = e.Actor.Mana
			view.Stats.MaxMana = e.Actor.MaxMana
			view.Stats.Golds = e.Player.Golds
		}
	} else if e.Breakable != nil {
		view.Stats = &api.StatsView{Life: e.Breakable.Life}
	}

	if e.Light != nil {
		view.Light = &api.LightView{
			Intensity: e.Light.Intensity,
			Radius:    e.Light.Radius,
			Falloff:   e.Light.Falloff,
			Color:     e.Light.Color,
		}
	}

	return view
}

func toItemView(item domain.InventoryItem) api.ItemView {
	if item.IsNone() {
		return api.ItemView{}
	}

	view := api.ItemView{
		Kind:  item.Kind.String(),
		Width: item.Width(),
	}
	switch item.Kind {
	case enums.ItemKindWand:
		view.Name = item.Wand.String()
		view.Icon = "wand_" + item.Wand.String()
	case enums.ItemKindEquipment:
		view.Name = item.Equipment.String()
		view.Icon = "equipment_" + item.Equipment.String()
	case enums.ItemKindSpell:
		return toSpellView(item.Spell)
	}
	return view
}

func toSpellView(t enums.SpellType) api.ItemView {
	if t.IsNone() {
		return api.ItemView{}
	}
	view := api.ItemView{Kind: enums.ItemKindSpell.String(), Name: t.String(), Width: 1}
	if props, err := spell.Lookup(t); err == nil {
		view.Name = props.Name
		view.Icon = props.Icon
		view.Description = props.Description
		view.Appendix = spell.Appendix(props.Cast)
	}
	return view
}

func toInventoryView(p *domain.Entity) *api.InventoryView {
	view := &api.InventoryView{}

	if p.Player != nil {
		if p.Player.Inventory != nil {
			view.Capacity = p.Player.Inventory.Capacity()
			for _, item := range p.Player.Inventory.Items() {
				view.Items = append(view.Items, toItemView(item))
			}
		}
		for _, eq := range p.Player.Equipments {
			name := ""
			if eq != enums.EquipmentUnknown {
				name = eq.String()
			}
			view.Equipments = append(view.Equipments, name)
		}
	}

	if p.Actor != nil {
		for _, w := range p.Actor.Wands {
			if w == nil {
				view.Wands = append(view.Wands, nil)
				continue
			}
			wv := &api.WandView{Type: w.Type.String(), Cursor: w.Cursor, Delay: w.Delay}
			for _, sp := range w.Slots {
				wv.Slots = append(wv.Slots, toSpellView(sp))
			}
			view.Wands = append(view.Wands, wv)
		}
	}

	return view
}

func toEffectView(eff domain.Effect) api.EffectView {
	switch e := eff.(type) {
	case domain.SpawnBullet:
		return api.EffectView{Kind: "BULLET", Spell: e.Spell.String(), Angle: e.Angle}
	case domain.HealEffect:
		return api.EffectView{Kind: "HEAL", Spell: e.Spell.String()}
	default:
		return api.EffectView{Kind: "UNKNOWN", Spell: eff.SpellType().String()}
	}
}
