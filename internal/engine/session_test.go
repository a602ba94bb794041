package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/aratama/magiacircle/internal/core/types/enums"
	"github.com/aratama/magiacircle/internal/domain"
	"github.com/aratama/magiacircle/pkg/api"
	"github.com/aratama/magiacircle/pkg/dungeon"
)

func send(t *testing.T, s *Session, action string, payload any) {
	t.Helper()
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.ProcessCommand(api.ClientCommand{Action: action, Payload: raw}); err != nil {
		t.Fatalf("ProcessCommand(%s): %v", action, err)
	}
}

func TestSession_StartsOnLevelZero(t *testing.T) {
	s := newTestSession(t)

	p := s.World.Player()
	if p == nil {
		t.Fatal("Session must spawn the witch")
	}
	if p.Cell() != (domain.Position{X: 1, Y: 1}) {
		t.Errorf("Expected witch at entry (1,1), got %v", p.Cell())
	}
	if s.World.Slice != "level0" {
		t.Errorf("Expected level0, got %s", s.World.Slice)
	}
}

func TestSession_FirstSnapshotCarriesLevel(t *testing.T) {
	s := newTestSession(t)
	ch := s.Hub.Register("viewer")

	s.Step()
	first := <-ch
	if first.Type != "LEVEL" {
		t.Errorf("Expected LEVEL snapshot first, got %s", first.Type)
	}
	if len(first.Map) == 0 || first.Grid == nil {
		t.Error("First snapshot must carry the tile map")
	}
	if len(first.Roofs) == 0 {
		t.Error("First snapshot must carry roofs")
	}
	if first.Inventory == nil || len(first.Inventory.Wands) != domain.MaxWands {
		t.Fatal("Snapshot must carry the witch inventory")
	}
	if first.Inventory.Capacity != domain.MaxItemsInInventory || len(first.Inventory.Items) != domain.MaxItemsInInventory {
		t.Errorf("Expected %d inventory slots, got capacity %d, items %d",
			domain.MaxItemsInInventory, first.Inventory.Capacity, len(first.Inventory.Items))
	}
	for _, e := range first.Entities {
		if e.Kind == enums.EntityTile.String() || e.Kind == enums.EntityWallCollider.String() {
			t.Errorf("Static entity %s leaked into the snapshot", e.Kind)
		}
	}

	s.Step()
	second := <-ch
	if second.Type != "UPDATE" || len(second.Map) != 0 {
		t.Errorf("Later snapshots must not repeat the map: %s, %d tiles", second.Type, len(second.Map))
	}
	if second.Tick != first.Tick+1 {
		t.Errorf("Tick must advance, got %d then %d", first.Tick, second.Tick)
	}
}

func TestSession_SubscribeQueuesFullSnapshot(t *testing.T) {
	s := newTestSession(t)
	ch := s.Subscribe("late")

	select {
	case first := <-ch:
		if first.Type != "LEVEL" || len(first.Map) == 0 {
			t.Errorf("Expected full LEVEL snapshot, got %s with %d tiles", first.Type, len(first.Map))
		}
		if first.Tick != 0 {
			t.Errorf("Expected tick 0, got %d", first.Tick)
		}
	default:
		t.Fatal("Subscribe must queue a snapshot immediately")
	}
	if s.Hub.SubscriberCount() != 1 {
		t.Errorf("Expected 1 subscriber, got %d", s.Hub.SubscriberCount())
	}

	s.Step()
	if next := <-ch; next.Tick != 1 {
		t.Errorf("Expected tick 1 after Step, got %d", next.Tick)
	}
}

func TestSession_UnknownAction(t *testing.T) {
	s := newTestSession(t)
	err := s.ProcessCommand(api.ClientCommand{Action: "DANCE"})
	if !errors.Is(err, ErrUnknownAction) {
		t.Errorf("Expected ErrUnknownAction, got %v", err)
	}
}

func TestSession_MoveCommand(t *testing.T) {
	s := newTestSession(t)

	send(t, s, "MOVE", api.DirectionPayload{Dx: 0, Dy: 1})
	s.Step()

	if got := s.World.Player().Cell(); got != (domain.Position{X: 1, Y: 2}) {
		t.Errorf("Expected witch at (1,2), got %v", got)
	}

	send(t, s, "MOVE", api.DirectionPayload{Dx: -1, Dy: 0})
	s.Step()
	if got := s.World.Player().Cell(); got != (domain.Position{X: 1, Y: 2}) {
		t.Errorf("Wall must block, witch at %v", got)
	}
}

func TestSession_InvalidPayloadIsRecordedButIgnored(t *testing.T) {
	s := newTestSession(t)

	send(t, s, "MOVE", api.DirectionPayload{Dx: 5, Dy: 0})
	s.Step()

	if got := s.World.Player().Cell(); got != (domain.Position{X: 1, Y: 1}) {
		t.Errorf("Invalid move must not move the witch, got %v", got)
	}
	if len(s.Replay.Actions) != 1 {
		t.Errorf("Expected the command recorded, got %d actions", len(s.Replay.Actions))
	}
}

func TestSession_DeadWitchIgnoresCommands(t *testing.T) {
	s := newTestSession(t)
	s.World.Player().Actor.TakeDamage(domain.PlayerLife)

	send(t, s, "MOVE", api.DirectionPayload{Dx: 0, Dy: 1})
	s.Step()

	if got := s.World.Player().Cell(); got != (domain.Position{X: 1, Y: 1}) {
		t.Errorf("Dead witch must not move, got %v", got)
	}
}

func TestSession_CastSpawnsBulletAndEffect(t *testing.T) {
	s := newTestSession(t)
	ch := s.Hub.Register("viewer")

	send(t, s, "CAST", api.CastPayload{Wand: 0, Angle: 0})
	s.Step()

	snap := <-ch
	if len(snap.Effects) == 0 || snap.Effects[0].Kind != "BULLET" {
		t.Fatalf("Expected a BULLET effect, got %+v", snap.Effects)
	}
	if s.World.CountOf(enums.EntityBullet) != 1 {
		t.Errorf("Expected one bullet in flight, got %d", s.World.CountOf(enums.EntityBullet))
	}
	if w := s.World.Player().Actor.Wands[0]; w.Delay == 0 {
		t.Error("Wand must be on cooldown after casting")
	}
}

func TestSession_MagicCircleCarriesWitchOver(t *testing.T) {
	s := newTestSession(t)

	old := s.World.Player()
	old.Player.Golds = 77
	old.Actor.Life = 100
	old.Player.Inventory.Set(20, domain.WandItem(enums.WandCypress))
	uuid := old.Player.UUID

	circle := s.World.EntitiesOf(enums.EntityMagicCircle)[0]
	send(t, s, "INTERACT", api.EntityPayload{TargetID: fmt.Sprint(uint64(circle.ID))})
	s.Step()

	if s.World.Slice != "level1" || !s.World.Current.Valid || s.World.Current.Index != 1 {
		t.Fatalf("Expected level1, got %s %+v", s.World.Slice, s.World.Current)
	}

	p := s.World.Player()
	if p == old {
		t.Fatal("Witch must be respawned on the new level")
	}
	if p.Cell() != (domain.Position{X: 8, Y: 1}) {
		t.Errorf("Expected witch at level1 entry, got %v", p.Cell())
	}
	if p.Player.Golds != 77 || p.Actor.Life != 100 {
		t.Errorf("Golds and life must carry over, got %d / %d", p.Player.Golds, p.Actor.Life)
	}
	if p.Player.UUID != uuid {
		t.Error("UUID must carry over")
	}
	if item, ok := p.Player.Inventory.Get(20); !ok || item.Kind != enums.ItemKindWand {
		t.Error("Inventory must carry over")
	}
	if p.Actor.Wands[0] == nil || p.Actor.Wands[0] == old.Actor.Wands[0] {
		t.Error("Wands must be copied, not shared")
	}
}

func TestSession_InteractTooFar(t *testing.T) {
	s := newTestSession(t)
	chest := s.World.EntitiesOf(enums.EntityChest)[0]

	send(t, s, "INTERACT", api.EntityPayload{TargetID: fmt.Sprint(uint64(chest.ID))})
	s.Step()

	if s.World.GetEntity(chest.ID) == nil {
		t.Error("Chest out of reach must stay")
	}
	if s.World.Player().Player.Golds != domain.PlayerGolds {
		t.Error("Golds must not change")
	}
}

func TestRunReplay_Deterministic(t *testing.T) {
	s := newTestSession(t)

	send(t, s, "MOVE", api.DirectionPayload{Dx: 0, Dy: 1})
	s.Step()
	send(t, s, "CAST", api.CastPayload{Wand: 0, Angle: 1})
	s.Step()
	s.Step()
	send(t, s, "MOVE", api.DirectionPayload{Dx: 1, Dy: 0})
	s.Step()

	got, err := RunReplay(testConfig(), testAtlas(), dungeon.DefaultPalette(), s.Replay)
	if err != nil {
		t.Fatalf("RunReplay: %v", err)
	}

	if got.World.Tick != s.World.Tick {
		t.Errorf("Tick = %d, want %d", got.World.Tick, s.World.Tick)
	}
	a, b := s.World.Player(), got.World.Player()
	if a.Pos != b.Pos {
		t.Errorf("Witch position %v, want %v", b.Pos, a.Pos)
	}
	if a.Actor.Mana != b.Actor.Mana {
		t.Errorf("Mana %d, want %d", b.Actor.Mana, a.Actor.Mana)
	}
	if a.Player.UUID != b.Player.UUID {
		t.Error("Replay must reproduce the witch UUID")
	}
	if len(got.Replay.Actions) != len(s.Replay.Actions) {
		t.Errorf("Replayed %d actions, want %d", len(got.Replay.Actions), len(s.Replay.Actions))
	}
}
