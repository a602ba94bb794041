package actions

import (
	"fmt"
	"math/rand"
	"os"
	"testing"

	"github.com/aratama/magiacircle/internal/core/types/enums"
	"github.com/aratama/magiacircle/internal/domain"
	"github.com/aratama/magiacircle/internal/engine/handlers"
	"github.com/aratama/magiacircle/internal/engine/handlers/events"
	"github.com/aratama/magiacircle/internal/systems"
	"github.com/aratama/magiacircle/pkg/api"
	"github.com/aratama/magiacircle/pkg/dungeon"
	"github.com/aratama/magiacircle/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// newContext - комната 5x3 из пола, ведьма в клетке (1,1).
func newContext() handlers.Context {
	w := domain.NewGameWorld()
	w.Map = domain.NewLevelTileMap(0, 5, 0, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			w.Map.SetTile(x, y, enums.TileFloor)
		}
	}
	w.Map.SetTile(0, 1, enums.TileWall)

	rng := rand.New(rand.NewSource(1))
	sp := dungeon.NewWorldSpawner(w, rng)
	witch := sp.SpawnWitch("tester", domain.Position{X: 1, Y: 1}.Center())

	return handlers.Context{
		World:    w,
		Actor:    witch,
		Resolver: systems.NewCastResolver(rng),
		Spawner:  sp,
		Rng:      rng,
	}
}

func idOf(e *domain.Entity) string { return fmt.Sprint(uint64(e.ID)) }

func TestHandleInteract_MagicCircle(t *testing.T) {
	tests := []struct {
		name    string
		current domain.CurrentLevel
		dest    domain.MagicCircleDestination
		want    domain.NextLevel
	}{
		{"from start level", domain.CurrentLevel{}, domain.DestinationNextLevel, domain.LevelIndex(1)},
		{"from level 3", domain.CurrentLevel{Index: 3, Valid: true}, domain.DestinationNextLevel, domain.LevelIndex(4)},
		{"arena circle", domain.CurrentLevel{Index: 3, Valid: true}, domain.DestinationArena, domain.MultiPlayArena()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newContext()
			ctx.World.Current = tt.current
			ctx.Spawner.SpawnMagicCircle(domain.Position{X: 2, Y: 1}.Center(), tt.dest)
			circle := ctx.World.EntitiesOf(enums.EntityMagicCircle)[0]

			res, err := HandleInteract(ctx, api.EntityPayload{TargetID: idOf(circle)})
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			next, err := events.ParseLevelTransition(res.Event)
			if err != nil {
				t.Fatalf("Expected a level transition event: %v", err)
			}
			if next != tt.want {
				t.Errorf("Got %v, want %v", next, tt.want)
			}
		})
	}
}

func TestHandleInteract_BrokenCircleDoesNothing(t *testing.T) {
	ctx := newContext()
	ctx.Spawner.SpawnBrokenMagicCircle(domain.Position{X: 2, Y: 1}.Center())
	circle := ctx.World.EntitiesOf(enums.EntityBrokenMagicCircle)[0]

	res, err := HandleInteract(ctx, api.EntityPayload{TargetID: idOf(circle)})
	if err != nil {
		t.Fatal(err)
	}
	if res.Event != nil {
		t.Error("Broken circle must not request a level")
	}
}

func TestHandleInteract_ChestPaysGolds(t *testing.T) {
	ctx := newContext()
	ctx.Spawner.SpawnChest(domain.Position{X: 2, Y: 2}.Center(), domain.ChestTypeChest)
	chest := ctx.World.EntitiesOf(enums.EntityChest)[0]

	if _, err := HandleInteract(ctx, api.EntityPayload{TargetID: idOf(chest)}); err != nil {
		t.Fatal(err)
	}

	want := domain.PlayerGolds + dungeon.ChestGolds[domain.ChestTypeChest]
	if ctx.Actor.Player.Golds != want {
		t.Errorf("Expected %d golds, got %d", want, ctx.Actor.Player.Golds)
	}
	if ctx.World.GetEntity(chest.ID) != nil {
		t.Error("Opened chest must be removed")
	}
}

func TestHandleInteract_PicksUpDroppedItem(t *testing.T) {
	ctx := newContext()
	ctx.Spawner.SpawnDroppedItem(domain.Position{X: 1, Y: 2}.Center(), domain.WandItem(enums.WandCypress))
	item := ctx.World.EntitiesOf(enums.EntityDroppedItem)[0]
	free := ctx.Actor.Player.Inventory.FreeSlots()

	if _, err := HandleInteract(ctx, api.EntityPayload{TargetID: idOf(item)}); err != nil {
		t.Fatal(err)
	}

	if ctx.Actor.Player.Inventory.FreeSlots() != free-1 {
		t.Error("Item must land in the inventory")
	}
	if ctx.World.GetEntity(item.ID) != nil {
		t.Error("Picked item must be removed from the floor")
	}
}

func TestHandleInteract_Rejections(t *testing.T) {
	ctx := newContext()
	ctx.Spawner.SpawnChest(domain.Position{X: 4, Y: 1}.Center(), domain.ChestTypeCrate)
	far := ctx.World.EntitiesOf(enums.EntityChest)[0]

	res, err := HandleInteract(ctx, api.EntityPayload{TargetID: idOf(far)})
	if err != nil || res.MsgType != "ERROR" {
		t.Errorf("Far target: expected ERROR result, got %+v (%v)", res, err)
	}
	if ctx.World.GetEntity(far.ID) == nil {
		t.Error("Far chest must stay")
	}

	res, err = HandleInteract(ctx, api.EntityPayload{TargetID: "12345"})
	if err != nil || res.MsgType != "ERROR" {
		t.Errorf("Missing target: expected ERROR result, got %+v (%v)", res, err)
	}

	if _, err := HandleInteract(ctx, api.EntityPayload{TargetID: "abc"}); err == nil {
		t.Error("Malformed id must be an error")
	}
}

func TestHandleMove(t *testing.T) {
	ctx := newContext()

	res, _ := HandleMove(ctx, api.DirectionPayload{Dx: -1})
	if res.MsgType != "ERROR" || ctx.Actor.Cell() != (domain.Position{X: 1, Y: 1}) {
		t.Errorf("Wall must block: %+v at %v", res, ctx.Actor.Cell())
	}

	if _, err := HandleMove(ctx, api.DirectionPayload{Dx: 1, Dy: 1}); err != nil {
		t.Fatal(err)
	}
	if ctx.Actor.Cell() != (domain.Position{X: 2, Y: 2}) {
		t.Errorf("Expected (2,2), got %v", ctx.Actor.Cell())
	}
}

func TestHandleCast(t *testing.T) {
	ctx := newContext()

	res, err := HandleCast(ctx, api.CastPayload{Wand: 0, Angle: 0})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Effects) != 1 {
		t.Fatalf("Expected one effect, got %d", len(res.Effects))
	}
	if ctx.World.CountOf(enums.EntityBullet) != 1 {
		t.Error("Bullet must be spawned")
	}

	res, _ = HandleCast(ctx, api.CastPayload{Wand: 2})
	if res.MsgType != "ERROR" {
		t.Error("Empty wand slot must be reported")
	}
}

func TestHandleMoveItem(t *testing.T) {
	ctx := newContext()
	inv := ctx.Actor.Player.Inventory
	first, _ := inv.Get(0)

	_, err := HandleMoveItem(ctx, api.MoveItemPayload{
		From: api.SlotPayload{Area: "INVENTORY", Index: 0},
		To:   api.SlotPayload{Area: "INVENTORY", Index: 40},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got, ok := inv.Get(40); !ok || got != first {
		t.Errorf("Item must move to slot 40, got %v", got)
	}

	res, err := HandleMoveItem(ctx, api.MoveItemPayload{
		From: api.SlotPayload{Area: "INVENTORY", Index: 1},
		To:   api.SlotPayload{Area: "INVENTORY", Index: 40},
	})
	if err != nil || res.MsgType != "ERROR" {
		t.Errorf("Occupied target: expected ERROR result, got %+v (%v)", res, err)
	}

	if _, err := HandleMoveItem(ctx, api.MoveItemPayload{
		From: api.SlotPayload{Area: "POCKET"},
		To:   api.SlotPayload{Area: "INVENTORY"},
	}); err == nil {
		t.Error("Unknown area must be an error")
	}
}

func TestHandleInit_Renames(t *testing.T) {
	ctx := newContext()
	if _, err := HandleInit(ctx, api.InitPayload{Name: "alice"}); err != nil {
		t.Fatal(err)
	}
	if ctx.Actor.Name != "alice" || ctx.Actor.Player.Name != "alice" {
		t.Errorf("Expected rename, got %q", ctx.Actor.Name)
	}
}
