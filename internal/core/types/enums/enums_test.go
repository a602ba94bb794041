package enums

import (
	"encoding/json"
	"testing"
)

func TestTileKind_ParseAndString(t *testing.T) {
	tests := []struct {
		in   string
		want TileKind
	}{
		{"wall", TileWall},
		{"FLOOR", TileFloor},
		{"blank", TileBlank},
		{"lava", TileBlank},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseTileKind(tt.in); got != tt.want {
				t.Errorf("ParseTileKind(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
	if TileKind(99).String() != "UNKNOWN" {
		t.Error("Out of range tile kind must print UNKNOWN")
	}
}

func TestSpellType_AllSpellsNamed(t *testing.T) {
	for _, s := range AllSpells {
		if s.IsNone() {
			t.Fatal("AllSpells must not contain SpellNone")
		}
		name := s.String()
		if name == "UNKNOWN" {
			t.Errorf("Spell %d has no name", s)
		}
		if ParseSpellType(name) != s {
			t.Errorf("ParseSpellType(%q) did not return %d", name, s)
		}
	}
}

func TestGameEntity_TextRoundTrip(t *testing.T) {
	data, err := json.Marshal(map[string]GameEntity{"m": MarkerStoneLantern})
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(data) != `{"m":"STONE_LANTERN"}` {
		t.Errorf("Unexpected JSON %s", data)
	}

	var back map[string]GameEntity
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if back["m"] != MarkerStoneLantern {
		t.Errorf("Got %s, want STONE_LANTERN", back["m"])
	}
	if ParseGameEntity("dragon_egg") != MarkerUnknown {
		t.Error("Unknown marker names must parse to MarkerUnknown")
	}
}

func TestEntityKind_Parse(t *testing.T) {
	if ParseEntityKind("wall_collider") != EntityWallCollider {
		t.Error("Expected WALL_COLLIDER")
	}
	if ParseEntityKind("ghost") != EntityUnknown {
		t.Error("Expected unknown")
	}
	if ItemKindWand.String() != "WAND" || WandCypress.String() != "CYPRESS_WAND" {
		t.Error("Item enums must be named")
	}
}
