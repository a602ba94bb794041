package spell

import (
	"errors"
	"strings"
	"testing"

	"github.com/aratama/magiacircle/internal/core/types/enums"
)

func TestValidateCatalog(t *testing.T) {
	if err := ValidateCatalog(); err != nil {
		t.Fatalf("Catalog is incomplete: %v", err)
	}
}

func TestLookup_EveryCastIsKnown(t *testing.T) {
	for _, s := range enums.AllSpells {
		t.Run(s.String(), func(t *testing.T) {
			p := MustLookup(s)
			switch p.Cast.(type) {
			case BulletCast, HealCast, SpeedUpDownCast, MultipleCast:
			default:
				t.Errorf("Unexpected cast %T", p.Cast)
			}
			if p.ManaDrain <= 0 {
				t.Errorf("Mana drain must be positive, got %d", p.ManaDrain)
			}
		})
	}
}

func TestLookup_Missing(t *testing.T) {
	_, err := Lookup(enums.SpellNone)
	if !errors.Is(err, ErrMissingProps) {
		t.Errorf("Expected ErrMissingProps, got %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustLookup must panic on a missing record")
		}
	}()
	MustLookup(enums.SpellType(200))
}

func TestLookup_Values(t *testing.T) {
	bolt := MustLookup(enums.SpellMagicBolt)
	if bolt.ManaDrain != 50 || bolt.CastDelay != 10 {
		t.Errorf("Magic bolt cost/delay = %d/%d", bolt.ManaDrain, bolt.CastDelay)
	}
	b, ok := bolt.Cast.(BulletCast)
	if !ok || b.Speed != 100 || b.Damage != 8 || b.Scattering != 0.4 {
		t.Errorf("Unexpected bullet %+v", bolt.Cast)
	}

	if mc := MustLookup(enums.SpellTripleCast).Cast.(MultipleCast); mc.Amount != 3 {
		t.Errorf("Triple cast amount = %d", mc.Amount)
	}
	if sd := MustLookup(enums.SpellBulletSpeedDown).Cast.(SpeedUpDownCast); sd.Delta != -0.5 {
		t.Errorf("Speed down delta = %v", sd.Delta)
	}
}

func TestAppendix(t *testing.T) {
	got := Appendix(MustLookup(enums.SpellMagicBolt).Cast)
	for _, want := range []string{"Damage:8", "Knockback:20", "Speed:100", "Lifetime:240", "Scattering:0.4", "Size:5"} {
		if !strings.Contains(got, want) {
			t.Errorf("Appendix %q misses %q", got, want)
		}
	}
	if Appendix(HealCast{}) != "Heal:10" {
		t.Errorf("Unexpected heal appendix %q", Appendix(HealCast{}))
	}
	if Appendix(MultipleCast{Amount: 2}) != "" {
		t.Error("Multi cast has no appendix")
	}
}
