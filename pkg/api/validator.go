package api

import (
	"errors"
	"fmt"
	"math"
)

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

// Пределы payload
const (
	MaxNameLength = 32
	MaxWandSlot   = 4
)

var slotAreas = map[string]bool{
	"INVENTORY":  true,
	"WAND_SPELL": true,
	"WAND":       true,
	"EQUIPMENT":  true,
}

func (p InitPayload) Validate() error {
	if len([]rune(p.Name)) > MaxNameLength {
		return fmt.Errorf("name longer than %d characters", MaxNameLength)
	}
	return nil
}

func (p DirectionPayload) Validate() error {
	if p.Dx == 0 && p.Dy == 0 {
		return errors.New("movement vector cannot be zero")
	}
	if p.Dx < -1 || p.Dx > 1 || p.Dy < -1 || p.Dy > 1 {
		return errors.New("movement step too large")
	}
	return nil
}

func (p CastPayload) Validate() error {
	if p.Wand < 0 || p.Wand >= MaxWandSlot {
		return fmt.Errorf("wand slot %d out of range", p.Wand)
	}
	if math.IsNaN(p.Angle) || math.IsInf(p.Angle, 0) {
		return errors.New("angle must be finite")
	}
	return nil
}

func (p SlotPayload) Validate() error {
	if !slotAreas[p.Area] {
		return fmt.Errorf("unknown slot area %q", p.Area)
	}
	if p.Index < 0 || p.Wand < 0 {
		return errors.New("slot index cannot be negative")
	}
	return nil
}

func (p MoveItemPayload) Validate() error {
	if err := p.From.Validate(); err != nil {
		return fmt.Errorf("from: %w", err)
	}
	if err := p.To.Validate(); err != nil {
		return fmt.Errorf("to: %w", err)
	}
	return nil
}

func (p EntityPayload) Validate() error {
	if p.TargetID == "" {
		return errors.New("targetId is required")
	}
	return nil
}
