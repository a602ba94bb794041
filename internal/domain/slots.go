package domain

import "fmt"

// SlotArea - где лежит предмет: инвентарь, слот заклинания в посохе,
// сам посох в руке или экипировка.
type SlotArea uint8

const (
	SlotInventory SlotArea = iota
	SlotWandSpell
	SlotWand
	SlotEquipment
)

var slotAreaNames = map[SlotArea]string{
	SlotInventory: "INVENTORY",
	SlotWandSpell: "WAND_SPELL",
	SlotWand:      "WAND",
	SlotEquipment: "EQUIPMENT",
}

func (a SlotArea) String() string {
	if s, ok := slotAreaNames[a]; ok {
		return s
	}
	return "UNKNOWN"
}

func (a SlotArea) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *SlotArea) UnmarshalText(text []byte) error {
	for k, v := range slotAreaNames {
		if v == string(text) {
			*a = k
			return nil
		}
	}
	return fmt.Errorf("unknown slot area %q", text)
}

// SlotRef - адрес слота. Wand - номер посоха (для WAND и WAND_SPELL),
// Index - номер слота инвентаря, заклинания в посохе или экипировки.
type SlotRef struct {
	Area  SlotArea `json:"area"`
	Wand  int      `json:"wand,omitempty"`
	Index int      `json:"index"`
}

func (r SlotRef) String() string {
	switch r.Area {
	case SlotWandSpell:
		return fmt.Sprintf("%s[%d:%d]", r.Area, r.Wand, r.Index)
	case SlotWand:
		return fmt.Sprintf("%s[%d]", r.Area, r.Wand)
	default:
		return fmt.Sprintf("%s[%d]", r.Area, r.Index)
	}
}
