package enums

// ItemKind - категория предмета в инвентаре.
type ItemKind uint8

const (
	ItemKindUnknown ItemKind = iota
	ItemKindWand
	ItemKindSpell
	ItemKindEquipment
)

var itemKindToString = map[ItemKind]string{
	ItemKindWand:      "WAND",
	ItemKindSpell:     "SPELL",
	ItemKindEquipment: "EQUIPMENT",
}

func (k ItemKind) String() string {
	if val, ok := itemKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

func (k ItemKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// WandType - модель посоха. Определяет число слотов.
type WandType uint8

const (
	WandUnknown WandType = iota
	WandCypress
)

var wandTypeToString = map[WandType]string{
	WandCypress: "CYPRESS_WAND",
}

func (w WandType) String() string {
	if val, ok := wandTypeToString[w]; ok {
		return val
	}
	return "UNKNOWN"
}

func (w WandType) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// EquipmentType - экипировка (не влияет на каст).
type EquipmentType uint8

const (
	EquipmentUnknown EquipmentType = iota
	EquipmentLantern
)

var equipmentTypeToString = map[EquipmentType]string{
	EquipmentLantern: "LANTERN",
}

func (e EquipmentType) String() string {
	if val, ok := equipmentTypeToString[e]; ok {
		return val
	}
	return "UNKNOWN"
}

func (e EquipmentType) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}
