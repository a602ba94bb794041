package domain

// ActorComponent - Жизнь, мана и посохи персонажа.
type ActorComponent struct {
	Life    int  `json:"life"`
	MaxLife int  `json:"maxLife"`
	Mana    int  `json:"mana"`
	MaxMana int  `json:"maxMana"`
	IsDead  bool `json:"isDead"`

	Wands       [MaxWands]*Wand `json:"wands"`
	CurrentWand int             `json:"currentWand"`

	// Накопленный множитель скорости для следующей пули.
	PendingSpeed    float64 `json:"pendingSpeed,omitempty"`
	hasPendingSpeed bool
}

func NewActor(life, maxLife, mana int) *ActorComponent {
	return &ActorComponent{Life: life, MaxLife: maxLife, Mana: mana, MaxMana: mana}
}

// TakeDamage наносит урон. Возвращает true, если цель погибла.
func (a *ActorComponent) TakeDamage(amount int) bool {
	if a.IsDead {
		return false
	}
	if amount < 0 {
		amount = 0
	}

	a.Life -= amount
	if a.Life <= 0 {
		a.Life = 0
		a.IsDead = true
		return true
	}
	return false
}

// Heal лечит, но не выше максимума и не мертвых.
func (a *ActorComponent) Heal(amount int) {
	if a.IsDead {
		return
	}
	a.Life += amount
	if a.Life > a.MaxLife {
		a.Life = a.MaxLife
	}
}

// SpendMana тратит ману. Возвращает false, если не хватило (ничего не меняется).
func (a *ActorComponent) SpendMana(cost int) bool {
	if a.Mana < cost {
		return false
	}
	a.Mana -= cost
	return true
}

func (a *ActorComponent) RestoreMana(amount int) {
	a.Mana += amount
	if a.Mana > a.MaxMana {
		a.Mana = a.MaxMana
	}
}

// PushSpeedDelta копит модификатор скорости: множители перемножаются.
func (a *ActorComponent) PushSpeedDelta(delta float64) {
	if !a.hasPendingSpeed {
		a.PendingSpeed = 1
		a.hasPendingSpeed = true
	}
	a.PendingSpeed *= 1 + delta
}

// TakeSpeedMultiplier забирает накопленный множитель и сбрасывает его.
func (a *ActorComponent) TakeSpeedMultiplier() float64 {
	if !a.hasPendingSpeed {
		return 1
	}
	m := a.PendingSpeed
	a.PendingSpeed = 0
	a.hasPendingSpeed = false
	return m
}

// ActiveWand возвращает посох в слоте, nil если пусто.
func (a *ActorComponent) ActiveWand(slot int) *Wand {
	if slot < 0 || slot >= len(a.Wands) {
		return nil
	}
	return a.Wands[slot]
}
