package systems

import (
	"math/rand"

	"github.com/aratama/magiacircle/internal/core/types/enums"
	"github.com/aratama/magiacircle/internal/domain"
	"github.com/aratama/magiacircle/internal/spell"
	"github.com/aratama/magiacircle/pkg/logger"
	"github.com/sirupsen/logrus"
)

// MaxCastDepth - предел вложенности мультикаста (Dual внутри Triple и т.д.).
// Заклинания глубже предела пропускаются без затрат.
const MaxCastDepth = 8

// CastResolver разыгрывает касты посохов. Источник случайности
// внедряется снаружи, чтобы разброс снарядов был воспроизводим.
type CastResolver struct {
	rng *rand.Rand
}

func NewCastResolver(rng *rand.Rand) *CastResolver {
	return &CastResolver{rng: rng}
}

// Trigger пытается выстрелить из посоха в направлении aim (радианы).
// Возвращает эффекты в порядке разрешения. Пустой результат - нормальная
// игровая ситуация (перезарядка, пустой слот, не хватило маны).
func (r *CastResolver) Trigger(actor *domain.ActorComponent, wand *domain.Wand, aim float64) []domain.Effect {
	castLogger := logger.Log.WithFields(logrus.Fields{
		"component": "cast_system",
		"wand":      wand.Type,
		"cursor":    wand.Cursor,
	})

	n := len(wand.Slots)
	if n == 0 {
		return nil
	}

	// 1. Перезарядка: ничего не происходит
	if !wand.IsReady() {
		castLogger.WithField("delay", wand.Delay).Debug("Cast ignored: wand is cooling down.")
		return nil
	}

	// 2. Пустой слот прозрачен: сдвигаем курсор без затрат
	cursor := wand.Cursor % n
	current := wand.Slots[cursor]
	if current.IsNone() {
		wand.Cursor = (cursor + 1) % n
		castLogger.Debug("Empty slot skipped.")
		return nil
	}

	// 3. Разрешаем слот и все, что он захватил мультикастом
	var effects []domain.Effect
	consumed, ok := r.resolve(actor, wand, cursor, 0, aim, &effects)

	// 4. Задержку ставит только внешний каст
	if ok {
		wand.Delay = spell.MustLookup(current).CastDelay
	}

	// 5. Курсор за все занятые слоты, с переходом через конец
	wand.Cursor = nextFilledSlot(wand, cursor+consumed)

	castLogger.WithFields(logrus.Fields{
		"spell":    current,
		"success":  ok,
		"consumed": consumed,
		"effects":  len(effects),
		"next":     wand.Cursor,
	}).Debug("Cast resolved.")

	return effects
}

// resolve разыгрывает заклинание в слоте i и возвращает число занятых слотов.
// ok=false, если заклинание не сработало (мана, предел глубины).
func (r *CastResolver) resolve(actor *domain.ActorComponent, wand *domain.Wand, i, depth int, aim float64, out *[]domain.Effect) (consumed int, ok bool) {
	t := wand.SpellAt(i)
	if t.IsNone() {
		return 1, false
	}

	if depth > MaxCastDepth {
		logger.For("cast_system").WithFields(logrus.Fields{
			"spell": t,
			"depth": depth,
		}).Warn("Multicast depth limit reached, spell skipped.")
		return 1, false
	}

	props := spell.MustLookup(t)

	if !actor.SpendMana(props.ManaDrain) {
		logger.For("cast_system").WithFields(logrus.Fields{
			"spell": t,
			"mana":  actor.Mana,
			"cost":  props.ManaDrain,
		}).Debug("Not enough mana.")
		return 1, false
	}

	switch c := props.Cast.(type) {
	case spell.BulletCast:
		*out = append(*out, r.emitBullet(actor, t, c, aim))

	case spell.HealCast:
		*out = append(*out, domain.HealEffect{Spell: t, Amount: domain.HealAmount})

	case spell.SpeedUpDownCast:
		actor.PushSpeedDelta(c.Delta)

	case spell.MultipleCast:
		// Следующие слоты без перехода через конец посоха.
		// Пустые слоты пропускаются и в счет не идут.
		next := i + 1
		for resolved := 0; resolved < c.Amount && next < len(wand.Slots); {
			if wand.Slots[next].IsNone() {
				next++
				continue
			}
			used, _ := r.resolve(actor, wand, next, depth+1, aim, out)
			next += used
			resolved++
		}
		return next - i, true

	default:
		panic("cast_system: unhandled spell cast")
	}

	return 1, true
}

// emitBullet применяет разброс и накопленный множитель скорости.
func (r *CastResolver) emitBullet(actor *domain.ActorComponent, t enums.SpellType, c spell.BulletCast, aim float64) domain.SpawnBullet {
	return domain.SpawnBullet{
		Spell:          t,
		Slice:          c.Slice,
		ColliderRadius: c.ColliderRadius,
		Speed:          c.Speed * actor.TakeSpeedMultiplier(),
		Lifetime:       c.Lifetime,
		Damage:         c.Damage,
		Impulse:        c.Impulse,
		Angle:          aim + (r.rng.Float64()-0.5)*c.Scattering,
		Light:          c.Light,
	}
}

// nextFilledSlot ищет первый непустой слот начиная с from (с переходом через конец).
// Если посох пуст - 0.
func nextFilledSlot(wand *domain.Wand, from int) int {
	n := len(wand.Slots)
	for k := 0; k < n; k++ {
		j := (from + k) % n
		if !wand.Slots[j].IsNone() {
			return j
		}
	}
	return 0
}

// TickActor - один кадр: перезарядка посохов и восстановление маны.
func TickActor(actor *domain.ActorComponent) {
	for _, w := range actor.Wands {
		if w != nil && w.Delay > 0 {
			w.Delay--
		}
	}
	actor.RestoreMana(domain.ManaRegenTick)
}
