package spell

import (
	"fmt"

	"github.com/aratama/magiacircle/internal/domain"
)

// Cast - поведение заклинания при касте. Закрытая сумма типов:
// BulletCast | HealCast | SpeedUpDownCast | MultipleCast.
type Cast interface {
	isCast()
}

// BulletCast - выстрел снарядом.
type BulletCast struct {
	Slice          string
	ColliderRadius float64
	// Скорость в пикселях за кадр, умноженных на 100
	Speed      float64
	Lifetime   int
	Damage     int
	Impulse    float64
	Scattering float64 // ширина случайного разброса угла, радианы
	Light      domain.LightParams
}

// HealCast - лечение на фиксированную величину domain.HealAmount.
type HealCast struct{}

// SpeedUpDownCast - меняет скорость следующего снаряда на (1 + Delta).
type SpeedUpDownCast struct {
	Delta float64
}

// MultipleCast - разыгрывает Amount следующих слотов в том же касте.
type MultipleCast struct {
	Amount int
}

func (BulletCast) isCast()      {}
func (HealCast) isCast()        {}
func (SpeedUpDownCast) isCast() {}
func (MultipleCast) isCast()    {}

// Props - неизменяемое описание заклинания.
type Props struct {
	Name        string
	Description string
	ManaDrain   int
	CastDelay   int // кадры
	Icon        string
	Cast        Cast
}

// Appendix - строка с числовыми характеристиками для подсказки в UI.
func Appendix(c Cast) string {
	switch c := c.(type) {
	case BulletCast:
		return fmt.Sprintf("Damage:%d  Knockback:%g\nSpeed:%g  Lifetime:%d\nScattering:%g  Size:%g",
			c.Damage, c.Impulse*0.001, c.Speed, c.Lifetime, c.Scattering, c.ColliderRadius)
	case HealCast:
		return fmt.Sprintf("Heal:%d", domain.HealAmount)
	case SpeedUpDownCast, MultipleCast:
		return ""
	default:
		panic(fmt.Sprintf("spell: unknown cast %T", c))
	}
}
