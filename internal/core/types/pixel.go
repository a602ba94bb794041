package types

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Pixel представляет упакованный 32-битный цвет пикселя карты уровня.
// Формат: 0xRRGGBBAA. Используется как ключ палитры при декодировании уровней,
// поэтому сравнение двух Pixel - это точное сравнение цветов.
type Pixel uint32

const (
	shiftR = 24
	shiftG = 16
	shiftB = 8

	maskChannel = 0xFF
)

// MakePixel собирает Pixel из 8-битных каналов.
func MakePixel(r, g, b, a uint8) Pixel {
	return Pixel(uint32(r)<<shiftR | uint32(g)<<shiftG | uint32(b)<<shiftB | uint32(a))
}

// PixelFromColor приводит произвольный color.Color к не-премультиплицированному RGBA.
//
// Для полностью непрозрачных цветов результат совпадает с исходными каналами,
// для прозрачных - каналы деградируют, но карты уровней используют только
// непрозрачные цвета и полностью прозрачный фон.
func PixelFromColor(c color.Color) Pixel {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return MakePixel(n.R, n.G, n.B, n.A)
}

func (p Pixel) R() uint8 { return uint8(p >> shiftR & maskChannel) }
func (p Pixel) G() uint8 { return uint8(p >> shiftG & maskChannel) }
func (p Pixel) B() uint8 { return uint8(p >> shiftB & maskChannel) }
func (p Pixel) A() uint8 { return uint8(p & maskChannel) }

// NRGBA возвращает цвет для записи в image.NRGBA (нужно тестам и редактору).
func (p Pixel) NRGBA() color.NRGBA {
	return color.NRGBA{R: p.R(), G: p.G(), B: p.B(), A: p.A()}
}

// String возвращает цвет в формате "#RRGGBBAA".
func (p Pixel) String() string {
	return fmt.Sprintf("#%08X", uint32(p))
}

// ParsePixel разбирает "#RRGGBB" или "#RRGGBBAA" (решетка необязательна).
// Без альфа-канала цвет считается непрозрачным.
func ParsePixel(s string) (Pixel, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(hex) {
	case 6:
		hex += "FF"
	case 8:
	default:
		return 0, fmt.Errorf("invalid pixel color %q: expected #RRGGBB or #RRGGBBAA", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid pixel color %q: %w", s, err)
	}
	return Pixel(v), nil
}
