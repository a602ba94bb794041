package dungeon

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

var ErrSliceNotFound = errors.New("slice not found in atlas")

// SliceRect - прямоугольник среза в манифесте.
type SliceRect struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

func (r SliceRect) Rect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

type sliceManifest struct {
	Slices map[string]SliceRect `yaml:"slices"`
}

// Atlas - общее изображение уровней и таблица именованных срезов.
type Atlas struct {
	Image  image.Image
	Slices map[string]image.Rectangle
}

// Slice возвращает прямоугольник среза по имени.
func (a *Atlas) Slice(name string) (image.Rectangle, error) {
	r, ok := a.Slices[name]
	if !ok {
		return image.Rectangle{}, fmt.Errorf("%w: %q", ErrSliceNotFound, name)
	}
	return r, nil
}

// Names возвращает имена срезов по алфавиту (для дебага).
func (a *Atlas) Names() []string {
	names := make([]string, 0, len(a.Slices))
	for n := range a.Slices {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ParseSlices разбирает YAML-манифест:
//
//	slices:
//	  level0: {x: 0, y: 0, w: 32, h: 32}
func ParseSlices(data []byte) (map[string]image.Rectangle, error) {
	var m sliceManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse slices: %w", err)
	}
	out := make(map[string]image.Rectangle, len(m.Slices))
	for name, r := range m.Slices {
		if r.W <= 0 || r.H <= 0 {
			return nil, fmt.Errorf("parse slices: %q has empty size %dx%d", name, r.W, r.H)
		}
		out[name] = r.Rect()
	}
	return out, nil
}

// LoadAtlas читает PNG атласа и YAML манифест срезов.
func LoadAtlas(imagePath, slicesPath string) (*Atlas, error) {
	f, err := os.Open(imagePath)
	if err != nil {
		return nil, fmt.Errorf("open atlas: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode atlas %s: %w", imagePath, err)
	}

	data, err := os.ReadFile(slicesPath)
	if err != nil {
		return nil, fmt.Errorf("read slices: %w", err)
	}
	slices, err := ParseSlices(data)
	if err != nil {
		return nil, err
	}

	return &Atlas{Image: img, Slices: slices}, nil
}

// SaveAtlas пишет атлас обратно на диск (PNG + YAML), например сгенерированный.
func SaveAtlas(a *Atlas, imagePath, slicesPath string) error {
	f, err := os.Create(imagePath)
	if err != nil {
		return fmt.Errorf("create atlas: %w", err)
	}
	if err := png.Encode(f, a.Image); err != nil {
		f.Close()
		return fmt.Errorf("encode atlas: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	m := sliceManifest{Slices: make(map[string]SliceRect, len(a.Slices))}
	for name, r := range a.Slices {
		m.Slices[name] = SliceRect{X: r.Min.X, Y: r.Min.Y, W: r.Dx(), H: r.Dy()}
	}
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal slices: %w", err)
	}
	return os.WriteFile(slicesPath, data, 0o644)
}
