package engine

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/aratama/magiacircle/internal/domain"
	"gopkg.in/yaml.v3"
)

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно. От него зависят выбор точки входа,
	// расстановка врагов, разброс снарядов и UUID ведьмы.
	Seed int64 `yaml:"seed"`

	Port string `yaml:"port"`

	// Атлас уровней. Пустые пути - атлас генерируется процедурно.
	AtlasImage  string `yaml:"atlas_image"`
	AtlasSlices string `yaml:"atlas_slices"`
	PaletteFile string `yaml:"palette"`

	// ReplayDir - куда писать реплеи. Пусто - не писать.
	ReplayDir string `yaml:"replay_dir"`

	TickRate       int    `yaml:"tick_rate"` // кадров в секунду
	Levels         int    `yaml:"levels"`
	PlayerName     string `yaml:"player_name"`
	EnemyDensity   int    `yaml:"enemy_density"`
	EnemiesPerKind int    `yaml:"enemies_per_kind"`
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:           time.Now().UnixNano(),
		Port:           "8080",
		TickRate:       60,
		Levels:         domain.DefaultLevels,
		PlayerName:     "witch",
		EnemyDensity:   domain.EnemyDensityThreshold,
		EnemiesPerKind: domain.EnemiesPerKind,
	}
}

// LoadConfig накладывает YAML-файл поверх значений по умолчанию.
// Пустой путь - только значения по умолчанию и окружение.
func LoadConfig(path string) (Config, error) {
	cfg := NewConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// ApplyEnv переопределяет поля из окружения: MC_PORT, MC_SEED, MC_PLAYER_NAME.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("MC_PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("MC_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("MC_SEED: %w", err)
		}
		c.Seed = seed
	}
	if v := os.Getenv("MC_PLAYER_NAME"); v != "" {
		c.PlayerName = v
	}
	return nil
}

// Validate проверяет, что с конфигом можно стартовать.
func (c Config) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("tick_rate must be positive, got %d", c.TickRate)
	}
	if c.Levels <= 0 {
		return fmt.Errorf("levels must be positive, got %d", c.Levels)
	}
	if (c.AtlasImage == "") != (c.AtlasSlices == "") {
		return fmt.Errorf("atlas_image and atlas_slices must be set together")
	}
	return nil
}

// TickInterval - длительность одного кадра.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}
