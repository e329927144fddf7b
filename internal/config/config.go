package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Grid       GridConfig `mapstructure:"grid"`
	UI         UIConfig   `mapstructure:"ui"`
	LogFile    string     `mapstructure:"log_file"`
	BoardsFile string     `mapstructure:"boards_file"`
}

// GridConfig holds cell metrics. Widths and heights are in terminal cells.
type GridConfig struct {
	Columns    int `mapstructure:"columns"`
	CellWidth  int `mapstructure:"cell_width"`
	CellHeight int `mapstructure:"cell_height"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme string `mapstructure:"theme"`
}

var ErrInvalidConfig = errors.New("invalid config")

// Load reads configuration from file and env. Env var overrides use prefix
// GRIDSWAP_, e.g. GRIDSWAP_GRID_COLUMNS=4. GRIDSWAP_CONFIG names an explicit
// config file.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	if cfgPath := os.Getenv(EnvPrefix + "_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, AppName))
		}
		v.SetConfigName(ConfigFileName)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	return decode(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("grid.columns", DefaultColumns)
	v.SetDefault("grid.cell_width", DefaultCellWidth)
	v.SetDefault("grid.cell_height", DefaultCellHeight)
	v.SetDefault("ui.theme", DefaultTheme)
	v.SetDefault("log_file", "")
	v.SetDefault("boards_file", "")
}

func decode(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Grid.Columns <= 0 || c.Grid.Columns > MaxColumns {
		return fmt.Errorf("%w: grid.columns must be 1-%d, got %d", ErrInvalidConfig, MaxColumns, c.Grid.Columns)
	}
	if c.Grid.CellWidth < MinCellWidth {
		return fmt.Errorf("%w: grid.cell_width must be at least %d, got %d", ErrInvalidConfig, MinCellWidth, c.Grid.CellWidth)
	}
	if c.Grid.CellHeight <= 0 {
		return fmt.Errorf("%w: grid.cell_height must be positive, got %d", ErrInvalidConfig, c.Grid.CellHeight)
	}
	return nil
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	c, _ := decode(v)
	return c
}
