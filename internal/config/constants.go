package config

// Grid defaults.
const (
	DefaultColumns = 3

	// DefaultCellWidth is the width of one grid column in terminal cells.
	DefaultCellWidth = 14

	// DefaultCellHeight is the height of one grid row in terminal lines.
	DefaultCellHeight = 3

	// BoardGap is the horizontal space between boards.
	BoardGap = 2

	// MaxColumns bounds the configured column count.
	MaxColumns = 8
)

// Application settings.
const (
	AppName        = "gridswap"
	ConfigFileName = "config"
	EnvPrefix      = "GRIDSWAP"
	DefaultTheme   = "default"
	ExportFileName = "gridswap_layout.pdf"
)
