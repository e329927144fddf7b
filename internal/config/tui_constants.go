package config

// Layout constants.
const (
	// HeaderHeight is the number of lines above the first board.
	HeaderHeight = 2

	// BoardTitleHeight is the number of lines a board's title row takes,
	// including the top border.
	BoardTitleHeight = 2

	// BoardPadding is the left inset of the first board.
	BoardPadding = 1

	// MinCellWidth is the narrowest usable grid column.
	MinCellWidth = 6
)

// Display limits.
const (
	// TruncationSuffix appended to truncated labels.
	TruncationSuffix = "…"
)
