package config

import "testing"

func TestConstants(t *testing.T) {
	if DefaultColumns <= 0 || DefaultColumns > MaxColumns {
		t.Fatalf("DefaultColumns = %d out of range", DefaultColumns)
	}
	if DefaultCellWidth < MinCellWidth {
		t.Fatalf("DefaultCellWidth below MinCellWidth")
	}
	if DefaultCellHeight <= 0 {
		t.Fatalf("DefaultCellHeight must be positive")
	}
	if AppName == "" || EnvPrefix == "" {
		t.Fatalf("AppName and EnvPrefix should not be empty")
	}
}
