package graph

import "testing"

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		v, tick float64
		want    string
	}{
		{1.2345, 0.1, "1.2"},
		{0.5, 0.01, "0.50"},
		{1234, 100, "1234"},
		{-2.5, 0.5, "-2.5"},
		{12.4, 1, "12"},
		{-1e-12, 1, "0"},
		{3, 0.2, "3.0"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.v, tt.tick); got != tt.want {
			t.Errorf("FormatNumber(%v, %v) = %q, want %q", tt.v, tt.tick, got, tt.want)
		}
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		v, tick float64
		want    string
	}{
		{0, 1, "00:00:00"},
		{3600.5, 0.5, "01:00:00.5"},
		{90, 300, "00:01"},
		{86400 * 2, 86400, "01/03"},
		{0, 604800, "1970/01/01"},
	}
	for _, tt := range tests {
		if got := FormatTime(tt.v, tt.tick); got != tt.want {
			t.Errorf("FormatTime(%v, %v) = %q, want %q", tt.v, tt.tick, got, tt.want)
		}
	}
}

func TestFormatLabel(t *testing.T) {
	if got := FormatLabel(60, 60, LabelTimeInside); got != "00:01" {
		t.Errorf("time label = %q", got)
	}
	if got := FormatLabel(60, 60, LabelInside); got != "60" {
		t.Errorf("number label = %q", got)
	}
}

func TestLabelPos(t *testing.T) {
	if LabelTimeOutside.Next() != LabelNone {
		t.Error("Next does not wrap")
	}
	if LabelInsideRot.String() != "inside-rot" {
		t.Errorf("String = %q", LabelInsideRot.String())
	}
	if LabelPos(42).String() != "LabelPos(42)" {
		t.Errorf("String of unknown = %q", LabelPos(42).String())
	}
	if !LabelTimeInside.IsTime() || LabelAxis.IsTime() {
		t.Error("IsTime wrong")
	}
	if !LabelOutsideRot.Outside() || LabelInsideRot.Outside() {
		t.Error("Outside wrong")
	}
}
