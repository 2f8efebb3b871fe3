package bit

import (
	"testing"
)

func TestCombine(t *testing.T) {
	tests := []struct {
		name string
		high uint8
		low  uint8
		want uint16
	}{
		{"Combines high and low bytes", 0xAB, 0xCD, 0xABCD},
		{"Zero value", 0x00, 0x00, 0x0000},
		{"High byte only", 0xFF, 0x00, 0xFF00},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Combine(tt.high, tt.low); got != tt.want {
				t.Errorf("Combine() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckedAdd(t *testing.T) {
	tests := []struct {
		name         string
		a, b         uint8
		want         uint8
		wantOverflow bool
	}{
		{"No overflow", 5, 3, 8, false},
		{"Exactly 255", 0xFF, 0, 0xFF, false},
		{"Wraps on overflow", 0xFF, 1, 0, true},
		{"Large operands", 200, 100, 44, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, overflow := CheckedAdd(tt.a, tt.b)
			if got != tt.want || overflow != tt.wantOverflow {
				t.Errorf("CheckedAdd() = (%v, %v), want (%v, %v)", got, overflow, tt.want, tt.wantOverflow)
			}
		})
	}
}

func TestNibbles(t *testing.T) {
	if got := HighNibble(0xAB); got != 0xA {
		t.Errorf("HighNibble(0xAB) = %v, want 0xA", got)
	}
	if got := LowNibble(0xAB); got != 0xB {
		t.Errorf("LowNibble(0xAB) = %v, want 0xB", got)
	}
}

func TestBCD(t *testing.T) {
	tests := []struct {
		value                uint8
		hundreds, tens, ones uint8
	}{
		{157, 1, 5, 7},
		{0, 0, 0, 0},
		{9, 0, 0, 9},
		{42, 0, 4, 2},
		{255, 2, 5, 5},
	}
	for _, tt := range tests {
		h, te, o := BCD(tt.value)
		if h != tt.hundreds || te != tt.tens || o != tt.ones {
			t.Errorf("BCD(%d) = (%d, %d, %d), want (%d, %d, %d)",
				tt.value, h, te, o, tt.hundreds, tt.tens, tt.ones)
		}
	}
}
