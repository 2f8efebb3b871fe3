package cpu

import "testing"

func TestOpcodeFields(t *testing.T) {
	op := opcode(0xD12F)

	tests := []struct {
		name string
		got  uint16
		want uint16
	}{
		{"class", uint16(op.class()), 0xD},
		{"x", uint16(op.x()), 0x1},
		{"y", uint16(op.y()), 0x2},
		{"n", uint16(op.n()), 0xF},
		{"kk", uint16(op.kk()), 0x2F},
		{"nnn", op.nnn(), 0x12F},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = 0x%X, want 0x%X", tt.name, tt.got, tt.want)
			}
		})
	}
}
