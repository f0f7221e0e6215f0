package protocell

import (
	"fmt"
	"testing"
)

func TestOptional(t *testing.T) {
	set := Set(int32(0))
	if !set.IsSet() {
		t.Error("Set(0) should be set")
	}
	if v, ok := set.Get(); v != 0 || !ok {
		t.Errorf("Get() = %d, %v, want 0, true", v, ok)
	}
	if got := set.Or(5); got != 0 {
		t.Errorf("Or(5) = %d, want 0", got)
	}

	unset := Unset(int32(0))
	if unset.IsSet() {
		t.Error("Unset(0) should not be set")
	}
	if got := unset.Value(); got != 0 {
		t.Errorf("Value() = %d, want placeholder 0", got)
	}
	if got := unset.Or(5); got != 5 {
		t.Errorf("Or(5) = %d, want 5", got)
	}
	if set == unset {
		t.Error("Set(0) and Unset(0) must differ")
	}
}

func TestOptionalString(t *testing.T) {
	tests := []struct {
		name string
		want string
		opt  fmt.Stringer
	}{
		{"set", `Set("hello")`, Set("hello")},
		{"set empty", `Set("")`, Set("")},
		{"unset", `Unset("")`, Unset("")},
		{"bytes", `Set("hello world")`, Set([]byte("hello world"))},
		{"empty bytes", `Set("")`, Set([]byte{})},
		{"unset bytes", `Unset("")`, Unset([]byte(nil))},
		{"int", "Set(0)", Set(int32(0))},
		{"unset int", "Unset(7)", Unset(7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opt.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
