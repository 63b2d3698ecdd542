package control

import (
	"errors"
	"reflect"
	"testing"
)

func TestValueTypeByName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    reflect.Type
		wantErr error
	}{
		{name: "axis", input: "axis", want: reflect.TypeFor[float32]()},
		{name: "button", input: "button", want: reflect.TypeFor[float32]()},
		{name: "stick", input: "stick", want: reflect.TypeFor[Vector2]()},
		{name: "case insensitive", input: " Vector2 ", want: reflect.TypeFor[Vector2]()},
		{name: "unknown", input: "quaternion", wantErr: ErrUnknownValueType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValueTypeByName(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ValueTypeByName(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValueTypeByName(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ValueTypeByName(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	c, err := New[Vector2]("LeftStick")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if c.Name().String() != "LeftStick" {
		t.Errorf("Name() = %q, want %q", c.Name().String(), "LeftStick")
	}
	if c.Path() != "/LeftStick" {
		t.Errorf("Path() = %q, want %q", c.Path(), "/LeftStick")
	}
	if c.ValueType() != reflect.TypeFor[Vector2]() {
		t.Errorf("ValueType() = %v, want Vector2", c.ValueType())
	}
}

func TestNew_EmptyName(t *testing.T) {
	if _, err := New[float32]("  "); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("New() error = %v, want ErrInvalidName", err)
	}
}

func TestValueTypeNames(t *testing.T) {
	got := ValueTypeNames()
	want := []string{"axis", "button", "stick", "vector2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ValueTypeNames() = %v, want %v", got, want)
	}
}
