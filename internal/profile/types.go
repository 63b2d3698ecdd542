package profile

import (
	"time"

	"github.com/nerrad567/gray-logic-input/internal/control"
)

// Profile is the processor configuration of one control.
type Profile struct {
	// Control is the control name. Unique ignoring case.
	Control string `json:"control"`

	// ValueType names the kind of value the control produces
	// (axis, button, stick, vector2).
	ValueType string `json:"value_type"`

	// Processors is the processors string applied to the control's values,
	// e.g. "stickDeadzone(min=0.2), invertVector2(invertX=false)".
	Processors string `json:"processors"`

	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewControl returns the control described by the profile.
func (p *Profile) NewControl() (*control.Control, error) {
	vt, err := control.ValueTypeByName(p.ValueType)
	if err != nil {
		return nil, err
	}
	return control.NewWithType(p.Control, vt)
}
