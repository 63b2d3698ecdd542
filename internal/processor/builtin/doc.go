// Package builtin provides the standard value processors for axis and stick
// controls.
//
// Register installs them into a processor.Registry:
//
//	float32 (axis, button):
//	  scale(factor=1)
//	  invert
//	  clamp(min=0, max=1)
//	  normalize(min=0, max=1, zero=0)
//	  axisDeadzone(min=0.125, max=0.925)
//
//	control.Vector2 (stick):
//	  scaleVector2(x=1, y=1)
//	  invertVector2(invertX=true, invertY=true)
//	  normalizeVector2
//	  stickDeadzone(min=0.125, max=0.925)
//
// Names and parameters match ignoring case. All processors are stateless;
// their parameters are plain exported fields.
package builtin
