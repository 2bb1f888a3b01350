// Package rover models a single Mars rover driven by command strings.
//
// A rover has a Position: integer Coordinates plus one of four compass
// Orientations. Commands are single characters, case-insensitive:
//
//	F  move one step forward along the current orientation
//	B  move one step backward
//	L  turn 90 degrees counter-clockwise
//	R  turn 90 degrees clockwise
//
// Movement happens on an unbounded plane unless a Grid is supplied, in which
// case coordinates wrap around its edges. Before every move the rover asks its
// ObstacleDetector about the (wrapped) target coordinate and refuses to enter
// a blocked cell.
//
// Execute processes a command string left to right and stops at the first
// failure. Effects of the commands before the failing one are kept, so the
// position reported afterwards is where the rover actually stopped.
package rover
