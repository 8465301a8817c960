// Package viz draws the gravity simulation in a terminal.
//
// The view is a Bubble Tea program that steps the simulation on a timer
// and plots every live particle on a Braille [Canvas] (2x4 dots per
// cell), next to a lipgloss side panel with population counts and an
// asciigraph survival chart.
//
// # Key Bindings
//
//	Space    - Pause/Resume
//	S        - Single step while paused
//	?        - Toggle help
//	Esc/Q    - Quit
package viz
