// Package tui wires the glitchrain engine into a Bubble Tea program.
//
// The engine's printer loop runs on its own goroutine and publishes styled
// frames; [Model] displays the latest frame and owns all input handling:
//
//   - [Model]: frame display, key handling, pause banner
//   - [TermSize]: atomic bridge from resize messages to the engine's
//     per-tick terminal size query
//
// # Key Bindings
//
//	Space - Pause/Resume the rain
//	Q     - Quit and restore the terminal
//
// All other keys are ignored. Quitting waits for the printer loop to stop
// before Bubble Tea restores the terminal.
package tui
