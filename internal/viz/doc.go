// Package viz renders vessel playback in the terminal.
//
// The package implements the interactive surface using the Bubble Tea
// framework:
//
//   - [Model]: playback application, one chart column per vessel with
//     flow, pressure and concentration-ratio panels
//   - [Canvas]: Braille pixel canvas used to compose exported GIF frames
//
// # Key Bindings
//
//	Space - Pause/Resume playback
//	Click - Pause/Resume playback
//	Q     - Quit
//
// Flow and pressure charts autoscale to the current frame; the
// concentration ratio keeps a fixed [0, 1.05] axis.
package viz
