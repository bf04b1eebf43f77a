// Package viz renders lists and run traces for the terminal.
//
//   - [RenderList]: one cell per slot, live elements then slack, with an index ruler
//   - [RenderStats]: size, capacity, generation and load factor on one line
//   - [PlotTrace]: size and capacity over a run, drawn with asciigraph
//
// Styling is lipgloss throughout; callers that write to a file should strip
// colour by setting lipgloss.SetColorProfile(termenv.Ascii).
package viz
