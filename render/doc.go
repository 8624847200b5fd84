// Package render draws maze search progress. It is the presentation side
// of mazepath: the search engine only sees a Sink, so any of the sinks here
// (or a custom one) can be plugged in through StepFunc.
//
// Sinks:
//
//   - Terminal: full-screen tcell display, blue maze with the current path
//     as red X marks, plus the final "press any key" wait.
//   - Text: plain frames written to an io.Writer, for pipes and logs.
//   - Discard: draws nothing.
package render
