// Package pipeline runs the full no-three-in-line flow for one board size:
//
//	directions → line constraints → program → solver → verifier → renderer
//
// Run returns a Report in every case that got past input validation, so
// callers can inspect the status or the offending triple and decide what
// to do next. Failures are also returned as errors:
//
//   - *model.StatusError when the solver does not reach OPTIMAL; no points
//     are extracted.
//   - *verify.CollinearError when the verifier rejects an optimal
//     assignment; the renderer is not called.
//
// Stage summaries are logged with glog; -v=1 adds timings and -v=2 prints
// every variable of the solved program.
package pipeline
