// Package scenario implements the solver wire format.
//
// Input is a stream of whitespace-separated integer tokens:
//
//	N M B K            grid rows, cols, battery capacity, recharge amount
//	N×M heights        row-major
//	S                  number of recharge stations
//	S pairs r c        1-indexed station coordinates
//
// Decode converts the stream into a Scenario, shifting station
// coordinates to 0-indexed. Output is either a JSON object
// {"time":…,"path":[…]} for a solved route or the literal -1 followed by
// a newline when no route exists.
//
// Validate applies the pre-flight rules enforced by the HTTP front end
// (dimension caps, positive battery, non-negative heights, stations in
// bounds). The stdin solver deliberately skips Validate: a malformed
// stream there is a fatal precondition violation, reported by exiting
// without output.
package scenario
