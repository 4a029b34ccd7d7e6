// Package prompt compiles validated feature requests into provider prompts.
//
// Each feature owns exactly one immutable Spec: a system instruction
// establishing the assistant persona, a pure template function that renders
// the user instruction, and the generation parameters the feature uses.
// Templates embed the full request payload verbatim and spell out the exact
// JSON shape the provider must return, so the response validator has a
// contract to hold the reply against.
package prompt
