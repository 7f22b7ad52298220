// Package model defines the data structures shared across the docent
// pipeline: fetched page results, match results against the page directory,
// and the per-request Answer that accumulates facts and the generated
// response.
//
// All types here are plain data. They carry no behavior beyond small
// accessors, so every other package can depend on them without cycles.
package model
