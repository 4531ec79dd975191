// Package probe inspects a single filesystem path and assembles a structured
// report about it.
//
// It classifies the target into a fixed set of semantic categories, computes
// a SHA-256 checksum for regular files, and recursively aggregates size and
// entry counts for directories using fastwalk for parallel traversal.
// Non-fatal failures degrade individual report fields and are recorded as
// warnings; report construction itself never fails.
package probe
