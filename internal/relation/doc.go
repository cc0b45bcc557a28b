// Package relation holds the cross-entity rules of the project hierarchy.
//
// Everything in this package is a pure function over domain entities and
// collection maps: validation of the structural invariants enforced on every
// save, and the paired edits behind linked mutations (current-phase marking,
// mindmap link maintenance, moving tasks between phases). The package
// performs no I/O and owns no state; the repository applies these functions
// to its live collections and persists the results.
//
// IMPORTANT: This package imports only internal/domain and internal/errors.
package relation
