// Package registry keeps graphs behind opaque integer handles.
//
// A Registry is constructed explicitly and owned by its caller; there is no
// package-level instance. Handles are assigned from a counter that starts at
// 0, grows by one per registration and is never reused.
//
// Stored graphs are tagged with a Kind, one of
//
//	{list, matrix} × {int64, float64}
//
// Typed access goes through Resolve, which reports ErrNotFound both for an
// unknown handle and for a stored graph of another type. Untyped access goes
// through Lookup, whose Entry serves records, algorithm runs and paths
// without the caller naming a weight type.
//
// All methods are safe for concurrent use. Registered graphs must not be
// mutated afterwards.
package registry
