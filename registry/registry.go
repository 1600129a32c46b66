// SPDX-License-Identifier: MIT

package registry

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/katalvlaran/graphd/codec"
	"github.com/katalvlaran/graphd/core"
)

var (
	// ErrNotFound indicates an unknown handle or a handle whose graph has a
	// different concrete type than the one requested.
	ErrNotFound = errors.New("registry: graph not found")

	// ErrUnsupportedKind indicates a graph outside {list, matrix} × {int64, float64}.
	ErrUnsupportedKind = errors.New("registry: unsupported graph kind")

	// ErrNilGraph indicates a nil graph passed to Register or Restore.
	ErrNilGraph = errors.New("registry: nil graph")

	// ErrHandleInUse indicates a Restore onto an occupied or negative handle.
	ErrHandleInUse = errors.New("registry: handle unavailable")

	// ErrInvalidHandle indicates text that does not parse as a handle.
	ErrInvalidHandle = errors.New("registry: invalid handle")
)

// Handle is an opaque reference to a registered graph.
type Handle int64

// String renders the handle as a decimal number.
func (h Handle) String() string { return strconv.FormatInt(int64(h), 10) }

// ParseHandle parses a decimal handle.
func ParseHandle(s string) (Handle, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHandle, s)
	}
	return Handle(v), nil
}

// Kind tags a stored graph with its representation and weight type.
type Kind struct {
	Representation core.Representation
	WeightType     core.WeightType
}

// String renders the kind as "<representation>/<weight type>".
func (k Kind) String() string {
	return k.Representation.String() + "/" + string(k.WeightType)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Kinds lists every supported kind.
var Kinds = []Kind{
	{core.List, core.WeightInt64},
	{core.List, core.WeightFloat64},
	{core.Matrix, core.WeightInt64},
	{core.Matrix, core.WeightFloat64},
}

// Registry maps handles to graphs.
type Registry struct {
	mu    sync.RWMutex
	next  Handle
	slots map[Handle]Entry
}

// New returns an empty registry whose first handle is 0.
func New() *Registry {
	return &Registry{slots: make(map[Handle]Entry)}
}

// Register stores g under a fresh handle.
func Register[W core.Weight](r *Registry, g core.Graph[W]) (Handle, error) {
	s, err := newSlot(g)
	if err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	h := r.next
	r.next++
	s.handle = h
	r.slots[h] = s
	return h, nil
}

// RegisterRecord decodes rec and registers the resulting graph.
func RegisterRecord[W core.Weight](r *Registry, rec codec.GraphRecord[W]) (Handle, error) {
	g, err := codec.DecodeGraph(rec)
	if err != nil {
		return 0, err
	}
	return Register(r, g)
}

// Restore stores g under the given handle and moves the counter past it.
// It is meant for reloading a snapshot into a fresh registry.
func Restore[W core.Weight](r *Registry, h Handle, g core.Graph[W]) error {
	s, err := newSlot(g)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.slots[h]; taken || h < 0 {
		return fmt.Errorf("%w: %d", ErrHandleInUse, h)
	}
	s.handle = h
	r.slots[h] = s
	if h >= r.next {
		r.next = h + 1
	}
	return nil
}

// Resolve returns the graph stored under h as G, for example
// *core.ListGraph[int64] or core.Graph[float64]. A type mismatch reports
// ErrNotFound.
func Resolve[G any](r *Registry, h Handle) (G, error) {
	var zero G
	e, err := r.Lookup(h)
	if err != nil {
		return zero, err
	}
	g, ok := e.Graph().(G)
	if !ok {
		return zero, fmt.Errorf("%w: handle %d holds %s, not %T", ErrNotFound, h, e.Kind(), zero)
	}
	return g, nil
}

// Lookup returns the entry stored under h.
func (r *Registry) Lookup(h Handle) (Entry, error) {
	r.mu.RLock()
	e, ok := r.slots[h]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: handle %d", ErrNotFound, h)
	}
	return e, nil
}

// Handles returns every registered handle in ascending order.
func (r *Registry) Handles() []Handle {
	r.mu.RLock()
	hs := make([]Handle, 0, len(r.slots))
	for h := range r.slots {
		hs = append(hs, h)
	}
	r.mu.RUnlock()
	sort.Slice(hs, func(i, j int) bool { return hs[i] < hs[j] })
	return hs
}

// Len returns the number of registered graphs.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.slots)
}

// Next returns the handle the next Register call will assign.
func (r *Registry) Next() Handle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.next
}

// AdvanceTo raises the counter to at least next. It never lowers it.
func (r *Registry) AdvanceTo(next Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if next > r.next {
		r.next = next
	}
}
