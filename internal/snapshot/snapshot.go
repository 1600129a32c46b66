// SPDX-License-Identifier: MIT

// Package snapshot saves every graph of a registry to one file and loads it
// back with the original handles.
//
// The file is JSON or YAML, chosen by extension (see codec.FormatFromPath):
//
//	{version: 1, next_handle, graphs: [{handle, weight_type, int64|float64: <graph record>}]}
package snapshot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/graphd/codec"
	"github.com/katalvlaran/graphd/core"
	"github.com/katalvlaran/graphd/registry"
)

// Version is the only file layout this package reads and writes.
const Version = 1

// ErrVersion is returned for a snapshot written with another layout version.
var ErrVersion = errors.New("snapshot: unsupported version")

// File is the on-disk layout.
type File struct {
	Version    int             `json:"version" yaml:"version"`
	NextHandle registry.Handle `json:"next_handle" yaml:"next_handle"`
	Graphs     []Graph         `json:"graphs" yaml:"graphs"`
}

// Graph is one registered graph. Exactly one of Int64 and Float64 is set,
// matching WeightType.
type Graph struct {
	Handle     registry.Handle             `json:"handle" yaml:"handle"`
	WeightType core.WeightType             `json:"weight_type" yaml:"weight_type"`
	Int64      *codec.GraphRecord[int64]   `json:"int64,omitempty" yaml:"int64,omitempty"`
	Float64    *codec.GraphRecord[float64] `json:"float64,omitempty" yaml:"float64,omitempty"`
}

// Build captures the current contents of r.
func Build(r *registry.Registry) (*File, error) {
	f := &File{Version: Version, Graphs: []Graph{}}
	for _, h := range r.Handles() {
		e, err := r.Lookup(h)
		if err != nil {
			return nil, err
		}
		g := Graph{Handle: h, WeightType: e.Kind().WeightType}
		switch rec := e.Record().(type) {
		case codec.GraphRecord[int64]:
			g.Int64 = &rec
		case codec.GraphRecord[float64]:
			g.Float64 = &rec
		default:
			return nil, fmt.Errorf("%w: handle %d: %s", registry.ErrUnsupportedKind, h, e.Kind())
		}
		f.Graphs = append(f.Graphs, g)
	}
	f.NextHandle = r.Next()
	return f, nil
}

// Apply restores every graph of f into r under its recorded handle and
// moves the handle counter to f.NextHandle or beyond.
func Apply(f *File, r *registry.Registry) error {
	if f.Version != Version {
		return fmt.Errorf("%w: %d", ErrVersion, f.Version)
	}
	for i, g := range f.Graphs {
		if err := restore(r, g); err != nil {
			return fmt.Errorf("graphs[%d] (handle %d): %w", i, g.Handle, err)
		}
	}
	r.AdvanceTo(f.NextHandle)
	return nil
}

func restore(r *registry.Registry, g Graph) error {
	switch g.WeightType {
	case core.WeightInt64:
		if g.Int64 == nil {
			return fmt.Errorf("%w: missing int64 record", codec.ErrMalformed)
		}
		graph, err := codec.DecodeGraph(*g.Int64)
		if err != nil {
			return err
		}
		return registry.Restore(r, g.Handle, graph)
	case core.WeightFloat64:
		if g.Float64 == nil {
			return fmt.Errorf("%w: missing float64 record", codec.ErrMalformed)
		}
		graph, err := codec.DecodeGraph(*g.Float64)
		if err != nil {
			return err
		}
		return registry.Restore(r, g.Handle, graph)
	}
	return fmt.Errorf("%w: weight type %q", registry.ErrUnsupportedKind, g.WeightType)
}

// Save writes r to path. The file is replaced atomically: data goes to a
// temporary file in the same directory which is then renamed over path.
func Save(path string, r *registry.Registry) error {
	f, err := Build(r)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("snapshot: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if err := codec.Encode(tmp, codec.FormatFromPath(path), f); err != nil {
		tmp.Close()
		return fmt.Errorf("snapshot: encode: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("snapshot: sync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("snapshot: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("snapshot: rename: %w", err)
	}
	return nil
}

// Load reads path into r and returns the number of graphs restored.
// A missing file reports an error matching os.ErrNotExist.
func Load(path string, r *registry.Registry) (int, error) {
	in, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	var f File
	if err := codec.Decode(in, codec.FormatFromPath(path), &f); err != nil {
		return 0, fmt.Errorf("snapshot: %s: %w", path, err)
	}
	if err := Apply(&f, r); err != nil {
		return 0, fmt.Errorf("snapshot: %s: %w", path, err)
	}
	return len(f.Graphs), nil
}
