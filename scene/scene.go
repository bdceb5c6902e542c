// SPDX-License-Identifier: MIT

// Package scene reads YAML scene documents and builds transform graphs
// from them.
//
// A document lists edges; each edge carries exactly one kind of value:
//
//   - a static pose from translation plus an optional rotation (axis and
//     degrees) or quaternion [w, x, y, z];
//   - a static 4x4 matrix, written row-major;
//   - a spin: a rotation growing linearly with time about an axis;
//   - samples: timestamped poses interpolated between.
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/framegraph/tfgraph"
)

// SupportedSchema is the only schema_version Parse accepts.
const SupportedSchema = "v1"

var (
	// ErrSchemaVersion is returned for documents of an unknown schema.
	ErrSchemaVersion = errors.New("scene: unsupported schema_version")

	// ErrBadEdge is returned when an edge does not describe exactly one
	// well-formed value.
	ErrBadEdge = errors.New("scene: malformed edge")

	// ErrUnknownFrame is returned when frames is set and an edge names a
	// frame it does not list.
	ErrUnknownFrame = errors.New("scene: edge uses an undeclared frame")
)

// Document is a scene file: optional frame declarations plus edges.
type Document struct {
	SchemaVersion string   `yaml:"schema_version"`
	Frames        []string `yaml:"frames,omitempty"`
	Edges         []Edge   `yaml:"edges"`
}

// Edge describes one registered transform; Value converts it for the graph.
type Edge struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`

	Translation []float64  `yaml:"translation,omitempty"`
	Rotation    *AxisAngle `yaml:"rotation,omitempty"`
	Quaternion  []float64  `yaml:"quaternion,omitempty"` // w, x, y, z

	Matrix  []float64 `yaml:"matrix,omitempty"` // row-major
	Spin    *Spin     `yaml:"spin,omitempty"`
	Samples []Sample  `yaml:"samples,omitempty"`
}

// AxisAngle is a rotation of Degrees about Axis.
type AxisAngle struct {
	Axis    []float64 `yaml:"axis"`
	Degrees float64   `yaml:"degrees"`
}

// Spin rotates about Axis by DegreesPerUnit per unit of time, after an
// optional fixed Translation.
type Spin struct {
	Axis           []float64 `yaml:"axis"`
	DegreesPerUnit float64   `yaml:"degrees_per_unit"`
	Translation    []float64 `yaml:"translation,omitempty"`
}

// Sample is one timed pose of a sampled edge.
type Sample struct {
	T           float64   `yaml:"t"`
	Translation []float64 `yaml:"translation,omitempty"`
	Quaternion  []float64 `yaml:"quaternion,omitempty"`
}

// Load reads and parses the document at path.
func Load(path string) (Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Document{}, err
	}
	doc, err := Parse(raw)
	if err != nil {
		return doc, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a document and checks its schema version and frame list.
// Unknown keys are rejected. A missing schema_version means v1.
func Parse(raw []byte) (Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return doc, err
	}
	if doc.SchemaVersion == "" {
		doc.SchemaVersion = SupportedSchema
	}
	if doc.SchemaVersion != SupportedSchema {
		return doc, fmt.Errorf("%w: %q (want %q)", ErrSchemaVersion, doc.SchemaVersion, SupportedSchema)
	}
	if len(doc.Frames) > 0 {
		declared := make(map[string]bool, len(doc.Frames))
		for _, f := range doc.Frames {
			declared[f] = true
		}
		for i, e := range doc.Edges {
			for _, f := range [2]string{e.From, e.To} {
				if !declared[f] {
					return doc, fmt.Errorf("%w: edge %d: %q", ErrUnknownFrame, i, f)
				}
			}
		}
	}
	return doc, nil
}

// Build registers every edge, in document order, on a new graph.
func (d Document) Build(opts ...tfgraph.Option) (*tfgraph.Graph, error) {
	g := tfgraph.New(opts...)
	for i, e := range d.Edges {
		v, err := e.Value()
		if err != nil {
			return nil, fmt.Errorf("edge %d (%s -> %s): %w", i, e.From, e.To, err)
		}
		if err = g.SetTransform(e.From, e.To, v); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
	}
	return g, nil
}
