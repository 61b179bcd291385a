// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Formats, options, load statistics and sentinel errors of the OSM loader.

package osm

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/lvroute/core"
)

// Sentinel errors returned by Load and LoadFile.
var (
	// ErrNilBuilder indicates that a nil *core.Builder was passed.
	ErrNilBuilder = errors.New("osm: builder is nil")

	// ErrUnknownFormat indicates a format value or file extension the loader cannot decode.
	ErrUnknownFormat = errors.New("osm: unknown format")

	// ErrDecode wraps any failure reported by the underlying scanner.
	ErrDecode = errors.New("osm: decode failed")
)

// Format selects the wire encoding of an OSM extract.
type Format int

const (
	// FormatXML is the .osm / .osm.xml encoding.
	FormatXML Format = iota
	// FormatPBF is the protocol-buffer .osm.pbf encoding.
	FormatPBF
)

// String returns "xml" or "pbf".
func (f Format) String() string {
	switch f {
	case FormatXML:
		return "xml"
	case FormatPBF:
		return "pbf"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath infers the format from a file name:
// *.pbf is PBF, *.osm and *.xml are XML.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pbf":
		return FormatPBF, nil
	case ".osm", ".xml":
		return FormatXML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// ParseFormat maps "xml" or "pbf" (case-insensitive) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "xml", "osm":
		return FormatXML, nil
	case "pbf":
		return FormatPBF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// RoadTypes lists the highway tag values treated as drivable roads by default.
var RoadTypes = []string{
	"motorway", "motorway_link",
	"trunk", "trunk_link",
	"primary", "primary_link",
	"secondary", "secondary_link",
	"tertiary", "tertiary_link",
	"unclassified", "residential", "living_street",
	"service", "road",
}

// LoadStats summarises one ingestion pass.
type LoadStats struct {
	Nodes        int `json:"nodes"`         // nodes inserted
	Ways         int `json:"ways"`          // road ways converted to arcs
	IgnoredWays  int `json:"ignored_ways"`  // ways without a road highway tag
	Arcs         int `json:"arcs"`          // arcs inserted, both directions counted
	Segments     int `json:"segments"`      // segment names registered
	MissingNodes int `json:"missing_nodes"` // node pairs skipped for an unseen endpoint
}

type options struct {
	cost  core.CostFunc
	roads map[string]struct{}
	log   *slog.Logger
}

// Option configures Load and LoadFile.
type Option func(*options)

// WithCostFunc derives arc cost from distance. Panics on nil.
func WithCostFunc(fn core.CostFunc) Option {
	if fn == nil {
		panic("osm: WithCostFunc(nil)")
	}
	return func(o *options) { o.cost = fn }
}

// WithRoadTypes replaces the accepted highway values. Panics on an empty list.
func WithRoadTypes(types []string) Option {
	if len(types) == 0 {
		panic("osm: WithRoadTypes(empty)")
	}
	return func(o *options) { o.roads = roadSet(types) }
}

// WithLogger injects a logger for progress and summary output. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("osm: WithLogger(nil)")
	}
	return func(o *options) { o.log = l }
}

func newOptions(opts ...Option) options {
	o := options{
		cost:  core.IdentityCost,
		roads: roadSet(RoadTypes),
		log:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func roadSet(types []string) map[string]struct{} {
	m := make(map[string]struct{}, len(types))
	for _, t := range types {
		m[t] = struct{}{}
	}
	return m
}
