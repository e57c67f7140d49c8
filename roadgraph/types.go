package roadgraph

import (
	"errors"
	"math"
	"strings"
)

// Sentinel errors for road graph construction and lookup.
var (
	// ErrMalformedMapData indicates provider data that cannot form a road graph:
	// no nodes, no (routable) ways, duplicate ids, invalid coordinates, a way
	// referencing an unknown node, or bounds that yield no metric scale.
	ErrMalformedMapData = errors.New("roadgraph: malformed map data")

	// ErrNodeNotFound indicates a lookup of a node id absent from the model.
	ErrNodeNotFound = errors.New("roadgraph: node not found")

	// ErrBadMetricScale is the panic message of WithMetricScale for a non-positive scale.
	ErrBadMetricScale = errors.New("roadgraph: metric scale must be positive")
)

// NodeID identifies a node within one map extract.
type NodeID int64

// WayID identifies a way within one map extract.
type WayID int64

// Point is a coordinate normalized to the extract's bounding box.
type Point struct {
	X, Y float64
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// DistanceSq returns the squared Euclidean distance between p and q.
// Comparisons between candidates use it to avoid rounding in Sqrt.
func (p Point) DistanceSq(q Point) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y

	return dx*dx + dy*dy
}

// Node is a graph vertex: a road intersection or a point along a road.
type Node struct {
	ID NodeID
	Point
}

// RoadKind classifies a way by its highway tag.
type RoadKind int

const (
	// KindOther covers highway values without a dedicated kind.
	KindOther RoadKind = iota
	KindMotorway
	KindTrunk
	KindPrimary
	KindSecondary
	KindTertiary
	KindResidential
	KindService
	KindUnclassified
	KindFootway
)

var roadKindNames = [...]string{
	KindOther:        "other",
	KindMotorway:     "motorway",
	KindTrunk:        "trunk",
	KindPrimary:      "primary",
	KindSecondary:    "secondary",
	KindTertiary:     "tertiary",
	KindResidential:  "residential",
	KindService:      "service",
	KindUnclassified: "unclassified",
	KindFootway:      "footway",
}

// String returns the highway tag value for k.
func (k RoadKind) String() string {
	if k < 0 || int(k) >= len(roadKindNames) {
		return roadKindNames[KindOther]
	}

	return roadKindNames[k]
}

// ParseRoadKind maps an OSM highway tag value to a RoadKind.
// Link roads fold into their parent class; unknown values yield KindOther.
func ParseRoadKind(highway string) RoadKind {
	v := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(highway)), "_link")
	switch v {
	case "motorway":
		return KindMotorway
	case "trunk":
		return KindTrunk
	case "primary":
		return KindPrimary
	case "secondary":
		return KindSecondary
	case "tertiary":
		return KindTertiary
	case "residential", "living_street":
		return KindResidential
	case "service":
		return KindService
	case "unclassified", "road":
		return KindUnclassified
	case "footway", "path", "pedestrian", "steps":
		return KindFootway
	default:
		return KindOther
	}
}

// Way is an ordered, drivable road segment.
// Consecutive members are adjacent; a one-way way only links forward.
type Way struct {
	ID     WayID
	Nodes  []NodeID
	OneWay bool
	Kind   RoadKind
}

// Bounds is the extract's declared bounding box in degrees.
type Bounds struct {
	MinLat, MaxLat float64
	MinLon, MaxLon float64
}

// RawNode is a provider node with an already normalized coordinate.
type RawNode struct {
	ID   NodeID
	X, Y float64
}

// RawWay is a provider way: ordered member ids plus optional attributes.
type RawWay struct {
	ID     WayID
	Nodes  []NodeID
	OneWay bool
	Kind   RoadKind
	Tags   map[string]string
}

// ProviderData is everything the map-data provider hands to Build.
type ProviderData struct {
	Nodes  []RawNode
	Ways   []RawWay
	Bounds Bounds
}

// Options configures Build.
type Options struct {
	// MetricScale overrides the scale derived from Bounds when > 0.
	MetricScale float64

	// WayFilter, if non-nil, keeps only ways for which it returns true.
	WayFilter func(RawWay) bool
}

// Option is a functional option for Build.
type Option func(*Options)

// WithMetricScale fixes the normalized→meters factor instead of deriving it
// from the bounding box. Panics if scale is not positive.
func WithMetricScale(scale float64) Option {
	if !(scale > 0) || math.IsInf(scale, 0) {
		panic(ErrBadMetricScale.Error())
	}
	return func(o *Options) {
		o.MetricScale = scale
	}
}

// WithWayFilter drops every provider way for which keep returns false.
func WithWayFilter(keep func(RawWay) bool) Option {
	return func(o *Options) {
		o.WayFilter = keep
	}
}

// DefaultOptions returns Options with no scale override and no way filter.
func DefaultOptions() Options {
	return Options{}
}
