package mapdata

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvroute/roadgraph"
)

var (
	// ErrInvalidExtract indicates a document that cannot be decoded or projected.
	ErrInvalidExtract = errors.New("mapdata: invalid extract")

	// ErrInvalidSnapshot indicates an unreadable or incompatible snapshot.
	ErrInvalidSnapshot = errors.New("mapdata: invalid snapshot")

	// ErrUnknownFormat indicates a file extension LoadAny does not handle.
	ErrUnknownFormat = errors.New("mapdata: unknown file format")
)

// Extract is a decoded map extract with geographic coordinates.
type Extract struct {
	Bounds *BoundsDoc `yaml:"bounds,omitempty"`
	Nodes  []NodeDoc  `yaml:"nodes"`
	Ways   []WayDoc   `yaml:"ways"`
}

// BoundsDoc is the declared bounding box in degrees.
type BoundsDoc struct {
	MinLat float64 `yaml:"minlat"`
	MaxLat float64 `yaml:"maxlat"`
	MinLon float64 `yaml:"minlon"`
	MaxLon float64 `yaml:"maxlon"`
}

// NodeDoc is one node of an extract.
type NodeDoc struct {
	ID  int64   `yaml:"id"`
	Lat float64 `yaml:"lat"`
	Lon float64 `yaml:"lon"`
}

// WayDoc is one way of an extract.
type WayDoc struct {
	ID    int64             `yaml:"id"`
	Nodes []int64           `yaml:"nodes"`
	Tags  map[string]string `yaml:"tags,omitempty"`
}

// Decode reads one extract document from r. Unknown fields are rejected.
func Decode(r io.Reader) (*Extract, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var e Extract
	if err := dec.Decode(&e); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidExtract, err)
	}
	if len(e.Nodes) == 0 {
		return nil, fmt.Errorf("%w: no nodes", ErrInvalidExtract)
	}

	return &e, nil
}

// Load reads an extract from a file.
func Load(path string) (*Extract, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mapdata: open %s: %w", path, err)
	}
	defer f.Close()

	e, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return e, nil
}

// Encode writes e as YAML.
func (e *Extract) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(e); err != nil {
		return fmt.Errorf("mapdata: encode: %w", err)
	}

	return enc.Close()
}

// BoundingBox returns the declared bounds, or the node extremes when absent.
func (e *Extract) BoundingBox() roadgraph.Bounds {
	if e.Bounds != nil {
		return roadgraph.Bounds{
			MinLat: e.Bounds.MinLat, MaxLat: e.Bounds.MaxLat,
			MinLon: e.Bounds.MinLon, MaxLon: e.Bounds.MaxLon,
		}
	}
	b := roadgraph.Bounds{
		MinLat: math.Inf(1), MaxLat: math.Inf(-1),
		MinLon: math.Inf(1), MaxLon: math.Inf(-1),
	}
	for _, n := range e.Nodes {
		b.MinLat = math.Min(b.MinLat, n.Lat)
		b.MaxLat = math.Max(b.MaxLat, n.Lat)
		b.MinLon = math.Min(b.MinLon, n.Lon)
		b.MaxLon = math.Max(b.MaxLon, n.Lon)
	}

	return b
}

// ProviderData projects the extract into normalized coordinates.
func (e *Extract) ProviderData() (roadgraph.ProviderData, error) {
	b := e.BoundingBox()
	scale, err := roadgraph.ScaleFromBounds(b)
	if err != nil {
		return roadgraph.ProviderData{}, fmt.Errorf("%w: %v", ErrInvalidExtract, err)
	}

	data := roadgraph.ProviderData{
		Nodes:  make([]roadgraph.RawNode, 0, len(e.Nodes)),
		Ways:   make([]roadgraph.RawWay, 0, len(e.Ways)),
		Bounds: b,
	}
	for _, n := range e.Nodes {
		p := roadgraph.Normalize(b, scale, n.Lat, n.Lon)
		data.Nodes = append(data.Nodes, roadgraph.RawNode{ID: roadgraph.NodeID(n.ID), X: p.X, Y: p.Y})
	}
	for _, w := range e.Ways {
		data.Ways = append(data.Ways, convertWay(w))
	}

	return data, nil
}

func convertWay(w WayDoc) roadgraph.RawWay {
	members := make([]roadgraph.NodeID, len(w.Nodes))
	for i, id := range w.Nodes {
		members[i] = roadgraph.NodeID(id)
	}

	oneWay := false
	switch strings.ToLower(strings.TrimSpace(w.Tags["oneway"])) {
	case "yes", "true", "1":
		oneWay = true
	case "-1", "reverse":
		oneWay = true
		for i, j := 0, len(members)-1; i < j; i, j = i+1, j-1 {
			members[i], members[j] = members[j], members[i]
		}
	case "no", "false", "0":
	default:
		oneWay = w.Tags["junction"] == "roundabout"
	}

	tags := make(map[string]string, len(w.Tags))
	for k, v := range w.Tags {
		tags[k] = v
	}

	return roadgraph.RawWay{
		ID:     roadgraph.WayID(w.ID),
		Nodes:  members,
		OneWay: oneWay,
		Kind:   roadgraph.ParseRoadKind(w.Tags["highway"]),
		Tags:   tags,
	}
}
