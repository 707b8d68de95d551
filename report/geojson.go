package report

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/gridpath/grid"
)

// Labelled is a named path with its summary, ready for export.
type Labelled struct {
	Name  string
	Path  []grid.Coord
	Stats Stats
}

// point maps a grid coordinate to plane coordinates: x = column, y = row.
func point(c grid.Coord) orb.Point {
	return orb.Point{float64(c.Col), float64(c.Row)}
}

// GeoJSON encodes items as a FeatureCollection. Multi-cell paths become
// LineString features with a bbox, single-cell paths become Point features,
// and empty paths are skipped. Every feature carries name, steps and cost
// properties.
func GeoJSON(items []Labelled) ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for _, it := range items {
		var f *geojson.Feature
		switch len(it.Path) {
		case 0:
			continue
		case 1:
			f = geojson.NewFeature(point(it.Path[0]))
		default:
			ls := make(orb.LineString, 0, len(it.Path))
			for _, c := range it.Path {
				ls = append(ls, point(c))
			}
			f = geojson.NewFeature(ls)
			f.BBox = geojson.NewBBox(ls.Bound())
		}
		f.Properties["name"] = it.Name
		f.Properties["steps"] = it.Stats.Steps
		f.Properties["cost"] = it.Stats.Cost
		fc.Append(f)
	}

	return fc.MarshalJSON()
}
