// Package osm streams OpenStreetMap extracts into a core.Builder.
//
// One pass over the input (XML via osmxml, PBF via osmpbf) is enough:
//
//   - every node is inserted as it is seen, with its coordinates;
//   - every way whose highway tag names a road type becomes one arc per
//     consecutive node pair, tagged with the way id as its segment;
//   - the way's name (or its ref when unnamed) is registered as the segment
//     display name.
//
// Arc distance is the haversine distance in metres between the two nodes,
// rounded to the nearest metre; cost is derived from it by a core.CostFunc.
//
// Direction follows the usual tagging: oneway=yes|true|1 and
// junction=roundabout keep only the way direction, oneway=-1 keeps only the
// reverse direction, anything else emits both.
//
// Node pairs that reference a node not seen earlier in the stream are
// skipped and counted in LoadStats.MissingNodes. Relations are ignored.
//
// Example:
//
//	b := core.NewBuilder()
//	stats, err := osm.LoadFile(ctx, "rutland.osm.pbf", b)
//	if err != nil {
//	    return err
//	}
//	g, err := b.Build()
package osm
