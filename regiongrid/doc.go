// Package regiongrid turns vector wall geometry into closed region polygons.
//
// What:
//
//   - Grid is a uniform boolean occupancy grid over a padded world bounding box.
//   - Rasterize marks the cells touched by segments, arcs and bulge polylines.
//   - FloodFill finds the enclosed empty region around a seed point.
//   - FindWallComponents labels 8-connected clusters of wall cells.
//   - ExtractContour traces the outer boundary of a mask (Moore neighborhood).
//   - SimplifyPolygon reduces a contour with Ramer-Douglas-Peucker.
//
// Degenerate outcomes (open regions, empty masks, zero-length chords) are
// reported as empty results or a false flag, never as errors.
//
// Complexity:
//
//   - Rasterize:          O(L/cellSize) per stroke.
//   - FloodFill:          O(W×H), Memory: O(W×H).
//   - FindWallComponents: O(W×H×8), Memory: O(W×H) per surviving component.
//   - ExtractContour:     O(W×H) worst case, bounded by W×H steps.
//
// A Grid is not safe for concurrent mutation. Rasterize all walls first,
// then query; queries never modify the wall cells.
package regiongrid
