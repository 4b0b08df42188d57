// Package placement finds free space for objects in a 3D scene. When an
// object overlaps its neighbors, a Resolver searches nearby candidate
// positions with a configurable pattern (spiral, radial, or grid) and
// moves the object to the first collision-free one within the search
// radius.
//
// The package is a library with no scene graph of its own: the host
// supplies one through SceneView and Object, including the exact
// shape-vs-shape intersection test. Cached axis-aligned bounding boxes
// keep the per-query cost low; the exact test only runs on candidates
// that pass the box pre-check.
//
// Everything here is synchronous and single-caller: one Resolver per
// scene, no calls from concurrent goroutines.
package placement
