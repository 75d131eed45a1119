// Package scene records the primitives a layout places in 3D space.
//
// Layout code talks to an [Assembler]: a small set of placement calls
// (sphere, tube, line, torus, label, points, billboard, light). [Scene] is
// the in-memory Assembler every output surface consumes. It keeps
// primitives in insertion order and computes the bounding [Box] of the
// foreground geometry used by camera fitting. Backdrop primitives (star
// points and the nebula billboard) are recorded but never counted in the
// bounds.
//
// Coordinates are right-handed with Y up; the orbital plane is XZ.
package scene
