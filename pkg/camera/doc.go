// Package camera provides the perspective camera, orbit controls and the
// fitting step that frames a finished scene.
//
// [Fit] must run once after all geometry is placed. It keeps the camera's
// current viewing direction and backs it away from the scene center far
// enough for the padded horizontal extent to fill the vertical field of
// view:
//
//	distance = 0.5 * max(size.X, size.Z) * padding / tan(fov/2)
//	position = center - direction * (distance + offset)
//
// Identical bounds and initial direction always produce the same position.
package camera
