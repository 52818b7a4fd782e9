// Package spherical provides two-angle (pitch/yaw) direction types for
// cameras, turrets and look targets, with two boundary policies:
//
//   - [PitchYaw] wraps both angles into the canonical (-π, π] interval
//     after every mutation, so free-look rotation never accumulates large
//     angle values and interpolation takes the short way around the seam.
//   - [PitchYawClamped] saturates each angle independently into a
//     configured [Min, Max] range and never crosses the ±π discontinuity,
//     which suits bounded aim ranges such as a head yaw limited to ±90°.
//
// Both types convert to and from unit direction vectors and quaternions.
// The zero pitch/yaw direction faces -Z, matching the usual right-handed
// camera convention: yaw rotates about +Y, pitch tilts toward +Y.
package spherical
