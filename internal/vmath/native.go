package vmath

// NativeVector3 matches the layout some native calling conventions use for
// vector arguments: each float32 component padded out to a full 8 bytes.
// Values of this type exist only while a native call is being marshaled.
type NativeVector3 struct {
	X float32
	_ [4]byte
	Y float32
	_ [4]byte
	Z float32
	_ [4]byte
}

// ToNative converts v to the wide-stride native representation.
func ToNative(v Vector3) NativeVector3 {
	return NativeVector3{X: v.X, Y: v.Y, Z: v.Z}
}

// Vec3 converts the native representation back to a Vector3. The round trip
// is a component copy with no precision loss.
func (n NativeVector3) Vec3() Vector3 {
	return Vector3{X: n.X, Y: n.Y, Z: n.Z}
}
