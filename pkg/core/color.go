package core

// Vec3i is an integer color triple with 8-bit channel values
type Vec3i struct {
	R, G, B uint32
}

// NewVec3i quantizes a floating point color to 8 bits per channel.
// Channels are clamped to [0, 1], scaled by 255 and truncated.
func NewVec3i(c Vec3) Vec3i {
	c = c.Clamp(0.0, 1.0)
	return Vec3i{
		R: uint32(c.X * 255.0),
		G: uint32(c.Y * 255.0),
		B: uint32(c.Z * 255.0),
	}
}

// Hex packs the channels into a single 0xRRGGBB value
func (c Vec3i) Hex() uint32 {
	return c.R<<16 | c.G<<8 | c.B
}

// ToRGB24 quantizes a linear color and packs it as 0xRRGGBB
func ToRGB24(c Vec3) uint32 {
	return NewVec3i(c).Hex()
}

// UnpackRGB24 splits a packed 0xRRGGBB value into its channels
func UnpackRGB24(packed uint32) (r, g, b uint8) {
	return uint8(packed >> 16), uint8(packed >> 8), uint8(packed)
}
