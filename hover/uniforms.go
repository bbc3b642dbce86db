package hover

// Uniforms mirrors the values bound to the fragment shader.
type Uniforms struct {
	State        [4]float32
	ColorNormal  Color
	ColorHovered Color
}

// SetHover stores the hover amount, clamped to [0,1], in State[0].
func (u *Uniforms) SetHover(amount float32) {
	u.State[0] = clamp01(amount)
}

// Hover returns the hover amount.
func (u *Uniforms) Hover() float32 {
	return u.State[0]
}

// FragColor computes on the CPU the color the fragment shader writes.
func (u *Uniforms) FragColor() Color {
	return Mix(u.ColorNormal, u.ColorHovered, u.State[0])
}

// Floats returns the uniform block as laid out for the WGSL shader:
// state, color_normal, color_hovered.
func (u *Uniforms) Floats() [12]float32 {
	var out [12]float32
	copy(out[0:4], u.State[:])
	copy(out[4:8], u.ColorNormal[:])
	copy(out[8:12], u.ColorHovered[:])
	return out
}
