// Package hover holds the data of the hover color mix effect: a
// full-screen quad and a shader pair that blends between two colors by
// the x component of a state vector.
//
// The sources are exported in two dialects. VertexSource and
// FragmentSource are GLSL ES 1.00 for WebGL; the WGSL pair carries the
// same effect for naga based backends. Compile picks the pair matching
// the context language.
//
// Setup code is expected to bind QuadVertices to AttribVertexPosition as
// two-component floats, draw a triangle strip of QuadVertexCount vertices,
// and set the three uniforms named below.
package hover
