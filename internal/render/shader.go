package render

// bubbleShaderSrc shades one point sprite. srcPos carries the sprite-local
// coordinate in [-1,1] on both axes; color is the straight bubble RGBA.
// Output is premultiplied to match ebiten's source-over blend.
const bubbleShaderSrc = `//kage:unit pixels
package main

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	d := length(srcPos)
	if d > 1 {
		discard()
	}
	edge := 1 - smoothstep(0.9, 1.0, d)
	rim := 0.6 + 0.4*smoothstep(0.5, 1.0, d)
	a := color.a * edge * rim
	return vec4(color.rgb*a, a)
}
`
