package sprite

import (
	"image"
	"image/color"
	"math"

	"github.com/lixenwraith/enemy-drift/component"
)

// shader returns the pixel color at normalized frame coordinates u,v in [-1,1]
// phase runs over [0,1) across the frames of the sheet; ok=false leaves the pixel transparent
type shader func(u, v, phase float64, tint color.RGBA) (c color.RGBA, ok bool)

var shaders = map[component.MotionKind]shader{
	component.MotionShake:     batShader,
	component.MotionLeftSine:  batShader,
	component.MotionLissajous: ghostShader,
	component.MotionWander:    wheelShader,
}

// Generate draws a procedural sheet for a definition with exactly Frames() frames
func Generate(def *Definition) *Sheet {
	w, h := def.SpriteWidth, def.SpriteHeight
	frames := def.Frames()
	img := image.NewRGBA(image.Rect(0, 0, w*frames, h))

	shade, ok := shaders[def.Kind]
	if !ok {
		shade = blobShader
	}

	for f := 0; f < frames; f++ {
		phase := float64(f) / float64(frames)
		ox := f * w
		for y := 0; y < h; y++ {
			v := 2*(float64(y)+0.5)/float64(h) - 1
			for x := 0; x < w; x++ {
				u := 2*(float64(x)+0.5)/float64(w) - 1
				if c, ok := shade(u, v, phase, def.Tint); ok {
					img.SetRGBA(ox+x, y, c)
				}
			}
		}
	}

	return &Sheet{
		Name:        def.Name,
		Image:       img,
		FrameWidth:  w,
		FrameHeight: h,
		Frames:      frames,
	}
}

func shadeColor(c color.RGBA, k float64) color.RGBA {
	scale := func(ch uint8) uint8 {
		return uint8(math.Max(0, math.Min(255, float64(ch)*k)))
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}

// batShader draws an oval body with wings flapping through one full cycle per sheet
func batShader(u, v, phase float64, tint color.RGBA) (color.RGBA, bool) {
	// Eyes
	if math.Hypot(math.Abs(u)-0.08, v+0.15) < 0.04 {
		return color.RGBA{R: 255, G: 230, B: 40, A: 255}, true
	}
	// Body
	if (u*u)/(0.18*0.18)+(v*v)/(0.55*0.55) <= 1 {
		return shadeColor(tint, 0.8), true
	}
	// Wings: triangle-ish membranes whose tip height follows the flap
	flap := math.Sin(phase * 2 * math.Pi)
	au := math.Abs(u)
	if au > 0.15 && au < 0.98 {
		t := (au - 0.15) / 0.83
		top := -0.2 - 0.6*flap*t
		bottom := top + 0.5*(1-t) + 0.08
		if v >= top && v <= bottom {
			return shadeColor(tint, 1.0+0.2*(1-t)), true
		}
	}
	return color.RGBA{}, false
}

// ghostShader draws a translucent dome with a rippling hem
func ghostShader(u, v, phase float64, tint color.RGBA) (color.RGBA, bool) {
	hem := 0.75 + 0.12*math.Sin((u*3+phase*2)*math.Pi)
	inDome := v < 0 && (u*u)/(0.7*0.7)+(v*v)/(0.8*0.8) <= 1
	inSkirt := v >= 0 && v <= hem && math.Abs(u) <= 0.7
	if !inDome && !inSkirt {
		return color.RGBA{}, false
	}
	if math.Hypot(math.Abs(u)-0.25, v+0.2) < 0.1 {
		return color.RGBA{R: 20, G: 20, B: 40, A: 255}, true
	}
	// Image stores premultiplied alpha
	c := color.NRGBA{R: tint.R, G: tint.G, B: tint.B, A: 170}
	return color.RGBAModel.Convert(c).(color.RGBA), true
}

// wheelShader draws a rim with four spokes rotating a quarter turn per sheet
func wheelShader(u, v, phase float64, tint color.RGBA) (color.RGBA, bool) {
	r := math.Hypot(u, v)
	if r > 0.95 {
		return color.RGBA{}, false
	}
	if r > 0.78 {
		return shadeColor(tint, 0.7), true
	}
	if r < 0.15 {
		return shadeColor(tint, 1.2), true
	}
	rot := phase * math.Pi / 2
	a := math.Atan2(v, u) - rot
	// Distance from the nearest of four spokes, in radians folded to [0, pi/4]
	d := math.Mod(math.Abs(a), math.Pi/2)
	if d > math.Pi/4 {
		d = math.Pi/2 - d
	}
	if d*r < 0.06 {
		return tint, true
	}
	return color.RGBA{}, false
}

func blobShader(u, v, _ float64, tint color.RGBA) (color.RGBA, bool) {
	if u*u+v*v <= 1 {
		return tint, true
	}
	return color.RGBA{}, false
}
