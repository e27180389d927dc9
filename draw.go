package ldeditor

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// highlightFadeSeconds is how long the tint takes to move between white and
// the highlight color.
const highlightFadeSeconds = 0.12

// tintFade eases an object's tint toward the highlight color while it is
// hovered and back to white when it is not. value is 0 for white and 1 for
// ColorHighlight.
type tintFade struct {
	tween *gween.Tween
	on    bool
	value float32
}

// set starts a fade toward the state given by on. No-op if already heading
// there.
func (f *tintFade) set(on bool) {
	if on == f.on {
		return
	}
	f.on = on
	var target float32
	if on {
		target = 1
	}
	f.tween = gween.New(f.value, target, highlightFadeSeconds, ease.OutQuad)
}

// update advances the fade by dt seconds.
func (f *tintFade) update(dt float32) {
	if f.tween == nil {
		return
	}
	val, done := f.tween.Update(dt)
	f.value = val
	if done {
		f.tween = nil
	}
}

func (f *tintFade) color() Color {
	return ColorWhite.Lerp(ColorHighlight, float64(f.value))
}

// updateFades syncs every fade with its object's highlight flag.
func (g *game) updateFades(dt float32) {
	for _, o := range g.scene.Objects() {
		f := g.fades[o.ID]
		if f == nil {
			f = &tintFade{}
			g.fades[o.ID] = f
		}
		f.set(o.Hovered)
		f.update(dt)
	}
}

// frameTints tells atlas frames apart when an atlas object has no image.
var frameTints = []Color{
	{1, 1, 1, 1},
	{0.55, 0.8, 1, 1},
	{0.6, 1, 0.6, 1},
	{1, 0.85, 0.5, 1},
}

// whitePixel singleton (no sync.Once; ldeditor is single-threaded)
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(ColorWhite.toRGBA())
	}
	return whitePixel
}

// sprite is what the host draws for one object this frame.
type sprite struct {
	img      *ebiten.Image
	w, h     float64 // size in world units
	rotated  bool    // atlas region stored 90 degrees clockwise
	baseTint Color
}

// spriteFor picks the image for o. While hovered, HoverAsset replaces Asset.
// Objects without an image are drawn as solid rectangles of their footprint.
func (s *Scene) spriteFor(o *Object) (sprite, bool) {
	key := o.Asset
	if o.Hovered && o.HoverAsset != "" {
		key = o.HoverAsset
	}
	if key != "" {
		if img, ok := s.assets.Image(key); ok {
			b := img.Bounds()
			return sprite{img: img, w: float64(b.Dx()), h: float64(b.Dy()), baseTint: ColorWhite}, true
		}
		if at, ok := s.assets.Atlas(key); ok {
			r, ok := at.Frame(o.Frame)
			img := at.SubImage(o.Frame)
			if ok && img != nil {
				return sprite{img: img, w: float64(r.Width), h: float64(r.Height), rotated: r.Rotated, baseTint: ColorWhite}, true
			}
		}
	}
	if !o.Footprint.Valid() {
		return sprite{}, false
	}
	tint := ColorWhite
	if o.Footprint.Kind == FootprintAtlas {
		tint = frameTints[o.Frame%len(frameTints)]
	}
	return sprite{
		img:      ensureWhitePixel(),
		w:        float64(o.Footprint.Width),
		h:        float64(o.Footprint.Height),
		baseTint: tint,
	}, true
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.scene.ClearColor.toRGBA())

	cam := g.scene.Camera()
	if cam == nil {
		g.scene.flushScreenshots(screen)
		return
	}
	var visible Rect
	if cam.CullEnabled {
		visible = cam.VisibleBounds()
	}

	for _, o := range g.scene.Objects() {
		sp, ok := g.scene.spriteFor(o)
		if !ok {
			continue
		}
		if cam.CullEnabled && !o.Bounds(FixedFootprint(float32(sp.w), float32(sp.h))).Intersects(visible) {
			continue
		}

		op := &ebiten.DrawImageOptions{}
		b := sp.img.Bounds()
		iw, ih := float64(b.Dx()), float64(b.Dy())
		if sp.rotated {
			// Stored clockwise; rotate back so the frame is upright.
			op.GeoM.Rotate(-math.Pi / 2)
			op.GeoM.Translate(0, iw)
			iw, ih = ih, iw
		}
		op.GeoM.Scale(sp.w/iw, sp.h/ih)
		op.GeoM.Translate(-sp.w/2, -sp.h/2)
		op.GeoM.Scale(cam.Zoom, cam.Zoom)
		op.GeoM.Rotate(cam.Rotation)
		sx, sy := cam.WorldToScreen(float64(o.X), float64(o.Y))
		op.GeoM.Translate(sx, sy)

		tint := sp.baseTint
		if f := g.fades[o.ID]; f != nil {
			hl := f.color()
			tint = Color{tint.R * hl.R, tint.G * hl.G, tint.B * hl.B, tint.A * hl.A}
		} else if o.Hovered {
			tint = ColorHighlight
		}
		op.ColorScale.ScaleWithColor(tint.toRGBA())
		screen.DrawImage(sp.img, op)
	}

	if g.cfg.ShowFPS || g.scene.debug {
		ebitenutil.DebugPrint(screen, debugOverlay(g.scene, ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	g.scene.flushScreenshots(screen)
}
