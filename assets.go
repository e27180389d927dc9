package ldeditor

import "github.com/hajimehoshi/ebiten/v2"

// FootprintResolver looks up the footprint of an asset-bound object. frame is
// the object's current frame and selects the cell size for atlas assets.
// ok is false when the asset is missing or not loaded yet.
type FootprintResolver interface {
	ResolveFootprint(asset string, frame int) (fp Footprint, ok bool)
}

// Assets is a registry of loaded images and atlases keyed by name. It is the
// scene's default FootprintResolver and the host's image source for drawing.
type Assets struct {
	images  map[string]*ebiten.Image
	atlases map[string]*Atlas
}

// NewAssets creates an empty registry.
func NewAssets() *Assets {
	return &Assets{
		images:  make(map[string]*ebiten.Image),
		atlases: make(map[string]*Atlas),
	}
}

// AddImage registers img under key, replacing any image or atlas with that key.
func (a *Assets) AddImage(key string, img *ebiten.Image) {
	delete(a.atlases, key)
	a.images[key] = img
}

// AddAtlas registers atlas under key, replacing any image or atlas with that key.
func (a *Assets) AddAtlas(key string, atlas *Atlas) {
	delete(a.images, key)
	a.atlases[key] = atlas
}

// Remove unregisters key.
func (a *Assets) Remove(key string) {
	delete(a.images, key)
	delete(a.atlases, key)
}

// Image returns the image registered under key.
func (a *Assets) Image(key string) (*ebiten.Image, bool) {
	img, ok := a.images[key]
	return img, ok && img != nil
}

// Atlas returns the atlas registered under key.
func (a *Assets) Atlas(key string) (*Atlas, bool) {
	at, ok := a.atlases[key]
	return at, ok && at != nil
}

// ResolveFootprint implements FootprintResolver. Images resolve to their
// bounds; atlases resolve to the untrimmed size of the given frame, falling
// back to frame 0 when frame is out of range.
func (a *Assets) ResolveFootprint(key string, frame int) (Footprint, bool) {
	if img, ok := a.Image(key); ok {
		b := img.Bounds()
		fp := FixedFootprint(float32(b.Dx()), float32(b.Dy()))
		return fp, fp.Valid()
	}
	if at, ok := a.Atlas(key); ok {
		r, ok := at.Frame(frame)
		if !ok {
			if r, ok = at.Frame(0); !ok {
				return Footprint{}, false
			}
		}
		fp := AtlasFootprint(float32(r.OriginalW), float32(r.OriginalH), at.Len())
		return fp, fp.Valid()
	}
	return Footprint{}, false
}
