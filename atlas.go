package ldeditor

import (
	"encoding/json"
	"fmt"
	"image"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// TextureRegion describes a sub-rectangle within an atlas page.
// Value type, stored directly in the Atlas frame list.
type TextureRegion struct {
	X, Y      uint16 // top-left corner of the sub-image rect within the atlas page
	Width     uint16 // width of the sub-image rect (may differ from OriginalW if trimmed)
	Height    uint16 // height of the sub-image rect (may differ from OriginalH if trimmed)
	OriginalW uint16 // untrimmed sprite width as authored
	OriginalH uint16 // untrimmed sprite height as authored
	OffsetX   int16  // horizontal trim offset from TexturePacker
	OffsetY   int16  // vertical trim offset from TexturePacker
	Rotated   bool   // true if the region is stored 90 degrees clockwise in the atlas
}

// Atlas is a single page image cut into an ordered list of frames. Frame
// indices are what Object.Frame refers to.
type Atlas struct {
	// Page is the atlas page image. May be nil in tests that only need sizes.
	Page   *ebiten.Image
	frames []TextureRegion
	names  map[string]int
}

// NewGridAtlas cuts page into cols x rows cells of cellW x cellH pixels.
// Frames are numbered row-major starting at the top-left cell.
func NewGridAtlas(page *ebiten.Image, cellW, cellH, cols, rows int) (*Atlas, error) {
	if cellW <= 0 || cellH <= 0 || cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("ldeditor: invalid atlas grid %dx%d cells of %dx%d", cols, rows, cellW, cellH)
	}
	if page != nil {
		b := page.Bounds()
		if b.Dx() < cellW*cols || b.Dy() < cellH*rows {
			return nil, fmt.Errorf("ldeditor: atlas page %dx%d smaller than %dx%d grid of %dx%d cells",
				b.Dx(), b.Dy(), cols, rows, cellW, cellH)
		}
	}
	a := &Atlas{Page: page, names: make(map[string]int)}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			a.frames = append(a.frames, TextureRegion{
				X:         uint16(col * cellW),
				Y:         uint16(row * cellH),
				Width:     uint16(cellW),
				Height:    uint16(cellH),
				OriginalW: uint16(cellW),
				OriginalH: uint16(cellH),
			})
		}
	}
	return a, nil
}

// LoadAtlas parses TexturePacker JSON data for a single page. Both the hash
// format ("frames" object, ordered by frame name) and the array format
// ("frames" list, kept in file order) are supported.
func LoadAtlas(jsonData []byte, page *ebiten.Image) (*Atlas, error) {
	var probe struct {
		Frames json.RawMessage `json:"frames"`
	}
	if err := json.Unmarshal(jsonData, &probe); err != nil {
		return nil, fmt.Errorf("ldeditor: failed to parse atlas JSON: %w", err)
	}
	if len(probe.Frames) == 0 {
		return nil, fmt.Errorf("ldeditor: atlas JSON has no \"frames\" key")
	}

	a := &Atlas{Page: page, names: make(map[string]int)}
	var err error
	switch probe.Frames[0] {
	case '{':
		err = parseHashFrames(probe.Frames, a)
	case '[':
		err = parseArrayFrames(probe.Frames, a)
	default:
		err = fmt.Errorf("ldeditor: atlas \"frames\" must be an object or an array")
	}
	if err != nil {
		return nil, err
	}
	if len(a.frames) == 0 {
		return nil, fmt.Errorf("ldeditor: atlas JSON has no frames")
	}
	return a, nil
}

// Len returns the number of frames.
func (a *Atlas) Len() int {
	return len(a.frames)
}

// Frame returns the region of frame i.
func (a *Atlas) Frame(i int) (TextureRegion, bool) {
	if i < 0 || i >= len(a.frames) {
		return TextureRegion{}, false
	}
	return a.frames[i], true
}

// Index returns the frame index of a named TexturePacker frame.
func (a *Atlas) Index(name string) (int, bool) {
	i, ok := a.names[name]
	return i, ok
}

// SubImage returns the page sub-image for frame i, or nil if the page is
// missing or i is out of range.
func (a *Atlas) SubImage(i int) *ebiten.Image {
	r, ok := a.Frame(i)
	if !ok || a.Page == nil {
		return nil
	}
	w, h := int(r.Width), int(r.Height)
	if r.Rotated {
		w, h = h, w
	}
	rect := image.Rect(int(r.X), int(r.Y), int(r.X)+w, int(r.Y)+h)
	return a.Page.SubImage(rect).(*ebiten.Image)
}

// --- JSON structure types ---

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonSize struct {
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Filename         string   `json:"filename"`
	Frame            jsonRect `json:"frame"`
	Rotated          bool     `json:"rotated"`
	Trimmed          bool     `json:"trimmed"`
	SpriteSourceSize jsonRect `json:"spriteSourceSize"`
	SourceSize       jsonSize `json:"sourceSize"`
}

// parseHashFrames parses the hash format: {"name": {frame...}, ...}
func parseHashFrames(raw json.RawMessage, a *Atlas) error {
	var frames map[string]jsonFrame
	if err := json.Unmarshal(raw, &frames); err != nil {
		return fmt.Errorf("ldeditor: failed to parse atlas frames: %w", err)
	}
	names := make([]string, 0, len(frames))
	for name := range frames {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		a.addFrame(name, frames[name])
	}
	return nil
}

// parseArrayFrames parses the array format: [{"filename": "...", "frame": {...}}, ...]
func parseArrayFrames(raw json.RawMessage, a *Atlas) error {
	var frames []jsonFrame
	if err := json.Unmarshal(raw, &frames); err != nil {
		return fmt.Errorf("ldeditor: failed to parse atlas frames array: %w", err)
	}
	for _, f := range frames {
		a.addFrame(f.Filename, f)
	}
	return nil
}

func (a *Atlas) addFrame(name string, f jsonFrame) {
	if name != "" {
		a.names[name] = len(a.frames)
	}
	a.frames = append(a.frames, frameToRegion(f))
}

func frameToRegion(f jsonFrame) TextureRegion {
	return TextureRegion{
		X:         uint16(f.Frame.X),
		Y:         uint16(f.Frame.Y),
		Width:     uint16(f.Frame.W),
		Height:    uint16(f.Frame.H),
		OriginalW: uint16(f.SourceSize.W),
		OriginalH: uint16(f.SourceSize.H),
		OffsetX:   int16(f.SpriteSourceSize.X),
		OffsetY:   int16(f.SpriteSourceSize.Y),
		Rotated:   f.Rotated,
	}
}
