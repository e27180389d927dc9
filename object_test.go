package ldeditor

import (
	"errors"
	"testing"
)

func TestNewImageObject(t *testing.T) {
	o, err := NewImageObject("ball", 300, 0, 32, 32)
	if err != nil {
		t.Fatal(err)
	}
	if o.Footprint.Kind != FootprintFixed || o.Footprint.Width != 32 || o.Footprint.Height != 32 {
		t.Errorf("Footprint = %+v", o.Footprint)
	}
	if o.ID == 0 {
		t.Error("ID should be assigned")
	}
	if o.Hovered || o.Frame != 0 {
		t.Error("new objects start Idle at frame 0")
	}
}

func TestNewAtlasObject(t *testing.T) {
	o, err := NewAtlasObject("atlas", -300, 0, 32, 32, 3)
	if err != nil {
		t.Fatal(err)
	}
	if o.Footprint.Kind != FootprintAtlas || o.Footprint.Frames != 3 {
		t.Errorf("Footprint = %+v", o.Footprint)
	}
}

func TestObjectIDsUnique(t *testing.T) {
	a, _ := NewImageObject("a", 0, 0, 1, 1)
	b, _ := NewImageObject("b", 0, 0, 1, 1)
	if a.ID == b.ID {
		t.Errorf("IDs should differ, both %d", a.ID)
	}
}

func TestNewObject_InvalidFootprint(t *testing.T) {
	tests := []struct {
		name string
		make func() (*Object, error)
	}{
		{"zero width", func() (*Object, error) { return NewImageObject("x", 0, 0, 0, 10) }},
		{"negative height", func() (*Object, error) { return NewImageObject("x", 0, 0, 10, -1) }},
		{"atlas no frames", func() (*Object, error) { return NewAtlasObject("x", 0, 0, 10, 10, 0) }},
		{"atlas zero cell", func() (*Object, error) { return NewAtlasObject("x", 0, 0, 0, 10, 2) }},
		{"asset empty", func() (*Object, error) { return NewAssetObject("x", "", 0, 0) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := tt.make()
			if o != nil {
				t.Error("expected nil object")
			}
			if !errors.Is(err, ErrInvalidFootprint) {
				t.Errorf("err = %v, want ErrInvalidFootprint", err)
			}
		})
	}
}

func TestNewAssetObject(t *testing.T) {
	o, err := NewAssetObject("ball", "white_ball", 1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if o.Footprint.Kind != FootprintNone || o.Asset != "white_ball" {
		t.Errorf("object = %+v", o)
	}
}

func TestFootprintValid(t *testing.T) {
	tests := []struct {
		fp   Footprint
		want bool
	}{
		{FixedFootprint(1, 1), true},
		{AtlasFootprint(1, 1, 1), true},
		{AtlasFootprint(1, 1, 0), false},
		{FixedFootprint(0, 1), false},
		{Footprint{Width: 5, Height: 5}, false},
	}
	for _, tt := range tests {
		if got := tt.fp.Valid(); got != tt.want {
			t.Errorf("%+v.Valid() = %v, want %v", tt.fp, got, tt.want)
		}
	}
}

func TestObjectPositionAndBounds(t *testing.T) {
	o, _ := NewImageObject("x", 0, 0, 20, 10)
	o.SetPosition(100, 50)
	o.Z = 7
	p := o.Position()
	if p.X() != 100 || p.Y() != 50 {
		t.Errorf("Position = %v, want (100,50)", p)
	}
	b := o.Bounds(o.Footprint)
	want := Rect{X: 90, Y: 45, Width: 20, Height: 10}
	if b != want {
		t.Errorf("Bounds = %+v, want %+v", b, want)
	}
	if !b.Contains(110, 55) || b.Contains(110.5, 55) {
		t.Error("Bounds edges should be inclusive")
	}
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{Err: ErrDegenerateViewport}
	if d.String() != ErrDegenerateViewport.Error() {
		t.Errorf("frame-wide diagnostic = %q", d.String())
	}
	d = Diagnostic{ObjectID: 3, Name: "ball", Err: ErrUnresolvedFootprint}
	if got, want := d.String(), `object "ball" (id 3): ldeditor: unresolved footprint`; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestColorLerp(t *testing.T) {
	mid := ColorWhite.Lerp(ColorHighlight, 0.5)
	if !approxEqual(mid.R, 1, epsilon) || !approxEqual(mid.G, 0.5, epsilon) || !approxEqual(mid.B, 0.5, epsilon) {
		t.Errorf("Lerp(0.5) = %+v", mid)
	}
	if ColorWhite.Lerp(ColorHighlight, -1) != ColorWhite {
		t.Error("Lerp below 0 should clamp")
	}
	if ColorWhite.Lerp(ColorHighlight, 2) != ColorHighlight {
		t.Error("Lerp above 1 should clamp")
	}
}

func TestColorToRGBA_Premultiplied(t *testing.T) {
	c := Color{1, 0.5, 0, 0.5}.toRGBA()
	if c.R != 127 || c.G != 63 || c.B != 0 || c.A != 127 {
		t.Errorf("toRGBA = %+v", c)
	}
}
