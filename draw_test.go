package ldeditor

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestTintFade(t *testing.T) {
	var f tintFade
	if f.color() != ColorWhite {
		t.Errorf("idle color = %+v, want white", f.color())
	}

	f.set(true)
	f.update(highlightFadeSeconds / 2)
	if f.value <= 0 || f.value >= 1 {
		t.Errorf("mid-fade value = %f, want in (0,1)", f.value)
	}
	f.update(highlightFadeSeconds)
	if f.value != 1 || f.tween != nil {
		t.Errorf("finished fade: value=%f tween=%v", f.value, f.tween)
	}
	if f.color() != ColorHighlight {
		t.Errorf("hovered color = %+v, want highlight", f.color())
	}

	// Setting the same state again does not restart the fade.
	f.set(true)
	if f.tween != nil {
		t.Error("set(true) twice restarted the fade")
	}

	f.set(false)
	f.update(highlightFadeSeconds * 2)
	if f.value != 0 {
		t.Errorf("faded out value = %f, want 0", f.value)
	}
}

func TestGameUpdateFades(t *testing.T) {
	s, ball, atlas := editorScene(t)
	g := newGame(s, DefaultRunConfig)
	_ = s.Update(ballPixel)

	g.updateFades(1)
	if len(g.fades) != 2 {
		t.Fatalf("fades = %d, want 2", len(g.fades))
	}
	if g.fades[ball.ID].value != 1 {
		t.Errorf("ball fade = %f, want 1", g.fades[ball.ID].value)
	}
	if g.fades[atlas.ID].value != 0 {
		t.Errorf("atlas fade = %f, want 0", g.fades[atlas.ID].value)
	}
}

func TestSpriteFor(t *testing.T) {
	s := NewScene()
	s.Assets().AddImage("ball", ebiten.NewImage(32, 32))
	s.Assets().AddImage("square", ebiten.NewImage(30, 30))
	strip, err := NewGridAtlas(ebiten.NewImage(96, 32), 32, 32, 3, 1)
	if err != nil {
		t.Fatal(err)
	}
	s.Assets().AddAtlas("strip", strip)

	t.Run("image", func(t *testing.T) {
		o, _ := NewAssetObject("ball", "ball", 0, 0)
		sp, ok := s.spriteFor(o)
		if !ok || sp.w != 32 || sp.h != 32 {
			t.Errorf("sprite = %+v, %v", sp, ok)
		}
	})

	t.Run("hover asset", func(t *testing.T) {
		o, _ := NewAssetObject("ball", "ball", 0, 0)
		o.HoverAsset = "square"
		o.Hovered = true
		sp, ok := s.spriteFor(o)
		if !ok || sp.w != 30 {
			t.Errorf("hovered sprite width = %f, want 30", sp.w)
		}
		o.Hovered = false
		sp, _ = s.spriteFor(o)
		if sp.w != 32 {
			t.Errorf("idle sprite width = %f, want 32", sp.w)
		}
	})

	t.Run("atlas frame", func(t *testing.T) {
		o, _ := NewAssetObject("atlas", "strip", 0, 0)
		o.Frame = 2
		sp, ok := s.spriteFor(o)
		if !ok {
			t.Fatal("no sprite")
		}
		if b := sp.img.Bounds(); b.Min.X != 64 {
			t.Errorf("frame 2 sub-image starts at x=%d, want 64", b.Min.X)
		}
	})

	t.Run("footprint rectangle", func(t *testing.T) {
		o, _ := NewAtlasObject("tiles", 0, 0, 20, 10, 4)
		o.Frame = 1
		sp, ok := s.spriteFor(o)
		if !ok || sp.img != ensureWhitePixel() {
			t.Fatal("expected white pixel sprite")
		}
		if sp.w != 20 || sp.h != 10 || sp.baseTint != frameTints[1] {
			t.Errorf("sprite = %+v", sp)
		}
	})

	t.Run("unresolved", func(t *testing.T) {
		o, _ := NewAssetObject("pending", "missing", 0, 0)
		if _, ok := s.spriteFor(o); ok {
			t.Error("unresolved asset should not be drawn")
		}
	})
}

func TestCursorInWindow(t *testing.T) {
	tests := []struct {
		name        string
		mx, my      int
		present     bool
		wantX, wantY float32
	}{
		{"inside", 10, 20, true, 10, 748},
		{"top-left pixel", 0, 0, true, 0, 768},
		{"left of window", -1, 20, false, 0, 0},
		{"below window", 10, 768, false, 0, 0},
		{"right of window", 1024, 20, false, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cursorInWindow(tt.mx, tt.my, 1024, 768)
			if c.Present != tt.present {
				t.Fatalf("Present = %v, want %v", c.Present, tt.present)
			}
			if c.ViewportW != 1024 || c.ViewportH != 768 {
				t.Errorf("viewport = %vx%v", c.ViewportW, c.ViewportH)
			}
			if tt.present && (c.X != tt.wantX || c.Y != tt.wantY) {
				t.Errorf("cursor = (%v,%v), want (%v,%v)", c.X, c.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestGameLayout(t *testing.T) {
	s, _, _ := editorScene(t)
	g := newGame(s, DefaultRunConfig)
	w, h := g.Layout(640, 480)
	if w != 640 || h != 480 {
		t.Errorf("Layout = %dx%d, want 640x480", w, h)
	}
	if g.width != 640 || s.Camera().Viewport.Height != 480 {
		t.Error("Layout should resize the game and the camera viewport")
	}
}
