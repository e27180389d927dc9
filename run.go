package ldeditor

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// Run opens a window and drives the scene with a minimal game loop: each
// tick polls the cursor, calls Scene.Update, and advances highlight fades.
// It blocks until the window is closed.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = DefaultRunConfig.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultRunConfig.Height
	}
	if cfg.Title == "" {
		cfg.Title = DefaultRunConfig.Title
	}
	if scene.Camera() == nil {
		scene.SetCamera(NewCamera(Rect{Width: float64(cfg.Width), Height: float64(cfg.Height)}))
	}
	if cfg.Debug {
		scene.SetDebugMode(true)
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(newGame(scene, cfg))
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene  *Scene
	cfg    RunConfig
	width  int
	height int
	fades  map[uint32]*tintFade
}

func newGame(scene *Scene, cfg RunConfig) *game {
	return &game{
		scene:  scene,
		cfg:    cfg,
		width:  cfg.Width,
		height: cfg.Height,
		fades:  make(map[uint32]*tintFade),
	}
}

func (g *game) Update() error {
	err := g.scene.Update(pollCursor(g.width, g.height))
	if err != nil && !errors.Is(err, ErrCameraUnavailable) {
		return err
	}
	g.updateFades(float32(1.0 / float64(ebiten.TPS())))
	return nil
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	if cam := g.scene.Camera(); cam != nil {
		cam.Viewport.Width = float64(outsideWidth)
		cam.Viewport.Height = float64(outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// pollCursor reads the mouse position. A position outside the w x h window
// is reported as an absent cursor.
func pollCursor(w, h int) ScreenCursor {
	mx, my := ebiten.CursorPosition()
	return cursorInWindow(mx, my, w, h)
}

func cursorInWindow(mx, my, w, h int) ScreenCursor {
	if mx < 0 || my < 0 || mx >= w || my >= h {
		return ScreenCursor{ViewportW: float32(w), ViewportH: float32(h)}
	}
	return CursorFromTopLeft(float32(mx), float32(my), float32(w), float32(h))
}
