package ldeditor

import (
	"encoding/json"
	"errors"
	"fmt"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// Debug enables Scene debug mode (diagnostics and stats on stderr).
	Debug bool
}

// DefaultRunConfig matches the editor's original window.
var DefaultRunConfig = RunConfig{
	Title:  "LD Editor",
	Width:  1024,
	Height: 768,
}

// SceneConfig is the declarative description of a scene, loaded from JSON.
type SceneConfig struct {
	Camera  CameraConfig   `json:"camera"`
	Objects []ObjectConfig `json:"objects"`
}

// CameraConfig places the designated camera.
type CameraConfig struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Zoom     float64 `json:"zoom,omitempty"`     // defaults to 1
	Rotation float64 `json:"rotation,omitempty"` // radians
}

// ObjectConfig describes one interactive object. Either Asset or an explicit
// Width/Height must be given; Frames > 0 makes an explicit footprint an atlas
// footprint.
type ObjectConfig struct {
	Name       string  `json:"name"`
	X          float32 `json:"x"`
	Y          float32 `json:"y"`
	Z          float32 `json:"z,omitempty"`
	Asset      string  `json:"asset,omitempty"`
	HoverAsset string  `json:"hoverAsset,omitempty"`
	Width      float32 `json:"width,omitempty"`
	Height     float32 `json:"height,omitempty"`
	Frames     int     `json:"frames,omitempty"`
	Frame      int     `json:"frame,omitempty"`
}

// LoadSceneConfig parses and validates a JSON scene description.
func LoadSceneConfig(jsonData []byte) (*SceneConfig, error) {
	var cfg SceneConfig
	if err := json.Unmarshal(jsonData, &cfg); err != nil {
		return nil, fmt.Errorf("ldeditor: failed to parse scene JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every object description without building anything.
func (c *SceneConfig) Validate() error {
	if c.Camera.Zoom < 0 {
		return fmt.Errorf("ldeditor: camera zoom %g must be positive", c.Camera.Zoom)
	}
	var errs []error
	seen := make(map[string]bool, len(c.Objects))
	for i, oc := range c.Objects {
		if oc.Name == "" {
			errs = append(errs, fmt.Errorf("ldeditor: object %d has no name", i))
			continue
		}
		if seen[oc.Name] {
			errs = append(errs, fmt.Errorf("ldeditor: duplicate object name %q", oc.Name))
		}
		seen[oc.Name] = true
		if _, err := oc.build(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Build positions the scene camera (creating one for viewport if the scene
// has none) and adds every configured object.
func (c *SceneConfig) Build(s *Scene, viewport Rect) error {
	objects := make([]*Object, 0, len(c.Objects))
	for _, oc := range c.Objects {
		o, err := oc.build()
		if err != nil {
			return err
		}
		objects = append(objects, o)
	}

	cam := s.Camera()
	if cam == nil {
		cam = NewCamera(viewport)
		s.SetCamera(cam)
	}
	cam.X, cam.Y, cam.Rotation = c.Camera.X, c.Camera.Y, c.Camera.Rotation
	cam.Zoom = 1
	if c.Camera.Zoom > 0 {
		cam.Zoom = c.Camera.Zoom
	}

	for _, o := range objects {
		s.Add(o)
	}
	return nil
}

func (oc ObjectConfig) build() (*Object, error) {
	var (
		o   *Object
		err error
	)
	switch {
	case oc.Width != 0 || oc.Height != 0:
		if oc.Frames > 0 {
			o, err = NewAtlasObject(oc.Name, oc.X, oc.Y, oc.Width, oc.Height, oc.Frames)
		} else {
			o, err = NewImageObject(oc.Name, oc.X, oc.Y, oc.Width, oc.Height)
		}
		if err == nil {
			o.Asset = oc.Asset
		}
	default:
		o, err = NewAssetObject(oc.Name, oc.Asset, oc.X, oc.Y)
	}
	if err != nil {
		return nil, err
	}
	if oc.Frame < 0 || (oc.Frames > 0 && oc.Frame >= oc.Frames) {
		return nil, fmt.Errorf("ldeditor: object %q: starting frame %d out of range", oc.Name, oc.Frame)
	}
	o.Z = oc.Z
	o.HoverAsset = oc.HoverAsset
	o.Frame = oc.Frame
	return o, nil
}
