package scene

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// ErrInvalidConfig is wrapped by every validation failure of a scene file
var ErrInvalidConfig = errors.New("invalid scene config")

const (
	defaultWidth  = 400
	defaultHeight = 200
)

// Triple is a JSON [x, y, z] array
type Triple [3]float64

func (t Triple) Point() core.Point   { return core.NewPoint(t[0], t[1], t[2]) }
func (t Triple) Vector() core.Vector { return core.NewVector(t[0], t[1], t[2]) }

// ColorCfg is a color given either by name ("steel blue") or as [r, g, b]
type ColorCfg core.Color

func (c *ColorCfg) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		color, ok := core.ColorByName(name)
		if !ok {
			return fmt.Errorf("%w: unknown color %q", ErrInvalidConfig, name)
		}
		*c = ColorCfg(color)
		return nil
	}
	var rgb Triple
	if err := json.Unmarshal(data, &rgb); err != nil {
		return fmt.Errorf("%w: color must be a name or [r, g, b]", ErrInvalidConfig)
	}
	*c = ColorCfg(core.NewColor(rgb[0], rgb[1], rgb[2]))
	return nil
}

type CameraCfg struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Fov    float64 `json:"fov"` // radians
	From   Triple  `json:"from"`
	To     Triple  `json:"to"`
	Up     *Triple `json:"up,omitempty"`
}

type LightCfg struct {
	Position  Triple    `json:"position"`
	Intensity *ColorCfg `json:"intensity,omitempty"`
}

// TransformCfg is one step of a transform chain. Steps apply in the order
// they are listed.
type TransformCfg struct {
	Op   string    `json:"op"`
	Args []float64 `json:"args"`
}

// SourceCfg is one side of a pattern: a color, or a nested pattern object
type SourceCfg struct {
	Color   *ColorCfg
	Pattern *PatternCfg
}

func (s *SourceCfg) UnmarshalJSON(data []byte) error {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		var p PatternCfg
		if err := json.Unmarshal(trimmed, &p); err != nil {
			return err
		}
		s.Pattern = &p
		return nil
	}
	var c ColorCfg
	if err := json.Unmarshal(data, &c); err != nil {
		return err
	}
	s.Color = &c
	return nil
}

type PatternCfg struct {
	Type      string         `json:"type"`
	A         SourceCfg      `json:"a"`
	B         SourceCfg      `json:"b"`
	Width     float64        `json:"width,omitempty"`  // checker_uv only
	Height    float64        `json:"height,omitempty"` // checker_uv only
	Transform []TransformCfg `json:"transform,omitempty"`
}

// MaterialCfg overrides fields of the shape's default material. Absent
// fields keep their default.
type MaterialCfg struct {
	Color           *ColorCfg   `json:"color,omitempty"`
	Pattern         *PatternCfg `json:"pattern,omitempty"`
	Ambient         *float64    `json:"ambient,omitempty"`
	Diffuse         *float64    `json:"diffuse,omitempty"`
	Specular        *float64    `json:"specular,omitempty"`
	Shininess       *float64    `json:"shininess,omitempty"`
	Reflective      *float64    `json:"reflective,omitempty"`
	Transparency    *float64    `json:"transparency,omitempty"`
	RefractiveIndex *float64    `json:"refractiveIndex,omitempty"`
}

type ShapeCfg struct {
	Type      string         `json:"type"` // sphere, glass_sphere or plane
	Transform []TransformCfg `json:"transform,omitempty"`
	Material  *MaterialCfg   `json:"material,omitempty"`
}

// Config is the JSON description of a scene
type Config struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Group       string     `json:"group,omitempty"`
	Camera      CameraCfg  `json:"camera"`
	Light       LightCfg   `json:"light"`
	Depth       int        `json:"depth,omitempty"`
	Background  *ColorCfg  `json:"background,omitempty"`
	Shapes      []ShapeCfg `json:"shapes"`
}

// LoadConfig reads and parses a scene file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes a scene description and fills in defaults
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Defaults / validation
	if cfg.Camera.Width <= 0 {
		cfg.Camera.Width = defaultWidth
	}
	if cfg.Camera.Height <= 0 {
		cfg.Camera.Height = defaultHeight
	}
	if cfg.Camera.Fov == 0 {
		cfg.Camera.Fov = math.Pi / 3
	}
	if cfg.Camera.Up == nil {
		cfg.Camera.Up = &Triple{0, 1, 0}
	}
	if cfg.Light.Intensity == nil {
		white := ColorCfg(core.White)
		cfg.Light.Intensity = &white
	}
	if cfg.Depth <= 0 {
		cfg.Depth = DefaultMaxDepth
	}
	if len(cfg.Shapes) == 0 {
		return nil, fmt.Errorf("%w: config has no shapes", ErrInvalidConfig)
	}
	return &cfg, nil
}

// Build turns the description into a renderable scene
func (c *Config) Build() (*Scene, error) {
	w := world.New(lights.NewPointLight(c.Light.Position.Point(), core.Color(*c.Light.Intensity)))
	if c.Background != nil {
		w.Background = core.Color(*c.Background)
	}

	for i, sc := range c.Shapes {
		shape, err := sc.Build()
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		w.Add(shape)
	}

	camera, err := newCamera(c.Camera.Width, c.Camera.Height, c.Camera.Fov,
		c.Camera.From.Point(), c.Camera.To.Point(), c.Camera.Up.Vector())
	if err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}

	name := c.Name
	if name == "" {
		name = "untitled"
	}
	return &Scene{Name: name, World: w, Camera: camera, MaxDepth: c.Depth}, nil
}

// Build creates the shape with its transform and material overrides applied
func (sc ShapeCfg) Build() (geometry.Shape, error) {
	var shape geometry.Shape
	switch sc.Type {
	case "sphere":
		shape = geometry.NewSphere()
	case "glass_sphere":
		shape = geometry.NewGlassSphere()
	case "plane":
		shape = geometry.NewPlane()
	default:
		return shape, fmt.Errorf("%w: unknown shape type %q", ErrInvalidConfig, sc.Type)
	}

	m, err := buildTransform(sc.Transform)
	if err != nil {
		return shape, err
	}
	shape, err = shape.WithTransform(m)
	if err != nil {
		return shape, err
	}

	if sc.Material != nil {
		mat, err := sc.Material.apply(shape.Material)
		if err != nil {
			return shape, err
		}
		shape = shape.WithMaterial(mat)
	}
	return shape, nil
}

func (mc MaterialCfg) apply(m material.Material) (material.Material, error) {
	if mc.Color != nil {
		m = m.WithColor(core.Color(*mc.Color))
	}
	if mc.Pattern != nil {
		p, err := mc.Pattern.Build()
		if err != nil {
			return m, err
		}
		m = m.WithPattern(p)
	}
	if mc.Ambient != nil {
		m = m.WithAmbient(*mc.Ambient)
	}
	if mc.Diffuse != nil {
		m = m.WithDiffuse(*mc.Diffuse)
	}
	if mc.Specular != nil {
		m = m.WithSpecular(*mc.Specular)
	}
	if mc.Shininess != nil {
		m = m.WithShininess(*mc.Shininess)
	}
	if mc.Reflective != nil {
		m = m.WithReflective(*mc.Reflective)
	}
	if mc.Transparency != nil {
		m = m.WithTransparency(*mc.Transparency)
	}
	if mc.RefractiveIndex != nil {
		if *mc.RefractiveIndex <= 0 {
			return m, fmt.Errorf("%w: refractive index must be > 0, got %g", ErrInvalidConfig, *mc.RefractiveIndex)
		}
		m = m.WithRefractiveIndex(*mc.RefractiveIndex)
	}
	return m, nil
}

// Build creates the pattern, recursing into nested sources
func (pc PatternCfg) Build() (material.Pattern, error) {
	a, err := pc.A.source()
	if err != nil {
		return material.Pattern{}, err
	}
	b, err := pc.B.source()
	if err != nil {
		return material.Pattern{}, err
	}

	var p material.Pattern
	switch pc.Type {
	case material.Striped.String():
		p = material.NewStriped(a, b)
	case material.Gradient.String():
		p = material.NewGradient(a, b)
	case material.Ring.String():
		p = material.NewRing(a, b)
	case material.Checker.String():
		p = material.NewChecker(a, b)
	case material.CheckerUV.String():
		if pc.Width <= 0 || pc.Height <= 0 {
			return p, fmt.Errorf("%w: checker_uv needs positive width and height", ErrInvalidConfig)
		}
		p = material.NewCheckerUV(pc.Width, pc.Height, a, b)
	default:
		return p, fmt.Errorf("%w: unknown pattern type %q", ErrInvalidConfig, pc.Type)
	}

	m, err := buildTransform(pc.Transform)
	if err != nil {
		return p, err
	}
	return p.WithTransform(m)
}

func (s SourceCfg) source() (material.Source, error) {
	switch {
	case s.Pattern != nil:
		p, err := s.Pattern.Build()
		if err != nil {
			return material.Source{}, err
		}
		return material.Nested(p), nil
	case s.Color != nil:
		return material.Solid(core.Color(*s.Color)), nil
	}
	return material.Source{}, fmt.Errorf("%w: pattern source is missing", ErrInvalidConfig)
}

// buildTransform chains the steps so the first listed is applied first
func buildTransform(steps []TransformCfg) (core.Matrix, error) {
	matrices := make([]core.Matrix, 0, len(steps))
	for _, step := range steps {
		m, err := step.matrix()
		if err != nil {
			return core.Identity(), err
		}
		matrices = append(matrices, m)
	}
	return core.Chain(matrices...), nil
}

func (t TransformCfg) matrix() (core.Matrix, error) {
	want := map[string]int{
		"translate": 3,
		"scale":     3,
		"rotate_x":  1,
		"rotate_y":  1,
		"rotate_z":  1,
		"shear":     6,
	}
	n, ok := want[t.Op]
	if !ok {
		return core.Identity(), fmt.Errorf("%w: unknown transform %q", ErrInvalidConfig, t.Op)
	}
	if len(t.Args) != n {
		return core.Identity(), fmt.Errorf("%w: %s takes %d arguments, got %d", ErrInvalidConfig, t.Op, n, len(t.Args))
	}

	a := t.Args
	switch t.Op {
	case "translate":
		return core.Translation(a[0], a[1], a[2]), nil
	case "scale":
		return core.Scaling(a[0], a[1], a[2]), nil
	case "rotate_x":
		return core.RotationX(a[0]), nil
	case "rotate_y":
		return core.RotationY(a[0]), nil
	case "rotate_z":
		return core.RotationZ(a[0]), nil
	default:
		return core.Shearing(a[0], a[1], a[2], a[3], a[4], a[5]), nil
	}
}

// LoadFile loads and builds a JSON scene. width and height override the
// file's camera size when positive.
func LoadFile(path string, width, height int) (*Scene, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if width > 0 {
		cfg.Camera.Width = width
	}
	if height > 0 {
		cfg.Camera.Height = height
	}
	s, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
