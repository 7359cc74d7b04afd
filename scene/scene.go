// Package scene loads a TOML scene description and turns it into
// transforms, a view matrix and a projection matrix ready for MVP
// composition.
package scene

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"

	"github.com/doytsujin/zalgebra"
)

var ErrUnknownProjection = errors.New("unknown projection kind")

// CameraConfig describes the view and projection of the scene camera.
type CameraConfig struct {
	Position [3]float32 `toml:"position"`
	Target   [3]float32 `toml:"target"`
	Up       [3]float32 `toml:"up"`

	// Projection selects "perspective" or "orthographic".
	Projection string  `toml:"projection"`
	FovDegrees float32 `toml:"fov_degrees"`
	Aspect     float32 `toml:"aspect"`
	Near       float32 `toml:"near"`
	Far        float32 `toml:"far"`

	// Orthographic extents, ignored for perspective.
	Left   float32 `toml:"left"`
	Right  float32 `toml:"right"`
	Bottom float32 `toml:"bottom"`
	Top    float32 `toml:"top"`
}

// NodeConfig describes a single object placement.
type NodeConfig struct {
	Name          string     `toml:"name"`
	Translate     [3]float32 `toml:"translate"`
	RotateDegrees float32    `toml:"rotate_degrees"`
	RotateAxis    [3]float32 `toml:"rotate_axis"`
	Scale         [3]float32 `toml:"scale"`
}

// Config is the root of the scene description file.
type Config struct {
	Camera CameraConfig `toml:"camera"`
	Nodes  []NodeConfig `toml:"node"`
}

// Node is an object in the scene, identified by a generated id.
type Node struct {
	ID        uuid.UUID
	Name      string
	Transform *zalgebra.Transform[float32]
}

// Scene holds the loaded nodes together with the camera matrices.
type Scene struct {
	View       zalgebra.Mat4[float32]
	Projection zalgebra.Mat4[float32]

	nodes []*Node
	byID  map[uuid.UUID]*Node
}

func vec3(a [3]float32) zalgebra.Vec3[float32] {
	return zalgebra.NewVec3(a[0], a[1], a[2])
}

// Load reads the scene description at path and builds the scene.
func Load(path string) (*Scene, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Config{}
	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parsing scene %s: %w", path, err)
	}

	return New(cfg)
}

// New builds a scene from an already parsed configuration.
func New(cfg Config) (*Scene, error) {
	s := &Scene{
		byID: make(map[uuid.UUID]*Node),
	}

	up := vec3(cfg.Camera.Up)
	if up.Eq(zalgebra.NewVec3Zero[float32]()) {
		up = zalgebra.NewVec3Up[float32]()
	}
	s.View = zalgebra.NewMat4LookAt(vec3(cfg.Camera.Position), vec3(cfg.Camera.Target), up)

	switch cfg.Camera.Projection {
	case "", "perspective":
		s.Projection = zalgebra.NewMat4Perspective(
			cfg.Camera.FovDegrees, cfg.Camera.Aspect, cfg.Camera.Near, cfg.Camera.Far)
	case "orthographic":
		s.Projection = zalgebra.NewMat4Orthographic(
			cfg.Camera.Left, cfg.Camera.Right, cfg.Camera.Bottom, cfg.Camera.Top,
			cfg.Camera.Near, cfg.Camera.Far)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProjection, cfg.Camera.Projection)
	}

	for _, nc := range cfg.Nodes {
		axis := vec3(nc.RotateAxis)
		if axis.Eq(zalgebra.NewVec3Zero[float32]()) {
			axis = zalgebra.NewVec3Up[float32]()
		}
		scale := vec3(nc.Scale)
		if scale.Eq(zalgebra.NewVec3Zero[float32]()) {
			scale = zalgebra.NewVec3One[float32]()
		}

		t := zalgebra.NewTransform[float32]()
		t.SetPositionRotationScale(vec3(nc.Translate), nc.RotateDegrees, axis, scale)

		node := &Node{
			ID:        uuid.New(),
			Name:      nc.Name,
			Transform: t,
		}
		s.nodes = append(s.nodes, node)
		s.byID[node.ID] = node
	}

	return s, nil
}

// Nodes returns the scene nodes in file order.
func (s *Scene) Nodes() []*Node {
	return s.nodes
}

// Node returns the node with the given id, or nil.
func (s *Scene) Node(id uuid.UUID) *Node {
	return s.byID[id]
}

// FindNode returns the first node with the given name, or nil.
func (s *Scene) FindNode(name string) *Node {
	for _, n := range s.nodes {
		if n.Name == name {
			return n
		}
	}
	return nil
}

// ModelViewProjection composes projection * view * model for the node.
func (s *Scene) ModelViewProjection(node *Node) zalgebra.Mat4[float32] {
	model := node.Transform.GetWorld()
	return s.Projection.Mul(s.View).Mul(model)
}
