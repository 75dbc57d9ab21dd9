package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/particle-emitter/component"
	"github.com/lixenwraith/particle-emitter/core"
	"github.com/lixenwraith/particle-emitter/emitter"
	"github.com/lixenwraith/particle-emitter/engine"
	"github.com/lixenwraith/particle-emitter/vmath"
)

// ErrUnsupportedFormat is returned for entity files with an unknown extension
var ErrUnsupportedFormat = errors.New("unsupported entity file format")

// EntityFile is the on-disk description of one scene entity
type EntityFile struct {
	Name            string      `json:"name" yaml:"name" toml:"name"`
	Parent          string      `json:"parent,omitempty" yaml:"parent,omitempty" toml:"parent"`
	Transform       Transform   `json:"transform" yaml:"transform" toml:"transform"`
	ParticleEmitter *EmitterDef `json:"particle_emitter,omitempty" yaml:"particle_emitter,omitempty" toml:"particle_emitter"`
}

type Transform struct {
	Translation []float64 `json:"translation" yaml:"translation" toml:"translation"`
}

// EmitterDef mirrors the emitter constructor arguments
type EmitterDef struct {
	Type       string    `json:"type" yaml:"type" toml:"type"`
	Dimensions []float64 `json:"dimensions" yaml:"dimensions" toml:"dimensions"`
	Texture    string    `json:"texture" yaml:"texture" toml:"texture"`
	Scale      float64   `json:"scale" yaml:"scale" toml:"scale"` // 0 = 1
}

// Deps carries the collaborators attached to every emitter a scene creates
type Deps struct {
	Textures emitter.TextureLookup
	Renderer emitter.Renderer
	Random   emitter.RandomSource // nil = per-emitter time seeded source
	Options  []emitter.Option

	// StrictPresets fails on an unknown emitter type instead of falling back to fog
	StrictPresets bool

	Logger *zap.Logger
}

func (d Deps) logger() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}

// EntityPath is the conventional location of an entity file
func EntityPath(root, scene, name string) string {
	return filepath.Join(root, scene, name+".json")
}

// LoadFile decodes an entity file by extension: .json, .yaml/.yml or .toml
// A missing name defaults to the file's base name
func LoadFile(path string) (EntityFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return EntityFile{}, fmt.Errorf("read scene file %s: %w", path, err)
	}

	var f EntityFile
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		err = json.Unmarshal(data, &f)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &f)
	case ".toml":
		err = toml.Unmarshal(data, &f)
	default:
		return EntityFile{}, fmt.Errorf("scene file %s: %w", path, ErrUnsupportedFormat)
	}
	if err != nil {
		return EntityFile{}, fmt.Errorf("parse scene file %s: %w", path, err)
	}

	if f.Name == "" {
		f.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if err := f.validate(); err != nil {
		return EntityFile{}, fmt.Errorf("scene file %s: %w", path, err)
	}
	return f, nil
}

func (f EntityFile) validate() error {
	if len(f.Transform.Translation) > 3 {
		return fmt.Errorf("translation has %d components, want at most 3", len(f.Transform.Translation))
	}
	if f.ParticleEmitter != nil {
		if n := len(f.ParticleEmitter.Dimensions); n != 0 && n != 2 {
			return fmt.Errorf("emitter dimensions have %d components, want 2", n)
		}
		if f.ParticleEmitter.Scale < 0 {
			return fmt.Errorf("emitter scale %g is negative", f.ParticleEmitter.Scale)
		}
	}
	if f.Parent == f.Name {
		return fmt.Errorf("entity %q is its own parent", f.Name)
	}
	return nil
}

// Spawn creates the entity described by f in world
// A named parent already present in the scene is linked immediately
func Spawn(world *engine.World, scene string, f EntityFile, deps Deps) (core.Entity, error) {
	e := world.CreateEntity()
	world.Names.Set(e, component.NameComponent{Scene: scene, Name: f.Name})
	world.Transforms.Set(e, component.TransformComponent{
		Translation: vmath.V3FFromSlice(f.Transform.Translation),
	})

	if f.ParticleEmitter != nil {
		comp, err := newEmitter(world, e, scene, f, deps)
		if err != nil {
			world.DestroyEntity(e)
			return 0, err
		}
		world.Emitters.Set(e, comp)
	}

	if f.Parent != "" {
		if p, ok := world.FindByName(scene, f.Parent); ok {
			setParent(world, e, p)
		}
	}
	return e, nil
}

func newEmitter(world *engine.World, e core.Entity, scene string, f EntityFile, deps Deps) (component.EmitterComponent, error) {
	def := f.ParticleEmitter

	preset := strings.ToLower(strings.TrimSpace(def.Type))
	cfg, err := emitter.ResolvePreset(preset, deps.StrictPresets)
	if err != nil {
		if deps.StrictPresets {
			return component.EmitterComponent{}, fmt.Errorf("scene %s entity %q: %w", scene, f.Name, err)
		}
		deps.logger().Warn("unknown emitter type, using fog",
			zap.String("scene", scene),
			zap.String("entity", f.Name),
			zap.String("type", def.Type))
		preset = emitter.PresetFog
	}

	scale := def.Scale
	if scale == 0 {
		scale = 1
	}
	var dims vmath.Vec2F
	if len(def.Dimensions) == 2 {
		dims = vmath.Vec2F{X: def.Dimensions[0], Y: def.Dimensions[1]}
	}

	em, err := emitter.NewWithConfig(cfg, dims, def.Texture, scale, emitter.Env{
		Textures: deps.Textures,
		Anchor:   engine.EntityAnchor{World: world, Entity: e},
		Renderer: deps.Renderer,
		Random:   deps.Random,
	}, deps.Options...)
	if err != nil {
		return component.EmitterComponent{}, fmt.Errorf("scene %s entity %q: %w", scene, f.Name, err)
	}
	return component.EmitterComponent{Emitter: em, Preset: preset}, nil
}

func setParent(world *engine.World, child, parent core.Entity) {
	t, _ := world.Transforms.Get(child)
	t.Parent = parent
	world.Transforms.Set(child, t)
}

// LoadDir spawns every entity file under root/scene in name order
// Parents are linked once all entities exist; an unresolved parent is an error
func LoadDir(world *engine.World, root, scene string, deps Deps) ([]core.Entity, error) {
	dir := filepath.Join(root, scene)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read scene dir %s: %w", dir, err)
	}

	var files []EntityFile
	seen := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() || !supported(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		f, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[f.Name]; dup {
			return nil, fmt.Errorf("scene %s: entity %q defined in %s and %s", scene, f.Name, prev, path)
		}
		seen[f.Name] = path
		files = append(files, f)
	}

	spawned := make([]core.Entity, 0, len(files))
	for _, f := range files {
		e, err := Spawn(world, scene, f, deps)
		if err != nil {
			world.DestroyEntities(spawned)
			return nil, err
		}
		spawned = append(spawned, e)
	}

	for i, f := range files {
		if f.Parent == "" {
			continue
		}
		p, ok := world.FindByName(scene, f.Parent)
		if !ok {
			world.DestroyEntities(spawned)
			return nil, fmt.Errorf("scene %s: entity %q parent %q not found", scene, f.Name, f.Parent)
		}
		setParent(world, spawned[i], p)
	}

	deps.logger().Info("scene loaded",
		zap.String("scene", scene),
		zap.Int("entities", len(spawned)))
	return spawned, nil
}

func supported(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml", ".toml":
		return true
	}
	return false
}
