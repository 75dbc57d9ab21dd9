package asset

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/particle-emitter/emitter"
)

// TextureEntry is one manifest record
type TextureEntry struct {
	Name   string `yaml:"name"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type manifest struct {
	Textures []TextureEntry `yaml:"textures"`
}

// TextureManager is the texture metadata registry consulted on every particle spawn
// Safe for concurrent use
type TextureManager struct {
	mu      sync.RWMutex
	byName  map[string]emitter.TextureMetadata
	nextHdl emitter.TextureHandle
}

var _ emitter.TextureLookup = (*TextureManager)(nil)

func NewTextureManager() *TextureManager {
	return &TextureManager{
		byName:  make(map[string]emitter.TextureMetadata),
		nextHdl: 1,
	}
}

// Register adds or replaces a texture, a replaced texture keeps its handle
func (m *TextureManager) Register(name string, width, height int) emitter.TextureHandle {
	m.mu.Lock()
	defer m.mu.Unlock()

	if meta, ok := m.byName[name]; ok {
		meta.Width, meta.Height = width, height
		m.byName[name] = meta
		return meta.Handle
	}

	h := m.nextHdl
	m.nextHdl++
	m.byName[name] = emitter.TextureMetadata{Width: width, Height: height, Handle: h}
	return h
}

// Metadata implements emitter.TextureLookup
func (m *TextureManager) Metadata(name string) (emitter.TextureMetadata, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	meta, ok := m.byName[name]
	if !ok {
		return emitter.TextureMetadata{}, fmt.Errorf("%w: %q", emitter.ErrTextureNotFound, name)
	}
	return meta, nil
}

// Names returns registered texture names sorted
func (m *TextureManager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.byName))
	for n := range m.byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// NameOf returns the name registered under handle
func (m *TextureManager) NameOf(h emitter.TextureHandle) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for n, meta := range m.byName {
		if meta.Handle == h {
			return n, true
		}
	}
	return "", false
}

// LoadManifest registers every texture listed in a YAML manifest
// Returns the number of textures registered
func (m *TextureManager) LoadManifest(path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read texture manifest %s: %w", path, err)
	}

	var mf manifest
	if err := yaml.Unmarshal(raw, &mf); err != nil {
		return 0, fmt.Errorf("parse texture manifest %s: %w", path, err)
	}

	for i, e := range mf.Textures {
		if e.Name == "" {
			return i, fmt.Errorf("texture manifest %s: entry %d has no name", path, i)
		}
		if e.Width < 0 || e.Height < 0 {
			return i, fmt.Errorf("texture manifest %s: %q has negative size %dx%d", path, e.Name, e.Width, e.Height)
		}
		m.Register(e.Name, e.Width, e.Height)
	}
	return len(mf.Textures), nil
}
