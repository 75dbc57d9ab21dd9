package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/particle-emitter/asset"
	"github.com/lixenwraith/particle-emitter/audio"
	"github.com/lixenwraith/particle-emitter/component"
	"github.com/lixenwraith/particle-emitter/config"
	"github.com/lixenwraith/particle-emitter/core"
	"github.com/lixenwraith/particle-emitter/emitter"
	"github.com/lixenwraith/particle-emitter/engine"
	"github.com/lixenwraith/particle-emitter/parameter"
	"github.com/lixenwraith/particle-emitter/render"
	"github.com/lixenwraith/particle-emitter/scene"
	"github.com/lixenwraith/particle-emitter/status"
	"github.com/lixenwraith/particle-emitter/system"
	"github.com/lixenwraith/particle-emitter/vmath"
)

// cloneOffset is the world-unit shift applied to each cloned emitter
const cloneOffset = 60.0

type Sandbox struct {
	cfg    *config.Config
	logger *zap.Logger

	screen   tcell.Screen
	renderer *render.TerminalRenderer
	frame    *render.FrameBuffer

	world    *engine.World
	reg      *status.Registry
	textures *asset.TextureManager
	emitters *system.EmitterSystem
	cull     *system.CullSystem
	cues     *audio.CuePlayer

	paused   bool
	clones   int
	lastTick time.Time
}

func NewSandbox(cfg *config.Config, logger *zap.Logger) (*Sandbox, error) {
	sb := &Sandbox{
		cfg:      cfg,
		logger:   logger,
		frame:    render.NewFrameBuffer(),
		world:    engine.NewWorld(),
		reg:      status.NewRegistry(),
		textures: asset.NewTextureManager(),
	}

	if n, err := sb.textures.LoadManifest(cfg.Assets.TextureManifest); err != nil {
		logger.Warn("texture manifest unavailable, using built-in textures", zap.Error(err))
		sb.textures.Register("smoke", 32, 16)
		sb.textures.Register("ember", 8, 8)
	} else {
		logger.Info("textures loaded", zap.Int("count", n))
	}

	if err := sb.loadScene(); err != nil {
		return nil, err
	}

	if cfg.Audio.Enabled {
		sb.cues = audio.NewCuePlayer(cfg.Audio.Cooldown)
		if err := sb.cues.Initialize(); err != nil {
			// Non-fatal, the sandbox runs silently
			logger.Warn("audio initialization failed", zap.Error(err))
			sb.cues = nil
		}
	}

	opts := []system.SystemOption{system.WithLogger(logger)}
	if sb.cues != nil {
		opts = append(opts, system.WithCuePlayer(sb.cues))
	}
	sb.emitters = system.NewEmitterSystem(sb.world, sb.reg, opts...)
	sb.cull = system.NewCullSystem(sb.world, sb.reg, cfg.Render.CullMargin)
	sb.world.AddSystem(sb.emitters)
	sb.world.AddSystem(sb.cull)

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	sb.screen = screen
	sb.renderer = render.NewTerminalRenderer(screen, render.NewCamera(cfg.Render.UnitsPerCell))
	sb.applyTints()
	sb.centerCamera()

	return sb, nil
}

// loadScene loads the configured scene, or a single campfire when it is missing
func (sb *Sandbox) loadScene() error {
	deps := scene.Deps{
		Textures:      sb.textures,
		Renderer:      sb.frame,
		Options:       []emitter.Option{emitter.WithPolicy(sb.cfg.Policy())},
		StrictPresets: sb.cfg.Simulation.StrictPresets,
		Logger:        sb.logger,
	}
	if seed := sb.cfg.Simulation.Seed; seed != 0 {
		deps.Random = vmath.NewFastRand(seed)
	}

	_, err := scene.LoadDir(sb.world, sb.cfg.Assets.SceneRoot, sb.cfg.Assets.Scene, deps)
	if err == nil {
		return nil
	}
	sb.logger.Warn("scene unavailable, spawning default campfire",
		zap.String("scene", sb.cfg.Assets.Scene),
		zap.Error(err))

	_, err = scene.Spawn(sb.world, "sandbox", scene.EntityFile{
		Name: "campfire",
		ParticleEmitter: &scene.EmitterDef{
			Type:       emitter.PresetFire,
			Dimensions: []float64{30, 6},
			Texture:    "ember",
			Scale:      1,
		},
	}, deps)
	return err
}

// applyTints colors fire-like textures warm and everything else as fog
func (sb *Sandbox) applyTints() {
	for _, name := range sb.textures.Names() {
		meta, err := sb.textures.Metadata(name)
		if err != nil {
			continue
		}
		tint := render.TintFog
		for _, hot := range []string{"ember", "fire", "flame", "spark"} {
			if strings.Contains(name, hot) {
				tint = render.TintFire
				break
			}
		}
		sb.renderer.SetTint(meta.Handle, tint)
	}
}

func (sb *Sandbox) centerCamera() {
	w, h := sb.screen.Size()
	var target vmath.Vec3F
	if e, ok := sb.firstEmitter(); ok {
		if pos, err := sb.world.WorldPosition(e); err == nil {
			target = pos
		}
	}
	sb.renderer.Camera().CenterOn(target, w, h-1)
}

// firstEmitter returns the emitter entity with the lowest id
func (sb *Sandbox) firstEmitter() (core.Entity, bool) {
	all := sb.world.Emitters.All()
	if len(all) == 0 {
		return 0, false
	}
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
	return all[0], true
}

func (sb *Sandbox) tick() {
	now := time.Now()
	dt := now.Sub(sb.lastTick)
	sb.lastTick = now
	if dt > parameter.MaxFrameDelta {
		dt = parameter.MaxFrameDelta
	}

	w, h := sb.screen.Size()
	sb.cull.SetBounds(sb.renderer.Camera().Visible(w, h-1))

	if !sb.paused {
		sb.frame.Reset()
		sb.world.Update(dt)
	}
	sb.draw(w, h)
}

func (sb *Sandbox) draw(w, h int) {
	sb.renderer.Clear()
	sb.renderer.Draw(sb.frame.Drawables())

	ints, floats := sb.reg.Snapshot()
	line := fmt.Sprintf(" emitters %d | alive %d | spawned %d | culled %d | failed %d | %.2fms",
		ints["emitter.count"], ints["emitter.alive"], ints["emitter.spawned"],
		ints["emitter.culled"], ints["emitter.spawn_failed"], floats["emitter.frame_ms"])
	if sb.paused {
		line += " | PAUSED"
	}
	if err := sb.emitters.LastError(); err != nil {
		line += " | " + err.Error()
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkSlateGray)
	for x := 0; x < w; x++ {
		sb.screen.SetContent(x, h-1, ' ', nil, style)
	}
	sb.renderer.DrawText(0, h-1, line, style)

	sb.screen.Show()
}

// handleInput returns false to quit
func (sb *Sandbox) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			sb.move(0, -1)
		case tcell.KeyDown:
			sb.move(0, 1)
		case tcell.KeyLeft:
			sb.move(-1, 0)
		case tcell.KeyRight:
			sb.move(1, 0)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case ' ':
				sb.paused = !sb.paused
			case 'c':
				sb.cloneFirst()
			case 'x':
				sb.cullFirst()
			}
		}

	case *tcell.EventResize:
		sb.screen.Sync()
		sb.centerCamera()
	}

	return true
}

// move shifts the first emitter's transform by one cell
func (sb *Sandbox) move(dx, dy float64) {
	e, ok := sb.firstEmitter()
	if !ok {
		return
	}
	cam := sb.renderer.Camera()
	sb.world.RunSafe(func() {
		t, ok := sb.world.Transforms.Get(e)
		if !ok {
			return
		}
		t.Translation.X += dx * cam.UnitsPerCell
		t.Translation.Y += dy * cam.UnitsPerCell * cam.Aspect
		sb.world.Transforms.Set(e, t)
	})
}

// cloneFirst copies the first emitter onto a fresh entity beside it
func (sb *Sandbox) cloneFirst() {
	src, ok := sb.firstEmitter()
	if !ok {
		return
	}
	sb.world.RunSafe(func() {
		pos, err := sb.world.WorldPosition(src)
		if err != nil {
			sb.logger.Warn("clone source has no position", zap.Error(err))
			return
		}
		sb.clones++
		dst := sb.world.CreateEntity()
		sb.world.Names.Set(dst, component.NameComponent{Scene: "sandbox", Name: fmt.Sprintf("clone-%d", sb.clones)})
		sb.world.Transforms.Set(dst, component.TransformComponent{
			Translation: vmath.V3FAdd(pos, vmath.Vec3F{X: cloneOffset * float64(sb.clones)}),
		})
		if err := sb.world.CloneEmitter(src, dst); err != nil {
			sb.logger.Warn("clone failed", zap.Error(err))
			sb.world.DestroyEntity(dst)
		}
	})
}

// cullFirst removes every particle of the first emitter
func (sb *Sandbox) cullFirst() {
	e, ok := sb.firstEmitter()
	if !ok {
		return
	}
	sb.world.RunSafe(func() {
		comp, ok := sb.world.Emitters.Get(e)
		if !ok {
			return
		}
		particles := comp.Emitter.Particles()
		ids := make([]emitter.ParticleID, len(particles))
		for i, p := range particles {
			ids[i] = p.ID
		}
		n := comp.Emitter.RemoveMatching(ids...)
		sb.logger.Debug("manual cull", zap.Uint64("entity", uint64(e)), zap.Int("removed", n))
	})
}

func (sb *Sandbox) run() {
	ticker := time.NewTicker(sb.cfg.Simulation.TickRate)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	core.Go(func() {
		for {
			ev := sb.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}, sb.screen.Fini)

	sb.lastTick = time.Now()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !sb.handleInput(ev) {
				return
			}
		case <-ticker.C:
			sb.tick()
		}
	}
}

func (sb *Sandbox) cleanup() {
	if sb.cues != nil {
		sb.cues.Cleanup()
	}
	if sb.screen != nil {
		sb.screen.Fini()
	}
	_ = sb.logger.Sync()
}

func main() {
	configPath := flag.String("config", "", "path to TOML config (defaults when empty)")
	flag.Parse()

	cfg := config.Default()
	// The screen owns the terminal, default logs go to a file
	cfg.Logging.Output = "emitter-sandbox.log"
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	sb, err := NewSandbox(cfg, logger)
	if err != nil {
		logger.Error("sandbox initialization failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	defer sb.cleanup()
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r, sb.screen.Fini)
		}
	}()

	sb.run()
}
