package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/jewelrun/common"
	"github.com/milk9111/jewelrun/ecs"
	"github.com/milk9111/jewelrun/ecs/entity"
	"github.com/milk9111/jewelrun/ecs/system"
	"github.com/milk9111/jewelrun/levels"
	"github.com/milk9111/jewelrun/prefabs"
	"golang.org/x/image/colornames"
)

type Game struct {
	opts    options
	invertY *bool

	world     *ecs.World
	scheduler *ecs.Scheduler
	scene     *entity.Scene
	specs     *entity.Specs

	watcher *prefabs.Watcher

	paused  bool
	quit    bool
	message string
	pauseUI *ebitenui.UI
	doneUI  *ebitenui.UI
}

func NewGame(opts options) (*Game, error) {
	invertY, err := opts.invertY()
	if err != nil {
		return nil, err
	}
	g := &Game{opts: opts, invertY: invertY}
	if err := g.load(); err != nil {
		return nil, err
	}
	g.pauseUI = NewPauseUI(g)

	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("watch: disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

// load builds a fresh world for the configured level.
func (g *Game) load() error {
	lvl, err := levels.Load(g.opts.Level)
	if err != nil {
		return err
	}
	specs, err := entity.LoadSpecs()
	if err != nil {
		return err
	}

	world := ecs.NewWorld()
	world.SetPhysicsWorld(ecs.NewPhysicsWorld())
	scene, err := entity.BuildScene(world, lvl, specs, entity.Config{InvertY: g.invertY})
	if err != nil {
		return err
	}

	g.world = world
	g.scene = scene
	g.specs = specs
	g.scheduler = newScheduler(g.opts, specs)
	g.message = ""
	g.doneUI = nil
	log.Printf("game: loaded level %q with %d jewels", lvl.Name, len(lvl.Jewels))
	return nil
}

func newScheduler(opts options, specs *entity.Specs) *ecs.Scheduler {
	s := ecs.NewScheduler(
		system.NewInputSystem(opts.Sensitivity, opts.Debug),
		system.NewColliderSyncSystem(),
		system.NewPlayerControllerSystem(),
		system.NewCheckpointSystem(),
		system.NewHazardSystem(),
		system.NewInvulnerabilitySystem(),
	)
	if opts.Debug {
		s.Add(system.NewDebugHealthSystem(specs.Health.DebugAmount))
	}
	for _, sys := range []ecs.System{
		system.NewJewelCollectSystem(),
		system.NewJewelSpinSystem(),
		system.NewRespawnSystem(),
		system.NewFadeSystem(),
		system.NewTTLSystem(),
		system.NewDeathEffectSystem(),
		system.NewCameraSystem(),
		system.NewAudioSystem(),
	} {
		s.Add(sys)
	}
	s.AddRenderer(system.NewRenderSystem())
	if opts.Debug {
		s.AddRenderer(system.NewPhysicsDebugSystem())
	}
	s.AddRenderer(system.NewHUDSystem())
	return s
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	g.applyChanges()

	if g.message != "" {
		g.doneUI.Update()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.setPaused(!g.paused)
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.scheduler.Update(g.world, 1/float64(ebiten.TPS()))
	g.handleEvents()
	return nil
}

func (g *Game) handleEvents() {
	for _, evt := range g.world.Events().Drain() {
		if g.opts.Debug {
			log.Printf("event: %s entity=%v data=%v", evt.Type, evt.Entity, evt.Data)
		}
		if evt.Type == ecs.EventAllJewelsCollected {
			msg, _ := evt.Data.(string)
			g.complete(msg)
		}
	}
}

func (g *Game) complete(msg string) {
	if msg == "" {
		msg = system.DefaultCompletionMessage
	}
	g.message = msg
	g.doneUI = NewCompletionUI(g, msg)
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
}

func (g *Game) setPaused(paused bool) {
	g.paused = paused
	if paused {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	}
}

// restart reloads the level from scratch.
func (g *Game) restart() {
	if err := g.load(); err != nil {
		log.Printf("game: restart: %v", err)
		return
	}
	g.setPaused(false)
}

// applyChanges hot reloads edited prefabs. Camera and health tuning apply to
// the running scene; other files take effect on the next restart.
func (g *Game) applyChanges() {
	for _, c := range g.watcher.Poll() {
		switch c.Name {
		case "camera.yaml":
			spec, err := prefabs.LoadCameraSpec()
			if err != nil {
				log.Printf("watch: %v", err)
				continue
			}
			if err := entity.ApplyCameraSpec(g.world, g.scene.Camera, spec, g.invertY); err != nil {
				log.Printf("watch: %v", err)
				continue
			}
			g.specs.Camera = spec
		case "health.yaml":
			spec, err := prefabs.LoadHealthSpec()
			if err != nil {
				log.Printf("watch: %v", err)
				continue
			}
			entity.ApplyHealthSpec(g.world, g.scene.Player, spec)
			g.specs.Health = spec
		default:
			if c.Kind == prefabs.ChangeScript {
				log.Printf("watch: %s changed, used at the next completion", c.Name)
			} else {
				log.Printf("watch: %s changed, restart to apply", c.Name)
			}
			continue
		}
		log.Printf("watch: reloaded %s", c.Name)
	}
	if err := g.watcher.Err(); err != nil {
		log.Printf("watch: %v", err)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Skyblue)
	g.scheduler.Draw(g.world, screen)

	if g.opts.Debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.2f  boxes: %d", ebiten.ActualFPS(), g.world.PhysicsWorld().Len()), 0, common.BaseHeight-16)
	}

	switch {
	case g.message != "":
		g.doneUI.Draw(screen)
	case g.paused:
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}
