package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/cbodonnell/stardrift/client/flow"
	"github.com/cbodonnell/stardrift/client/input"
	"github.com/cbodonnell/stardrift/client/scenes"
	"github.com/cbodonnell/stardrift/pkg/clock"
	"github.com/cbodonnell/stardrift/pkg/constants"
	"github.com/cbodonnell/stardrift/pkg/log"
	"github.com/cbodonnell/stardrift/pkg/queue"
	"github.com/cbodonnell/stardrift/pkg/session"
	"github.com/cbodonnell/stardrift/pkg/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// controller is the session state machine owned by the registry.
	controller *session.Controller
	// router receives the presentation requests of the controller.
	router *flow.Router
	// flow runs the session part of each tick.
	flow  *flow.Flow
	clock *clock.Clock
	world *world.World
	store session.PersistenceStore
	// scene is the current scene.
	scene scenes.Scene
	// failed is set when a scene could not be loaded and the error scene is shown.
	failed bool
	quit   bool
}

type NewGameOptions struct {
	Debug  bool
	Config session.Config
	// Store keeps the last score. Scores are not persisted when nil.
	Store session.PersistenceStore
	// Registry owns the session controller.
	Registry *session.Registry
	// Seed drives spawn positions and hazard velocities. Zero seeds from the time.
	Seed int64
}

// contactQueueSize bounds the contacts found in one tick.
const contactQueueSize = 256

func NewGame(opts NewGameOptions) (ebiten.Game, error) {
	if opts.Registry == nil {
		return nil, fmt.Errorf("a session registry is required")
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	contacts := queue.NewInMemoryQueue(contactQueueSize)
	g := &Game{
		debug:  opts.Debug,
		router: flow.NewRouter(),
		clock:  clock.New(),
		store:  opts.Store,
		world: world.New(world.NewWorldOptions{
			Contacts: contacts,
			Rand:     rand.New(rand.NewSource(seed + 1)),
		}),
	}

	g.controller = opts.Registry.NewController(session.NewControllerOptions{
		Config:       opts.Config,
		SpawnArea:    session.DefaultSpawnArea(),
		Clock:        g.clock,
		Presentation: g.router,
		Store:        opts.Store,
		Factory:      g.world,
		Rand:         rand.New(rand.NewSource(seed)),
	})
	if g.controller.Disabled() {
		return nil, fmt.Errorf("a session is already running")
	}

	g.flow = flow.New(flow.NewFlowOptions{
		Router:     g.router,
		Controller: g.controller,
		Clock:      g.clock,
		World:      g.world,
		Contacts:   contacts,
		LoadScene:  g.loadScene,
	})

	g.router.LoadScene(session.SceneMenu)
	if err := g.flow.LoadPending(); err != nil {
		return nil, fmt.Errorf("failed to load menu scene: %v", err)
	}

	return g, nil
}

func (g *Game) SetScene(scene scenes.Scene) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}

	g.scene = scene
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %v", err)
	}

	return nil
}

func (g *Game) loadScene(scene session.Scene) error {
	var next scenes.Scene
	var err error
	switch scene {
	case session.SceneMenu:
		next, err = scenes.NewMenuScene(scenes.MenuSceneOptions{
			OnPlay:    g.play,
			OnQuit:    func() { g.quit = true },
			LastScore: g.lastScore(),
		})
	case session.SceneGameplay:
		next, err = scenes.NewGameScene(scenes.GameSceneOptions{
			World:    g.world,
			HUD:      g.router,
			OnResume: g.controller.TogglePause,
			OnMenu:   g.controller.ReturnToMenu,
		})
	case session.SceneEndGame:
		next, err = scenes.NewEndGameScene(scenes.EndGameSceneOptions{
			Store:       g.store,
			OnPlayAgain: g.play,
			OnMenu:      func() { g.router.LoadScene(session.SceneMenu) },
		})
	default:
		return fmt.Errorf("unknown scene %s", scene)
	}
	if err != nil {
		return fmt.Errorf("failed to create %s scene: %v", scene, err)
	}
	return g.SetScene(next)
}

func (g *Game) play() {
	g.router.LoadScene(session.SceneGameplay)
}

func (g *Game) lastScore() int {
	if g.store == nil {
		return 0
	}
	return g.store.GetLastScore(0)
}

func (g *Game) loadError(msg string) error {
	errorScene, err := scenes.NewErrorScene(msg)
	if err != nil {
		return fmt.Errorf("failed to create error scene: %v", err)
	}
	if err := g.SetScene(errorScene); err != nil {
		return fmt.Errorf("failed to set error scene: %v", err)
	}
	g.failed = true
	return nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	if g.failed {
		if input.IsPauseJustPressed() {
			return ebiten.Termination
		}
		return g.scene.Update()
	}

	if err := g.flow.LoadPending(); err != nil {
		log.Error("Scene load failed: %v", err)
		if err := g.loadError("Something went wrong"); err != nil {
			return fmt.Errorf("failed to load error scene: %v", err)
		}
		return nil
	}

	// Scene UI runs on unscaled time so the pause panel works while paused
	if err := g.scene.Update(); err != nil {
		return fmt.Errorf("failed to update scene: %v", err)
	}

	g.handleMenuInput()
	g.flow.Step(1.0/float64(ebiten.TPS()), g.pollInput())

	return nil
}

func (g *Game) pollInput() flow.Input {
	x, y := input.Movement()
	return flow.Input{
		TogglePause: input.IsPauseJustPressed(),
		World: world.Input{
			MoveX: x,
			MoveY: y,
			Fire:  input.IsFirePressed(),
		},
	}
}

// handleMenuInput lets the keyboard start a run from the menu and end game scenes.
func (g *Game) handleMenuInput() {
	scene, ok := g.router.Current()
	if !ok || scene == session.SceneGameplay {
		return
	}
	if input.IsPositiveJustPressed() {
		g.play()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %0.1f", ebiten.ActualFPS()), 24, 56)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.1f", ebiten.ActualTPS()), 24, 72)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("State: %s", g.controller.State()), 24, 88)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Time scale: %0.1f", g.clock.TimeScale()), 24, 104)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Time: %0.1f", g.clock.Time()), 24, 120)
	hazards, collectibles := g.controller.Spawner().SpawnCount()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Spawned: %d hazards, %d collectibles", hazards, collectibles), 24, 136)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return int(constants.ScreenWidth), int(constants.ScreenHeight)
}
