package scenes

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/stardrift/client/objects"
	"github.com/cbodonnell/stardrift/client/ui"
	"github.com/cbodonnell/stardrift/pkg/collisions"
	"github.com/cbodonnell/stardrift/pkg/constants"
	"github.com/cbodonnell/stardrift/pkg/log"
	"github.com/cbodonnell/stardrift/pkg/world"
	"github.com/google/uuid"
)

// HUD exposes what the session asked the presentation to show.
type HUD interface {
	PauseVisible() bool
	ScoreDisplay() int
}

// GameScene draws the world and the session overlays. The simulation itself
// is stepped by the game loop, not by the scene.
type GameScene struct {
	*BaseScene

	world    *world.World
	hud      HUD
	onResume func()
	onMenu   func()

	// entities holds the ids of the entities that have an object in the tree.
	entities     map[uuid.UUID]struct{}
	shownScore   int
	effectsAdded int
}

type GameSceneOptions struct {
	World *world.World
	HUD   HUD
	// OnResume is called by the resume button of the pause panel.
	OnResume func()
	// OnMenu is called by the menu button of the pause panel.
	OnMenu func()
}

var _ Scene = &GameScene{}

func NewGameScene(opts GameSceneOptions) (Scene, error) {
	if opts.World == nil || opts.HUD == nil {
		return nil, fmt.Errorf("game scene requires a world and a hud")
	}
	return &GameScene{
		BaseScene: NewBaseScene(objects.NewSortedZIndexObject("game-root")),
		world:     opts.World,
		hud:       opts.HUD,
		onResume:  opts.OnResume,
		onMenu:    opts.OnMenu,
		entities:  make(map[uuid.UUID]struct{}),
	}, nil
}

func (g *GameScene) Init() error {
	if err := g.BaseScene.Init(); err != nil {
		return err
	}
	root := g.GetRoot()

	level := objects.NewLevelObject("level", objects.NewLevelObjectOptions{
		W:         float32(constants.ScreenWidth),
		H:         float32(constants.ScreenHeight),
		Thickness: collisions.WallThickness,
		Color:     color.NRGBA{R: 40, G: 40, B: 70, A: 255},
		ZIndex:    0,
	})
	if err := root.AddChild(level.GetID(), level); err != nil {
		return fmt.Errorf("failed to add level object: %v", err)
	}

	ship := g.world.Ship()
	if err := root.AddChild(ship.ID.String(), objects.NewEntityObject(ship.ID.String(), ship)); err != nil {
		return fmt.Errorf("failed to add ship object: %v", err)
	}

	score := objects.NewScoreObject("score", g.hud.ScoreDisplay, 40)
	if err := root.AddChild(score.GetID(), score); err != nil {
		return fmt.Errorf("failed to add score object: %v", err)
	}

	pause := objects.NewPauseObject("pause", objects.NewPauseObjectOptions{
		Visible:  g.hud.PauseVisible,
		OnResume: g.onResume,
		OnMenu:   g.onMenu,
		ZIndex:   100,
	})
	if err := root.AddChild(pause.GetID(), pause); err != nil {
		return fmt.Errorf("failed to add pause object: %v", err)
	}

	g.shownScore = g.hud.ScoreDisplay()
	return nil
}

func (g *GameScene) Update() error {
	if err := g.syncEntities(); err != nil {
		return fmt.Errorf("failed to sync entities: %v", err)
	}

	if err := g.updateScoreEffect(); err != nil {
		return fmt.Errorf("failed to add score effect: %v", err)
	}

	if err := g.BaseScene.Update(); err != nil {
		return fmt.Errorf("failed to update base scene: %v", err)
	}

	return nil
}

// syncEntities adds objects for new world entities and removes the objects of
// entities that left the world.
func (g *GameScene) syncEntities() error {
	live := make(map[uuid.UUID]struct{})
	for _, e := range g.world.Entities() {
		live[e.ID] = struct{}{}
		if _, ok := g.entities[e.ID]; ok {
			continue
		}
		if err := g.GetRoot().AddChild(e.ID.String(), objects.NewEntityObject(e.ID.String(), e)); err != nil {
			return fmt.Errorf("failed to add %s object: %v", e.Kind, err)
		}
		g.entities[e.ID] = struct{}{}
	}

	for id := range g.entities {
		if _, ok := live[id]; ok {
			continue
		}
		if err := g.GetRoot().RemoveChild(id.String()); err != nil {
			log.Warn("Failed to remove entity object %s: %v", id, err)
		}
		delete(g.entities, id)
	}
	return nil
}

func (g *GameScene) updateScoreEffect() error {
	score := g.hud.ScoreDisplay()
	gained := score - g.shownScore
	g.shownScore = score
	if gained <= 0 {
		return nil
	}

	g.effectsAdded++
	id := fmt.Sprintf("score-effect-%d", g.effectsAdded)
	center := g.world.Ship().Center()
	return g.GetRoot().AddChild(id, objects.NewTextEffect(id, objects.NewTextEffectOptions{
		Text:   fmt.Sprintf("+%d", gained),
		X:      center.X,
		Y:      center.Y - 16,
		Color:  ui.AccentColor,
		TTL:    600,
		ZIndex: 50,
	}))
}
