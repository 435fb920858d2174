package scenes

import (
	"fmt"

	"github.com/cbodonnell/stardrift/client/fonts"
	"github.com/cbodonnell/stardrift/client/objects"
	"github.com/cbodonnell/stardrift/client/ui"
)

type MenuScene struct {
	*BaseScene

	onPlay func()
	onQuit func()
	// lastScore is shown under the title when a previous run exists.
	lastScore int
}

type MenuSceneOptions struct {
	// OnPlay is called when the play button is pressed.
	OnPlay func()
	// OnQuit is called when the quit button is pressed.
	OnQuit func()
	// LastScore is the score of the previous run.
	LastScore int
}

var _ Scene = &MenuScene{}

func NewMenuScene(opts MenuSceneOptions) (Scene, error) {
	return &MenuScene{
		BaseScene: NewBaseScene(objects.NewSortedZIndexObject("menu-root")),
		onPlay:    opts.OnPlay,
		onQuit:    opts.OnQuit,
		lastScore: opts.LastScore,
	}, nil
}

func (s *MenuScene) Init() error {
	if err := s.BaseScene.Init(); err != nil {
		return err
	}

	root, column := ui.NewColumn(nil)
	column.AddChild(ui.NewLabel("STARDRIFT", fonts.MPlusTitleFont, ui.AccentColor))
	if s.lastScore > 0 {
		column.AddChild(ui.NewLabel(fmt.Sprintf("Last score: %d", s.lastScore), fonts.TTFSmallFont, ui.TextColor))
	}
	column.AddChild(ui.NewButton("Play", s.onPlay))
	column.AddChild(ui.NewButton("Quit", s.onQuit))

	if err := s.GetRoot().AddChild("menu-ui", objects.NewUIObject("menu-ui", ui.NewUI(root), 0)); err != nil {
		return fmt.Errorf("failed to add menu ui: %v", err)
	}
	return nil
}
