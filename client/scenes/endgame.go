package scenes

import (
	"fmt"

	"github.com/cbodonnell/stardrift/client/fonts"
	"github.com/cbodonnell/stardrift/client/objects"
	"github.com/cbodonnell/stardrift/client/ui"
	"github.com/cbodonnell/stardrift/pkg/session"
)

// EndGameScene shows the final score of the run that just ended.
type EndGameScene struct {
	*BaseScene

	store       session.PersistenceStore
	onPlayAgain func()
	onMenu      func()
}

type EndGameSceneOptions struct {
	// Store holds the final score.
	Store       session.PersistenceStore
	OnPlayAgain func()
	OnMenu      func()
}

var _ Scene = &EndGameScene{}

func NewEndGameScene(opts EndGameSceneOptions) (Scene, error) {
	return &EndGameScene{
		BaseScene:   NewBaseScene(objects.NewSortedZIndexObject("endgame-root")),
		store:       opts.Store,
		onPlayAgain: opts.OnPlayAgain,
		onMenu:      opts.OnMenu,
	}, nil
}

func (s *EndGameScene) Init() error {
	if err := s.BaseScene.Init(); err != nil {
		return err
	}

	score := 0
	if s.store != nil {
		score = s.store.GetLastScore(0)
	}

	root, column := ui.NewColumn(nil)
	column.AddChild(ui.NewLabel("GAME OVER", fonts.TTFLargeFont, ui.TextColor))
	column.AddChild(ui.NewLabel(fmt.Sprintf("Final score: %d", score), fonts.TTFNormalFont, ui.AccentColor))
	column.AddChild(ui.NewButton("Play Again", s.onPlayAgain))
	column.AddChild(ui.NewButton("Main Menu", s.onMenu))

	if err := s.GetRoot().AddChild("endgame-ui", objects.NewUIObject("endgame-ui", ui.NewUI(root), 0)); err != nil {
		return fmt.Errorf("failed to add end game ui: %v", err)
	}
	return nil
}
