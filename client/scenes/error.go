package scenes

import (
	"github.com/cbodonnell/stardrift/client/fonts"
	"github.com/cbodonnell/stardrift/client/objects"
)

// ErrorScene is shown when a scene fails to load.
type ErrorScene struct {
	*BaseScene
}

var _ Scene = &ErrorScene{}

func NewErrorScene(msg string) (Scene, error) {
	root := objects.NewSortedZIndexObject("error-root")
	scene := &ErrorScene{
		BaseScene: NewBaseScene(root),
	}
	if err := root.AddChild("overlay-error", objects.NewTextOverlayObject("overlay-error", objects.NewTextOverlayOptions{
		Text: msg,
	})); err != nil {
		return nil, err
	}
	if err := root.AddChild("overlay-hint", objects.NewTextOverlayObject("overlay-hint", objects.NewTextOverlayOptions{
		Text:    "Press Escape to quit",
		Face:    fonts.TTFSmallFont,
		OffsetY: 48,
	})); err != nil {
		return nil, err
	}
	return scene, nil
}
