package objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingObject struct {
	*BaseObject

	inits, destroys, updates int
	removeOnUpdate           bool
}

func newCountingObject(id string, zIndex int) *countingObject {
	return &countingObject{BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: zIndex})}
}

func (o *countingObject) Init() error {
	o.inits++
	return nil
}

func (o *countingObject) Destroy() error {
	o.destroys++
	return nil
}

func (o *countingObject) Update() error {
	o.updates++
	if o.removeOnUpdate {
		return o.RemoveFromParent()
	}
	return nil
}

func ids(children []GameObject) []string {
	out := make([]string, 0, len(children))
	for _, c := range children {
		out = append(out, c.GetID())
	}
	return out
}

func TestSortedZIndexObject(t *testing.T) {
	root := NewSortedZIndexObject("root")
	require.NoError(t, root.AddChild("ship", newCountingObject("ship", 30)))
	require.NoError(t, root.AddChild("rock-1", newCountingObject("rock-1", 10)))
	require.NoError(t, root.AddChild("laser", newCountingObject("laser", 20)))
	require.NoError(t, root.AddChild("rock-2", newCountingObject("rock-2", 10)))
	assert.Equal(t, []string{"rock-1", "rock-2", "laser", "ship"}, ids(root.GetChildren()))

	assert.Error(t, root.AddChild("ship", newCountingObject("ship", 0)))

	require.NoError(t, root.RemoveChild("laser"))
	assert.Equal(t, []string{"rock-1", "rock-2", "ship"}, ids(root.GetChildren()))
	assert.Nil(t, root.GetChild("laser"))
	assert.Error(t, root.RemoveChild("laser"))
}

func TestTreeLifecycle(t *testing.T) {
	root := NewBaseObject("root", nil)
	child := newCountingObject("child", 0)
	require.NoError(t, root.AddChild("child", child))
	assert.Equal(t, 1, child.inits)
	assert.Equal(t, root, child.GetParent())

	require.NoError(t, UpdateTree(root))
	assert.Equal(t, 1, child.updates)

	require.NoError(t, DestroyTree(root))
	assert.Equal(t, 1, child.destroys)
}

func TestUpdateTree_childRemovesItself(t *testing.T) {
	root := NewSortedZIndexObject("root")
	effect := newCountingObject("effect", 0)
	effect.removeOnUpdate = true
	other := newCountingObject("other", 1)
	require.NoError(t, root.AddChild("effect", effect))
	require.NoError(t, root.AddChild("other", other))

	require.NoError(t, UpdateTree(root))
	assert.Equal(t, 1, other.updates)
	assert.Equal(t, 1, effect.destroys)
	assert.Nil(t, effect.GetParent())
	assert.Equal(t, []string{"other"}, ids(root.GetChildren()))
}
