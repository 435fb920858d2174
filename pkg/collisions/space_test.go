package collisions

import (
	"testing"

	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
)

func TestNewCollisionSpace(t *testing.T) {
	space := NewCollisionSpace(640, 480)

	inside := resolv.NewObject(100, 100, 32, 32)
	space.Add(inside)
	assert.Nil(t, inside.Check(0, 0, CollisionSpaceTagLevel))
	assert.NotNil(t, inside.Check(-90, 0, CollisionSpaceTagLevel))
	assert.NotNil(t, inside.Check(0, 350, CollisionSpaceTagLevel))
}
