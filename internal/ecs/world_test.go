package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pos struct{ X, Y float64 }
type tag struct{}

func TestSpawnIssuesIncreasingIDs(t *testing.T) {
	w := NewWorld()
	a := w.Spawn()
	b := w.Spawn()

	assert.NotZero(t, a)
	assert.Greater(t, b, a)
	assert.Equal(t, 2, w.Len())
	assert.Equal(t, []Entity{a, b}, w.Entities())
}

func TestDespawnIsDeferredUntilFlush(t *testing.T) {
	w := NewWorld()
	positions := NewStore[pos](w)

	e := w.Spawn()
	positions.Set(e, pos{1, 2})

	w.Despawn(e)
	assert.True(t, w.Alive(e), "despawn must wait for the barrier")
	assert.True(t, w.Pending(e))
	assert.True(t, positions.Has(e))

	removed := w.Flush()
	assert.Equal(t, 1, removed)
	assert.False(t, w.Alive(e))
	assert.False(t, positions.Has(e))
	assert.Equal(t, 0, w.Len())
}

func TestDespawnTwiceAndUnknownAreNoOps(t *testing.T) {
	w := NewWorld()
	e := w.Spawn()

	w.Despawn(e)
	w.Despawn(e)
	w.Despawn(Entity(999))

	assert.Equal(t, 1, w.Flush())
	assert.Equal(t, 0, w.Flush())

	w.Despawn(e)
	assert.Equal(t, 0, w.Flush())
}

func TestEachVisitsCreationOrderAndSkipsNewSpawns(t *testing.T) {
	w := NewWorld()
	tags := NewStore[tag](w)

	var want []Entity
	for i := 0; i < 5; i++ {
		e := w.Spawn()
		tags.Set(e, tag{})
		want = append(want, e)
	}

	var seen []Entity
	tags.Each(func(e Entity, _ *tag) {
		seen = append(seen, e)
		child := w.Spawn()
		tags.Set(child, tag{})
	})

	assert.Equal(t, want, seen)
	assert.Equal(t, 10, tags.Len())
}

func TestStoreSetOnDeadEntityIsIgnored(t *testing.T) {
	w := NewWorld()
	positions := NewStore[pos](w)

	positions.Set(Entity(42), pos{})
	assert.Equal(t, 0, positions.Len())
}

func TestStoreMutatesInPlace(t *testing.T) {
	w := NewWorld()
	positions := NewStore[pos](w)
	e := w.Spawn()
	positions.Set(e, pos{})

	p, ok := positions.Get(e)
	require.True(t, ok)
	p.X = 7

	again, _ := positions.Get(e)
	assert.Equal(t, 7.0, again.X)
}

func TestJoinRequiresBothComponents(t *testing.T) {
	w := NewWorld()
	positions := NewStore[pos](w)
	tags := NewStore[tag](w)

	a := w.Spawn()
	positions.Set(a, pos{})
	b := w.Spawn()
	positions.Set(b, pos{})
	tags.Set(b, tag{})

	var joined []Entity
	Join(positions, tags, func(e Entity, _ *pos, _ *tag) {
		joined = append(joined, e)
	})
	assert.Equal(t, []Entity{b}, joined)
}

func TestFirst(t *testing.T) {
	w := NewWorld()
	tags := NewStore[tag](w)

	_, _, ok := tags.First()
	assert.False(t, ok)

	w.Spawn()
	e := w.Spawn()
	tags.Set(e, tag{})

	got, _, ok := tags.First()
	require.True(t, ok)
	assert.Equal(t, e, got)
}

func TestClearKeepsIDsMonotonic(t *testing.T) {
	w := NewWorld()
	positions := NewStore[pos](w)

	e := w.Spawn()
	positions.Set(e, pos{})
	w.Despawn(e)
	w.Clear()

	assert.Equal(t, 0, w.Len())
	assert.Equal(t, 0, positions.Len())
	assert.Equal(t, 0, w.Flush())

	next := w.Spawn()
	assert.Greater(t, next, e)
}
