package ecs

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/starmaze/ecs/component"
)

func TestSparseWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			require.Len(t, Entities(w), c.create)
			if c.destroyIndex >= 0 {
				require.True(t, DestroyEntity(w, ents[c.destroyIndex]))
				assert.False(t, IsAlive(w, ents[c.destroyIndex]))
				assert.False(t, DestroyEntity(w, ents[c.destroyIndex]), "double destroy")
				assert.Len(t, Entities(w), c.create-1)
			}
		})
	}
}

func TestEntityReuseBumpsGeneration(t *testing.T) {
	w := NewWorld()
	k := component.NewComponentKind[int]()

	old := CreateEntity(w)
	require.NoError(t, Add(w, old, k, intPtr(1)))
	require.True(t, DestroyEntity(w, old))

	reused := CreateEntity(w)
	assert.Equal(t, old.slot(), reused.slot())
	assert.NotEqual(t, old, reused)
	assert.True(t, IsAlive(w, reused))
	assert.False(t, Has(w, reused, k), "components do not survive destroy")

	_, ok := Get(w, old, k)
	assert.False(t, ok)
	err := Add(w, old, k, intPtr(2))
	assert.True(t, errors.Is(err, component.ErrEntityNotAlive))
}

func TestEntityHandle(t *testing.T) {
	var zero Entity
	assert.False(t, zero.Valid())
	assert.Equal(t, "0.0", zero.String())

	e := makeEntity(7, 3)
	assert.True(t, e.Valid())
	assert.Equal(t, slotID(7), e.slot())
	assert.Equal(t, generation(3), e.generation())
	assert.Equal(t, "7.3", e.String())
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestSparseWorldComponentsAndQueries(t *testing.T) {
	w := NewWorld()

	h1 := component.NewComponent[int]()
	h2 := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	t.Run("add_and_get", func(t *testing.T) {
		require.NoError(t, Add(w, e1, h1.Kind(), intPtr(10)))
		v, ok := Get(w, e1, h1.Kind())
		require.True(t, ok)
		assert.Equal(t, 10, *v)

		*v = 11
		v, _ = Get(w, e1, h1.Kind())
		assert.Equal(t, 11, *v, "Get returns the stored pointer")
	})
	t.Run("has_across_entities", func(t *testing.T) {
		require.NoError(t, Add(w, e1, h2.Kind(), stringPtr("a")))
		require.NoError(t, Add(w, e2, h2.Kind(), stringPtr("b")))
		assert.True(t, Has(w, e1, h2.Kind()))
		assert.True(t, Has(w, e2, h2.Kind()))
		assert.False(t, Has(w, e2, h1.Kind()))
	})
	t.Run("remove", func(t *testing.T) {
		assert.True(t, Remove(w, e1, h2.Kind()))
		assert.False(t, Remove(w, e1, h2.Kind()))
		assert.False(t, Has(w, e1, h2.Kind()))
		assert.True(t, Has(w, e2, h2.Kind()))
	})
	t.Run("errors", func(t *testing.T) {
		var zero component.ComponentKind[int]
		assert.ErrorIs(t, Add(w, e1, zero, intPtr(1)), component.ErrInvalidComponentKind)
		assert.True(t, errors.Is(Add[int](w, e1, h1.Kind(), nil), component.ErrNilComponent))
	})
	t.Run("first", func(t *testing.T) {
		e, v, ok := First(w, h2.Kind())
		require.True(t, ok)
		assert.Equal(t, e2, e)
		assert.Equal(t, "b", *v)

		_, _, ok = First(w, component.NewComponentKind[float64]())
		assert.False(t, ok)
	})
}

func TestForEach(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	require.NoError(t, Add(w, e1, h.Kind(), intPtr(1)))
	require.NoError(t, Add(w, e3, h.Kind(), intPtr(3)))

	var ents []Entity
	ForEach(w, h.Kind(), func(e Entity, _ *int) { ents = append(ents, e) })
	assert.ElementsMatch(t, []Entity{e1, e3}, ents)
	assert.NotContains(t, ents, e2)

	t.Run("destroy_during_iteration", func(t *testing.T) {
		n := 0
		ForEach(w, h.Kind(), func(e Entity, _ *int) {
			n++
			DestroyEntity(w, e3)
		})
		assert.LessOrEqual(t, n, 2)
		assert.False(t, IsAlive(w, e3))
	})
}

func TestForEach3(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := CreateEntity(w)
				e2 := CreateEntity(w)
				e3 := CreateEntity(w)
				e4 := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()

				require.NoError(t, Add(w, e1, ka, intPtr(1)))
				require.NoError(t, Add(w, e2, ka, intPtr(2)))
				require.NoError(t, Add(w, e2, kb, intPtr(3)))
				require.NoError(t, Add(w, e2, kc, intPtr(5)))
				require.NoError(t, Add(w, e3, kb, intPtr(4)))
				require.NoError(t, Add(w, e4, kc, intPtr(6)))

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				assert.Equal(t, []Entity{e2}, res)
			},
		},
		{
			name: "ignores_dead_entities",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()

				require.NoError(t, Add(w, e, ka, intPtr(1)))
				require.NoError(t, Add(w, e, kb, intPtr(2)))
				require.NoError(t, Add(w, e, kc, intPtr(3)))
				require.True(t, DestroyEntity(w, e))

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				assert.Empty(t, res)
			},
		},
		{
			name: "missing_store",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()

				require.NoError(t, Add(w, e, ka, intPtr(1)))

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				assert.Empty(t, res)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

type countingSystem struct {
	ticks  int
	events []Event
}

func (s *countingSystem) Update(w *World) {
	s.ticks++
	s.events = append(s.events, w.Events().Take(EventEndpointReached)...)
}

type pushingSystem struct{}

func (pushingSystem) Update(w *World) {
	w.Events().Push(Event{Kind: EventEndpointReached})
	w.Events().Push(Event{Kind: EventTargetStuck})
}

func TestWorldUpdateOrderAndEvents(t *testing.T) {
	w := NewWorld()
	before := &countingSystem{}
	after := &countingSystem{}
	w.AddSystem(before)
	w.AddSystem(pushingSystem{})
	w.AddSystem(after)
	w.AddSystem(nil)

	w.Update()
	w.Update()

	assert.Equal(t, 2, before.ticks)
	assert.Empty(t, before.events, "events pushed later in the tick are flushed")
	assert.Len(t, after.events, 2)
	assert.Nil(t, w.Events().Drain())
}
