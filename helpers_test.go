package aabb_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/setanarut/aabb"
	"github.com/setanarut/vec"
	"github.com/stretchr/testify/require"
)

const (
	catPlayer  = aabb.Mask(1 << 0)
	catSolid   = aabb.Mask(1 << 1)
	catTrigger = aabb.Mask(1 << 2)
)

func vecOf(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func newSpace(t *testing.T) *aabb.Space[string] {
	t.Helper()
	return aabb.NewSpace[string](aabb.DefaultConfig())
}

func addSolid(s *aabb.Space[string], box aabb.AABB) int {
	return s.AddCollider(box, catSolid, 0, 0, "solid")
}

func addTrigger(s *aabb.Space[string], box aabb.AABB, name string) int {
	return s.AddCollider(box, catTrigger, 0, 0, name)
}

func addPlayer(s *aabb.Space[string], box aabb.AABB) int {
	return s.AddCollider(box, catPlayer, catSolid, catTrigger, "player")
}

// requireContract runs fn and requires it to panic with a *aabb.ContractError
// wrapping target.
func requireContract(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic wrapping %v", target)
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		var cerr *aabb.ContractError
		require.True(t, errors.As(err, &cerr), "panic %v is not a ContractError", err)
		require.ErrorIs(t, err, target)
	}()
	fn()
}

func events(s *aabb.Space[string], id int) []aabb.TriggerEvent {
	return slices.Collect(s.QueryTriggers(id))
}

func eventsOf(evs []aabb.TriggerEvent, typ aabb.TriggerEventType) []int {
	var out []int
	for _, e := range evs {
		if e.Type == typ {
			out = append(out, e.Trigger)
		}
	}
	slices.Sort(out)
	return out
}
