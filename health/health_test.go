package health

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanema/gween/ease"
)

type recorder struct {
	values   []float64
	started  int
	finished int
}

func (r *recorder) ReportHealth(v float64) { r.values = append(r.values, v) }
func (r *recorder) DecayStarted()          { r.started++ }
func (r *recorder) DecayFinished()         { r.finished++ }

func (r *recorder) last() float64 { return r.values[len(r.values)-1] }

func advance(e *Entity, dt float64, n int) {
	for range n {
		e.Advance(dt)
	}
}

func TestEntity_ReportsFullHealthOnCreate(t *testing.T) {
	r := &recorder{}
	e := New(100, 0.5, r)

	assert.Equal(t, []float64{100}, r.values)
	assert.Equal(t, 100.0, e.Current())
	assert.Equal(t, 100.0, e.Max())
	assert.False(t, e.Decaying())
}

func TestEntity_LinearDecay(t *testing.T) {
	r := &recorder{}
	e := New(100, 0.5, r)

	e.ApplyDamage(50)
	require.True(t, e.Decaying())
	assert.Equal(t, 50.0, e.Target())

	want := []float64{90, 80, 70, 60, 50}
	for i, w := range want {
		prev := e.Current()
		e.Advance(0.1)
		assert.InDelta(t, w, e.Current(), 1e-4, "tick %d", i+1)
		assert.InDelta(t, 10, prev-e.Current(), 1e-4, "tick %d", i+1)
	}

	assert.Equal(t, 50.0, e.Current(), "settles exactly on the target")
	assert.False(t, e.Decaying())
	assert.Len(t, r.values, 1+len(want))

	t.Run("finished_timer_is_idempotent", func(t *testing.T) {
		reports := len(r.values)
		advance(e, 0.1, 10)
		assert.Equal(t, 50.0, e.Current())
		assert.Len(t, r.values, reports)
	})
}

func TestEntity_DeathStopsEarly(t *testing.T) {
	r := &recorder{}
	e := New(100, 0.5, r)
	e.ApplyDamage(70)
	advance(e, 0.1, 5)
	require.Equal(t, 30.0, e.Current())

	deaths := 0
	e.OnDeath = func() { deaths++ }

	e.ApplyDamage(200)
	e.Advance(0.1)

	assert.True(t, e.Dead())
	assert.Equal(t, 0.0, e.Current())
	assert.Less(t, e.Elapsed(), 0.5)
	assert.False(t, e.Decaying())
	assert.Equal(t, 1, deaths)
	assert.Equal(t, 0.0, r.last())

	advance(e, 0.1, 5)
	e.ApplyDamage(10)
	advance(e, 0.1, 5)
	assert.Equal(t, 0.0, e.Current(), "no decrease below zero")
	assert.Equal(t, 1, deaths)
}

func TestEntity_RestartKeepsLastCall(t *testing.T) {
	e := New(100, 0.5, &recorder{})

	e.ApplyDamage(50)
	advance(e, 0.1, 2)
	require.InDelta(t, 80, e.Current(), 1e-4)

	e.ApplyDamage(20)
	assert.InDelta(t, 60, e.Target(), 1e-4)
	assert.Equal(t, 0.0, e.Elapsed())

	e.Advance(0.1)
	assert.InDelta(t, 76, e.Current(), 1e-4)

	advance(e, 0.1, 4)
	assert.InDelta(t, 60, e.Current(), 1e-4)
	assert.False(t, e.Decaying())

	advance(e, 0.1, 3)
	assert.InDelta(t, 60, e.Current(), 1e-4, "first decay's target is discarded")
}

func TestEntity_DecayObserver(t *testing.T) {
	r := &recorder{}
	e := New(100, 0.5, r)

	e.ApplyDamage(10)
	e.Advance(0.1)
	e.ApplyDamage(10)
	assert.Equal(t, 1, r.started, "restart does not restyle")
	assert.Equal(t, 0, r.finished)

	advance(e, 0.1, 5)
	assert.Equal(t, 1, r.finished)

	e.ApplyDamage(100)
	advance(e, 0.1, 5)
	assert.Equal(t, 2, r.started)
	assert.Equal(t, 2, r.finished)
	assert.True(t, e.Dead())
}

func TestEntity_IgnoresNonPositiveDamage(t *testing.T) {
	r := &recorder{}
	e := New(100, 0.5, r)

	e.ApplyDamage(0)
	e.ApplyDamage(-25)

	assert.False(t, e.Decaying())
	assert.Equal(t, 100.0, e.Current())
	assert.Equal(t, 0, r.started)
}

func TestEntity_ImmediateWithoutSmoothing(t *testing.T) {
	r := &recorder{}
	e := New(40, 0, r)
	died := false
	e.OnDeath = func() { died = true }

	e.ApplyDamage(15)
	assert.Equal(t, 25.0, e.Current())
	assert.False(t, e.Decaying())

	e.ApplyDamage(30)
	assert.Equal(t, 0.0, e.Current())
	assert.True(t, died)
	assert.Equal(t, []float64{40, 25, 0}, r.values)
	assert.Equal(t, 0, r.finished)
}

func TestEntity_EasedCurveSettlesOnTarget(t *testing.T) {
	e := New(100, 0.5, nil)
	e.SetCurve(ease.OutQuad)

	e.ApplyDamage(40)
	e.Advance(0.25)
	assert.Less(t, e.Current(), 80.0, "out-quad front-loads the loss")
	assert.Greater(t, e.Current(), 60.0)

	e.Advance(0.25)
	assert.Equal(t, 60.0, e.Current())
}

func TestCurve(t *testing.T) {
	for name := range Curves {
		fn, err := Curve(name)
		require.NoError(t, err, name)
		assert.NotNil(t, fn)
	}

	fn, err := Curve("")
	require.NoError(t, err)
	assert.InDelta(t, 5, fn(0.5, 0, 10, 1), 1e-6)

	_, err = Curve("bounce")
	assert.Error(t, err)
}
