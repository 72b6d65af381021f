package editctx

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/formedit/internal/pkg/clock"
)

func newTestContext(t *testing.T, rec *taggedRecord, clk clock.Clock) *EditContext {
	t.Helper()
	ctx, err := New(rec, clk)
	require.NoError(t, err)
	return ctx
}

func TestEditContext_NotifyFieldChanged(t *testing.T) {
	t.Run("routes names to listeners", func(t *testing.T) {
		ctx := newTestContext(t, &taggedRecord{}, nil)
		defer ctx.Close()

		var seen []string
		release := ctx.OnFieldChanged(func(name string) { seen = append(seen, name) })
		defer release()

		require.NoError(t, ctx.NotifyFieldChanged("summary"))
		require.NoError(t, ctx.NotifyFieldChanged("temperature_f")) // untracked names broadcast too

		assert.Equal(t, []string{"summary", "temperature_f"}, seen)
	})

	t.Run("release stops delivery", func(t *testing.T) {
		ctx := newTestContext(t, &taggedRecord{}, nil)
		defer ctx.Close()

		var count int
		release := ctx.OnFieldChanged(func(string) { count++ })
		release()
		release()

		require.NoError(t, ctx.NotifyFieldChanged("summary"))
		assert.Zero(t, count)
	})

	t.Run("records last-changed time", func(t *testing.T) {
		start := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)
		clk := clock.NewFakeClock(start)
		ctx := newTestContext(t, &taggedRecord{}, clk)
		defer ctx.Close()

		require.NoError(t, ctx.NotifyFieldChanged("summary"))
		clk.Advance(time.Minute)
		require.NoError(t, ctx.NotifyFieldChanged("summary"))

		got, ok := ctx.LastChanged("summary")
		require.True(t, ok)
		assert.Equal(t, start.Add(time.Minute), got)

		_, ok = ctx.LastChanged("date")
		assert.False(t, ok)
	})

	t.Run("errors after close", func(t *testing.T) {
		ctx := newTestContext(t, &taggedRecord{}, nil)
		ctx.Close()
		assert.ErrorIs(t, ctx.NotifyFieldChanged("summary"), ErrContextClosed)
	})
}

func TestEditContext_Validate(t *testing.T) {
	summaryRequired := Rule{
		Field: "summary",
		Check: func(v any) error {
			if s, _ := v.(string); s == "" {
				return errors.New("summary is required")
			}
			return nil
		},
	}
	temperatureBounds := Rule{
		Field: "temperature_c",
		Check: func(v any) error {
			c, _ := v.(int64)
			if c < -60 || c > 60 {
				return errors.New("temperature must be between -60 and 60")
			}
			return nil
		},
	}

	t.Run("messages route to the failing field", func(t *testing.T) {
		rec := &taggedRecord{Summary: "", TemperatureC: 21}
		ctx := newTestContext(t, rec, nil)
		defer ctx.Close()
		ctx.AddRule(summaryRequired)
		ctx.AddRule(temperatureBounds)

		assert.False(t, ctx.Validate())
		assert.Equal(t, []string{"summary is required"}, ctx.Messages().MessagesFor("summary"))
		assert.Empty(t, ctx.Messages().MessagesFor("temperature_c"))
	})

	t.Run("revalidation rewrites the store", func(t *testing.T) {
		rec := &taggedRecord{Summary: "", TemperatureC: 21}
		ctx := newTestContext(t, rec, nil)
		defer ctx.Close()
		ctx.AddRule(summaryRequired)

		require.False(t, ctx.Validate())
		rec.Summary = "Mild"
		assert.True(t, ctx.Validate())
		assert.Zero(t, ctx.Messages().Count())
	})

	t.Run("outcome is broadcast", func(t *testing.T) {
		rec := &taggedRecord{Summary: ""}
		ctx := newTestContext(t, rec, nil)
		defer ctx.Close()
		ctx.AddRule(summaryRequired)

		var outcomes []bool
		release := ctx.OnValidationStateChanged(func(valid bool) { outcomes = append(outcomes, valid) })
		defer release()

		ctx.Validate()
		rec.Summary = "Mild"
		ctx.Validate()

		assert.Equal(t, []bool{false, true}, outcomes)
	})

	t.Run("rules for unknown fields are skipped", func(t *testing.T) {
		ctx := newTestContext(t, &taggedRecord{Summary: "Mild"}, nil)
		defer ctx.Close()
		ctx.AddRule(Rule{Field: "nope", Check: func(any) error { return errors.New("never") }})

		assert.True(t, ctx.Validate())
	})
}

func TestEditContext_Binding(t *testing.T) {
	ctx := newTestContext(t, &taggedRecord{Summary: "Freezing"}, nil)
	defer ctx.Close()

	b, ok := ctx.Binding("summary")
	require.True(t, ok)
	assert.Equal(t, "Freezing", b.Get())

	_, ok = ctx.Binding("temperature_f")
	assert.False(t, ok)
}

func TestEditContext_Close(t *testing.T) {
	ctx := newTestContext(t, &taggedRecord{}, nil)

	var count int
	ctx.OnFieldChanged(func(string) { count++ })
	ctx.Close()
	ctx.Close() // idempotent

	assert.ErrorIs(t, ctx.NotifyFieldChanged("summary"), ErrContextClosed)
	assert.Zero(t, count)

	release := ctx.OnFieldChanged(func(string) { count++ })
	release()
	assert.Zero(t, count)
}
