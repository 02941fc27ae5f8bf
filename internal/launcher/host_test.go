package launcher

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticHost_Label(t *testing.T) {
	var buf bytes.Buffer
	h := &StaticHost{Out: &buf}

	h.Label("hello")

	assert.Equal(t, "hello\n", buf.String())

	quiet := &StaticHost{}
	assert.NotPanics(t, func() { quiet.Label("dropped") })
}

func TestStaticHost_Select(t *testing.T) {
	ctx := context.Background()

	t.Run("empty selection picks first option", func(t *testing.T) {
		h := &StaticHost{}
		got, err := h.Select(ctx, SelectTitle, []string{"A", "B"})
		require.NoError(t, err)
		assert.Equal(t, "A", got)
	})

	t.Run("explicit selection", func(t *testing.T) {
		h := &StaticHost{Selection: "B"}
		got, err := h.Select(ctx, SelectTitle, []string{"A", "B"})
		require.NoError(t, err)
		assert.Equal(t, "B", got)
	})

	t.Run("selection not offered", func(t *testing.T) {
		h := &StaticHost{Selection: "Z"}
		_, err := h.Select(ctx, SelectTitle, []string{"A", "B"})
		assert.ErrorIs(t, err, ErrUnknownApp)
		assert.Contains(t, err.Error(), "available")
	})

	t.Run("no options", func(t *testing.T) {
		h := &StaticHost{}
		_, err := h.Select(ctx, SelectTitle, nil)
		assert.ErrorIs(t, err, ErrUnknownApp)
	})
}

func TestStaticHost_Button(t *testing.T) {
	yes, err := (&StaticHost{Confirm: true}).Button(context.Background(), ButtonLabel)
	require.NoError(t, err)
	assert.True(t, yes)

	no, err := (&StaticHost{}).Button(context.Background(), ButtonLabel)
	require.NoError(t, err)
	assert.False(t, no)
}

func TestStaticHost_DrivesLauncher(t *testing.T) {
	calls := 0
	c := testCatalog(t)
	require.NoError(t, c.Register("pkg.count", countingRunner(&calls)))
	reg := BuildRegistry(entriesFor("A=pkg.a", "N=pkg.count"), c, nil)
	d, err := NewDispatcher(DispatcherOptions{Resolver: c})
	require.NoError(t, err)
	l, err := New(Options{Registry: reg, Dispatcher: d})
	require.NoError(t, err)

	var buf bytes.Buffer
	state, err := l.Render(context.Background(), &StaticHost{Selection: "N", Confirm: true, Out: &buf})

	require.NoError(t, err)
	assert.Equal(t, Dispatched, state)
	assert.Equal(t, 1, calls)
	assert.Contains(t, buf.String(), PromptLabel)
}
