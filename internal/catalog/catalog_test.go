package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type plainModule struct{}

type runnableModule struct {
	calls int
}

func (r *runnableModule) Run() error {
	r.calls++
	return nil
}

// runnableNamespace is both launchable and descendable
type runnableNamespace struct {
	runnableModule
	children map[string]Module
}

func (r *runnableNamespace) Member(name string) (Module, bool) {
	m, ok := r.children[name]
	return m, ok
}

func TestCatalog_RegisterAndResolve(t *testing.T) {
	c := New()
	hello := &runnableModule{}
	theme := plainModule{}

	require.NoError(t, c.Register("demo.hello", hello))
	require.NoError(t, c.Register("demo.theme", theme))
	require.NoError(t, c.Register("top", hello))

	m, err := c.Resolve("demo.hello")
	require.NoError(t, err)
	assert.Same(t, hello, m)

	m, err = c.Resolve("demo.theme")
	require.NoError(t, err)
	assert.Equal(t, theme, m)

	m, err = c.Resolve("top")
	require.NoError(t, err)
	assert.Same(t, hello, m)
}

func TestCatalog_ResolvePackage(t *testing.T) {
	c := New()
	require.NoError(t, c.Register("pkg.sub.a", &runnableModule{}))

	m, err := c.Resolve("pkg.sub")
	require.NoError(t, err)
	pkg, ok := m.(*Package)
	require.True(t, ok)
	assert.Equal(t, "sub", pkg.Name())
	assert.Equal(t, []string{"a"}, pkg.Members())
	assert.False(t, HasEntryPoint(m))
}

func TestCatalog_ResolveErrors(t *testing.T) {
	c := New()
	require.NoError(t, c.Register("pkg.a", &runnableModule{}))
	require.NoError(t, c.Register("pkg.plain", plainModule{}))

	tests := []struct {
		name    string
		path    string
		want    error
		segment string
	}{
		{"empty path", "", ErrInvalidPath, ""},
		{"blank path", "   ", ErrInvalidPath, ""},
		{"empty segment", "pkg..a", ErrInvalidPath, ""},
		{"trailing dot", "pkg.a.", ErrInvalidPath, ""},
		{"missing top-level", "nope.a", ErrModuleNotFound, "nope"},
		{"missing member", "pkg.b", ErrMemberNotFound, "b"},
		{"descend into leaf", "pkg.a.run", ErrMemberNotFound, "run"},
		{"descend into plain", "pkg.plain.x", ErrMemberNotFound, "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := c.Resolve(tt.path)

			assert.Nil(t, m)
			assert.ErrorIs(t, err, tt.want)

			var rerr *ResolutionError
			require.True(t, errors.As(err, &rerr))
			assert.Equal(t, tt.path, rerr.Path)
			assert.Equal(t, tt.segment, rerr.Segment)
		})
	}
}

func TestCatalog_ResolveThroughCustomNamespace(t *testing.T) {
	c := New()
	child := &runnableModule{}
	ns := &runnableNamespace{children: map[string]Module{"child": child}}
	require.NoError(t, c.Register("tools.multi", ns))

	m, err := c.Resolve("tools.multi")
	require.NoError(t, err)
	assert.True(t, HasEntryPoint(m))

	m, err = c.Resolve("tools.multi.child")
	require.NoError(t, err)
	assert.Same(t, child, m)

	_, err = c.Resolve("tools.multi.missing")
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestCatalog_RegisterErrors(t *testing.T) {
	c := New()
	require.NoError(t, c.Register("pkg.a", &runnableModule{}))

	err := c.Register("pkg.a", &runnableModule{})
	assert.ErrorIs(t, err, ErrAlreadyRegistered)

	err = c.Register("pkg", &runnableModule{})
	assert.ErrorIs(t, err, ErrAlreadyRegistered)

	err = c.Register("pkg.a.b", &runnableModule{})
	assert.ErrorIs(t, err, ErrNotNamespace)

	err = c.Register("", &runnableModule{})
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestCatalog_MustRegisterPanics(t *testing.T) {
	c := New()
	c.MustRegister("pkg.a", plainModule{})

	assert.Panics(t, func() {
		c.MustRegister("pkg.a", plainModule{})
	})
}

func TestCatalog_Paths(t *testing.T) {
	c := New()
	assert.Empty(t, c.Paths())

	c.MustRegister("docs.about", &runnableModule{})
	c.MustRegister("demo.theme", plainModule{})
	c.MustRegister("demo.hello", &runnableModule{})
	c.MustRegister("standalone", &runnableModule{})

	assert.Equal(t, []string{"demo.hello", "demo.theme", "docs.about", "standalone"}, c.Paths())
}

func TestHasEntryPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Module
		want bool
	}{
		{"runner", &runnableModule{}, true},
		{"runner func", RunnerFunc(func() error { return nil }), true},
		{"plain struct", plainModule{}, false},
		{"package", NewPackage("p"), false},
		{"bare func is not a runner", func() error { return nil }, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasEntryPoint(tt.m))
		})
	}
}

func TestRunnerFunc(t *testing.T) {
	called := 0
	sentinel := errors.New("boom")
	f := RunnerFunc(func() error {
		called++
		return sentinel
	})

	assert.ErrorIs(t, f.Run(), sentinel)
	assert.Equal(t, 1, called)
}

func TestResolutionError(t *testing.T) {
	err := NewResolutionError("pkg.b", "b", ErrMemberNotFound)
	assert.Equal(t, `resolve "pkg.b": segment "b": member not found`, err.Error())
	assert.ErrorIs(t, err, ErrMemberNotFound)

	noSeg := NewResolutionError("", "", ErrInvalidPath)
	assert.Equal(t, `resolve "": invalid module path`, noSeg.Error())
}
