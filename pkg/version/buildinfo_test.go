package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func stubBuildInfo(t *testing.T, bi *debug.BuildInfo, ok bool) {
	t.Helper()
	orig := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) { return bi, ok }
	t.Cleanup(func() { readBuildInfo = orig })
}

func TestFillFromBuildInfo(t *testing.T) {
	bi := &debug.BuildInfo{
		Main: debug.Module{Version: "v0.4.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "cafef00d"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	}

	t.Run("fills unset values", func(t *testing.T) {
		stubBuildInfo(t, bi, true)
		info := Info{Version: "dev", Commit: "unknown", BuildTime: "unknown"}

		fillFromBuildInfo(&info)

		assert.Equal(t, "v0.4.0", info.Version)
		assert.Equal(t, "cafef00d", info.Commit)
		assert.Equal(t, "2026-01-02T03:04:05Z", info.BuildTime)
		assert.True(t, info.Modified)
		assert.Equal(t, "cafef00d (modified)", info.Fields()[1].Value)
	})

	t.Run("ldflags win", func(t *testing.T) {
		stubBuildInfo(t, bi, true)
		info := Info{Version: "1.0.0", Commit: "abc", BuildTime: "today"}

		fillFromBuildInfo(&info)

		assert.Equal(t, "1.0.0", info.Version)
		assert.Equal(t, "abc", info.Commit)
		assert.Equal(t, "today", info.BuildTime)
	})

	t.Run("devel main version ignored", func(t *testing.T) {
		stubBuildInfo(t, &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}, true)
		info := Info{Version: "dev", Commit: "unknown", BuildTime: "unknown"}

		fillFromBuildInfo(&info)

		assert.Equal(t, "dev", info.Version)
		assert.Equal(t, "unknown", info.Commit)
	})

	t.Run("no build info", func(t *testing.T) {
		stubBuildInfo(t, nil, false)
		info := Info{Version: "dev"}

		fillFromBuildInfo(&info)

		assert.Equal(t, "dev", info.Version)
	})
}
