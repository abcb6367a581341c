package cli

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withBuildVars(t *testing.T, v, c, d string) {
	t.Helper()
	origV, origC, origD := version, commit, date
	t.Cleanup(func() { version, commit, date = origV, origC, origD })
	version, commit, date = v, c, d
}

func TestResolveVersionInfo_Ldflags(t *testing.T) {
	withBuildVars(t, "1.2.3", "abc123", "2026-01-02")

	v, c, d := resolveVersionInfo()
	assert.Equal(t, "1.2.3", v)
	assert.Equal(t, "abc123", c)
	assert.Equal(t, "2026-01-02", d)
}

func TestResolveVersionInfo_DevBuild(t *testing.T) {
	withBuildVars(t, "dev", "unknown", "unknown")

	v, c, _ := resolveVersionInfo()
	assert.NotEmpty(t, v)
	assert.LessOrEqual(t, len(c), 12, "revision should be shortened")
}

func TestPrintVersionInfo(t *testing.T) {
	withBuildVars(t, "0.4.0", "deadbeef", "today")

	var out bytes.Buffer
	printVersionInfo(&out)
	assert.Equal(t, "bytecrawl 0.4.0 (deadbeef, today) "+runtime.GOOS+"/"+runtime.GOARCH+"\n", out.String())
}

func TestVersionCommand(t *testing.T) {
	withBuildVars(t, "0.4.0", "deadbeef", "today")

	out, err := executeCLI(t, "", "version")
	assert.NoError(t, err)
	assert.Contains(t, out, "bytecrawl 0.4.0")
}
