package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"plain":               "plain",
		"a<b>c":               "a_b_c",
		`x:"y"`:               "x__y_",
		`dir/sub\file`:        "dir_sub_file",
		"pipe|question?star*": "pipe_question_star_",
		"héllo wörld":         "héllo wörld",
	}
	for in, want := range cases {
		got := SanitizeFilename(in)
		assert.Equal(t, want, got, "input %q", in)
		assert.False(t, strings.ContainsAny(got, unsafeFilenameChars), "unsafe char left in %q", got)
	}
}

func TestSafeWriteFileOverwrites(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "out.html")
	require.NoError(t, SafeWriteFile(p, []byte("first")))
	require.NoError(t, SafeWriteFile(p, []byte("second")))

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "second", string(b))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files should not be left behind")
}

func TestSafeWriteFileMissingDir(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nope", "out.html")
	assert.Error(t, SafeWriteFile(p, []byte("x")))
}

func TestRelLink(t *testing.T) {
	base := t.TempDir()
	link, err := RelLink(base, filepath.Join(base, "A_boxplot.png"))
	require.NoError(t, err)
	assert.Equal(t, "A_boxplot.png", link)

	link, err = RelLink(base, filepath.Join(base, "img", "my col#1_boxplot.png"))
	require.NoError(t, err)
	assert.Equal(t, "img/my%20col%231_boxplot.png", link)
}
