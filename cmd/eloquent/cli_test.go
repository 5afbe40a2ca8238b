package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with fresh flag values and returns stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	docFlags = documentFlags{title: "untitled", author: "anonymous"}
	verbose = false
	statsFormat = "text"
	obscureCount = false
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) { f.Changed = false })

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "eloquent version ")
}

func TestWordsCmd_Stdin(t *testing.T) {
	out, _, err := run(t, "A bunch\tof\n words\n", "words")
	require.NoError(t, err)
	assert.Equal(t, "A\nbunch\nof\nwords\n", out)
}

func TestIndexCmd(t *testing.T) {
	out, _, err := run(t, "", "--content", "A bunch of words", "index", "bunch")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)

	out, _, err = run(t, "", "--content", "A bunch of words", "index", "missing")
	require.NoError(t, err)
	assert.Equal(t, "-1\n", out)

	_, _, err = run(t, "", "--content", "A bunch of words", "index")
	assert.Error(t, err)
}

func TestObscureCmd(t *testing.T) {
	out, errOut, err := run(t, "Meeting at 10:30 AM today\n", "obscure", "--count")
	require.NoError(t, err)
	assert.Equal(t, "Meeting at **:** ** today\n", out)
	assert.Contains(t, errOut, "1 time(s) obscured")
}

func TestRetitleCmd(t *testing.T) {
	out, _, err := run(t, "", "-t", "old", "-c", "x", "retitle", "new")
	require.NoError(t, err)
	assert.Equal(t, "old\n", out)

	out, _, err = run(t, "", "-t", "old", "-c", "x", "--writable", "retitle", "new")
	require.NoError(t, err)
	assert.Equal(t, "new\n", out)
}

func TestDescribeCmd(t *testing.T) {
	out, _, err := run(t, "", "-t", "test", "-c", "A bunch of words", "describe")
	require.NoError(t, err)
	assert.Contains(t, out, "I am Document(")
	assert.Contains(t, out, "My title is test\n")
	assert.Contains(t, out, "I have 4 words\n")
}

func TestStatsCmd_JSON(t *testing.T) {
	out, _, err := run(t, "", "-t", "test", "-a", "Jane",
		"--add-author", "Doe", "--add-author", "Smith",
		"--read-only", "-c", "A bunch of words", "stats", "--format", "json")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "test", got["title"])
	assert.Equal(t, "Jane Doe Smith", got["author"])
	assert.Equal(t, float64(4), got["word_count"])
	assert.Equal(t, 3.25, got["average_word_length"])
	assert.Equal(t, true, got["read_only"])
	assert.Equal(t, false, got["writable"])
}

func TestStatsCmd_EmptyContent(t *testing.T) {
	out, _, err := run(t, "   \n", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "words: 0\n")
	assert.Contains(t, out, "average word length: n/a\n")
}

func TestStatsCmd_UnknownFormat(t *testing.T) {
	_, _, err := run(t, "", "-c", "x", "stats", "-f", "xml")
	assert.ErrorContains(t, err, "unknown report format")
}

func TestCloneCmd(t *testing.T) {
	out, _, err := run(t, "", "-t", "title", "-c", "some stuff", "clone")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.NotEqual(t, lines[0], lines[1], "clone must have its own identity")
	assert.Equal(t, "I am "+lines[1], lines[2])
	assert.Equal(t, "My title is title", lines[3])
	assert.Equal(t, "I have 2 words", lines[4])
}

func TestVerboseLogging(t *testing.T) {
	_, errOut, err := run(t, "", "-v", "-c", "x", "retitle", "new")
	require.NoError(t, err)
	assert.Contains(t, errOut, "title change ignored")
}

func TestExplicitEmptyContentSkipsStdin(t *testing.T) {
	out, _, err := run(t, "from stdin", "-c", "", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "words: 0\n")

	out, _, err = run(t, "from stdin", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "words: 2\n")
}

func TestRetitleCmd_QuietByDefault(t *testing.T) {
	out, errOut, err := run(t, "", "-t", "old", "-c", "x", "retitle", "new")
	require.NoError(t, err)
	assert.Equal(t, "old\n", out)
	assert.Empty(t, errOut)
}

func TestStateCmd(t *testing.T) {
	out, _, err := run(t, "", "-t", "test", "--writable", "-c", "A bunch of words", "state")
	require.NoError(t, err)

	var got struct {
		Component string         `json:"component"`
		State     map[string]any `json:"state"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "document", got.Component)
	assert.Equal(t, "test", got.State["title"])
	assert.Equal(t, float64(4), got.State["word_count"])
	assert.Equal(t, true, got.State["writable"])
	assert.Equal(t, false, got.State["read_only"])
	assert.NotEmpty(t, got.State["id"])
}
