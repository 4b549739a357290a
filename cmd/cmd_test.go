package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxcolbe/studentsky-svet/internal/config"
)

// resetFlags puts every flag back to its default so tests do not leak
// state through the package-level commands.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("SVET_CONTENT_DIR", "")
	t.Setenv("SVET_LOG", "")
	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func testDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "svet.db")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "svet (devel)\n", out)
}

func TestStats_FreshDatabase(t *testing.T) {
	out, err := execute(t, "", "stats", "--db", testDB(t))
	require.NoError(t, err)
	assert.Contains(t, out, "Username:        (not set)")
	assert.Contains(t, out, "Tests completed: 0")
}

func TestName_ThenStats(t *testing.T) {
	db := testDB(t)

	out, err := execute(t, "", "name", "--db", db, "Jana", "Nováková")
	require.NoError(t, err)
	assert.Contains(t, out, "Username set to Jana Nováková.")

	out, err = execute(t, "", "stats", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Username:        Jana Nováková")
}

func TestName_RequiresArgument(t *testing.T) {
	_, err := execute(t, "", "name", "--db", testDB(t))
	assert.Error(t, err)

	_, err = execute(t, "", "name", "--db", testDB(t), "   ")
	assert.EqualError(t, err, "username must not be empty")
}

func TestReset_Confirmed(t *testing.T) {
	db := testDB(t)
	seedCount(t, db, "4")

	out, err := execute(t, "y\n", "reset", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Progress reset.")

	out, err = execute(t, "", "stats", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Tests completed: 0")
}

func TestReset_Declined(t *testing.T) {
	db := testDB(t)
	seedCount(t, db, "4")

	out, err := execute(t, "n\n", "reset", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Aborted.")

	out, err = execute(t, "", "stats", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Tests completed: 4")
}

func TestReset_YesSkipsPrompt(t *testing.T) {
	db := testDB(t)
	seedCount(t, db, "2")

	out, err := execute(t, "", "reset", "--yes", "--db", db)
	require.NoError(t, err)
	assert.NotContains(t, out, "(y/n)")

	out, err = execute(t, "", "stats", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Tests completed: 0")
}

func TestContentList(t *testing.T) {
	out, err := execute(t, "", "content", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Slovenský Jazyk")
	assert.Contains(t, out, "Matematika")
	assert.Contains(t, out, "tests\n")
}

func TestContentList_SubjectFilter(t *testing.T) {
	out, err := execute(t, "", "content", "list", "--subject", "Matematika")
	require.NoError(t, err)
	assert.Contains(t, out, "Matematika")
	assert.NotContains(t, out, "Slovenský Jazyk")

	_, err = execute(t, "", "content", "list", "--subject", "Fyzika")
	assert.EqualError(t, err, `no subject "Fyzika"`)
}

func TestContentValidate_Embedded(t *testing.T) {
	out, err := execute(t, "", "content", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "embedded content: ok (3 subjects")
}

func TestContentValidate_InvalidDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "questions.json"), []byte(`{"subjects": "nope"}`), 0o644))

	_, err := execute(t, "", "content", "validate", "--dir", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "content is invalid")
}

func TestContentValidate_MissingDir(t *testing.T) {
	_, err := execute(t, "", "content", "validate", "--dir", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "content is invalid")
}

// seedCount writes the counter directly through the store.
func seedCount(t *testing.T, db, value string) {
	t.Helper()
	st, gw, err := openProgress(db, cliLogger(&bytes.Buffer{}), mustConfig(t))
	require.NoError(t, err)
	gw.Close()
	defer st.Close()
	require.NoError(t, st.KV().Set(t.Context(), "completed_tests", value))
}

func mustConfig(t *testing.T) config.Config {
	t.Helper()
	cfg, err := config.Load()
	require.NoError(t, err)
	return cfg
}
