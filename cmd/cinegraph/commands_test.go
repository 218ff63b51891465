package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const primaryCSV = `Series_Title,Released_Year,Genre,Director,Star1,Star2,Star3,Star4
Drive,2011,"Crime, Drama",Nicolas Winding Refn,Ryan Gosling,Carey Mulligan,,
Heat,1995,"Action, Crime",Michael Mann,Al Pacino,Robert De Niro,,
`

const secondaryCSV = `show_id,title,director,cast,release_year,listed_in
s1,The Place Beyond the Pines,Derek Cianfrance,"Ryan Gosling, Bradley Cooper",2012,Dramas
s2,Collateral,Michael Mann,"Tom Cruise, Jamie Foxx",2004,Thrillers
s3,Silver Linings Playbook,David O. Russell,Bradley Cooper,2012,Comedies
`

func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
		return p
	}
	primary := write("imdb.csv", primaryCSV)
	secondary := write("netflix.csv", secondaryCSV)

	return write("config.toml", fmt.Sprintf(`
[log]
level = "disabled"

[catalog.primary]
raw = %q
cache = %q

[catalog.secondary]
raw = %q
cache = %q

[query]
top_limit = 3
`, primary, filepath.Join(dir, "cache", "imdb.json"), secondary, filepath.Join(dir, "cache", "netflix.json")))
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute(), out.String())
	return out.String()
}

func TestCommands(t *testing.T) {
	cfgPath := setup(t)

	out := execute(t, "--config", cfgPath, "normalize")
	assert.Contains(t, out, "IMDb: 2 records cached")
	assert.Contains(t, out, "Netflix: 3 records cached")

	out = execute(t, "--config", cfgPath, "path", "Drive (2011)", "Silver Linings Playbook (2012)")
	assert.Equal(t, "1. Drive (2011)\n2. The Place Beyond the Pines (2012)\n3. Silver Linings Playbook (2012)\n", out)

	out = execute(t, "--config", cfgPath, "neighbors", "Heat (1995)")
	assert.Equal(t, "- Collateral (2004)\n", out)

	out = execute(t, "--config", cfgPath, "overlap")
	assert.Equal(t, "IMDb titles connected to Netflix titles:\n- Drive (2011)\n- Heat (1995)\n", out)

	out = execute(t, "--config", cfgPath, "top", "--limit", "1")
	assert.Equal(t, "The Place Beyond the Pines (2012) - 2 connections\n", out)

	out = execute(t, "--config", cfgPath, "stats")
	assert.Contains(t, out, "nodes:              5")
	assert.Contains(t, out, "edges:              3")
	assert.Contains(t, out, "components:         2")
}

func TestLogFormat(t *testing.T) {
	assert.Equal(t, "json", logFormat(serveCmd, ""))
	assert.Equal(t, "console", logFormat(serveCmd, "console"))
	assert.Equal(t, "console", logFormat(pathCmd, ""))
	assert.Equal(t, "console", logFormat(rootCmd, ""))
	assert.Equal(t, "json", logFormat(shellCmd, "json"))
}
