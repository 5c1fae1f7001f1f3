package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
competition:
  name: "Weekly Challenge"
  start_date: "2026-01-01"
  end_date: "2026-01-31"
usernames:
  - alice
  - bob
problems:
  - slug: two-sum
    title: Two Sum
    difficulty: Easy
    points: 10
scraping:
  headless: true
  timeout: 30000
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadValidConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, "Weekly Challenge", cfg.Competition.Name)
	assert.Equal(t, []string{"alice", "bob"}, cfg.Usernames)
	require.Len(t, cfg.Problems, 1)
	assert.Equal(t, "two-sum", cfg.Problems[0].Slug)
	assert.Equal(t, 10, cfg.Problems[0].Points)
	assert.True(t, cfg.Scraping.Headless)
	assert.Equal(t, 30000, cfg.Scraping.Timeout)

	// Defaults applied for the optional sections.
	assert.Equal(t, "db.sqlite", cfg.Database.Path)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.NotEmpty(t, cfg.Scheduler.Cron)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadMissingRequiredSections(t *testing.T) {
	cases := map[string]string{
		"competition": `
usernames: [alice]
problems:
  - {slug: two-sum, title: Two Sum, points: 10}
scraping: {headless: true, timeout: 30000}
`,
		"usernames": `
competition: {name: C, start_date: "2026-01-01", end_date: "2026-01-31"}
problems:
  - {slug: two-sum, title: Two Sum, points: 10}
scraping: {headless: true, timeout: 30000}
`,
		"problems": `
competition: {name: C, start_date: "2026-01-01", end_date: "2026-01-31"}
usernames: [alice]
scraping: {headless: true, timeout: 30000}
`,
		"scraping": `
competition: {name: C, start_date: "2026-01-01", end_date: "2026-01-31"}
usernames: [alice]
problems:
  - {slug: two-sum, title: Two Sum, points: 10}
`,
	}

	for section, content := range cases {
		t.Run(section, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			assert.Error(t, err, "missing %s section must fail before any side effect", section)
		})
	}
}

func TestLoadMalformedProblem(t *testing.T) {
	content := `
competition: {name: C, start_date: "2026-01-01", end_date: "2026-01-31"}
usernames: [alice]
problems:
  - {slug: "", title: Two Sum, points: 10}
scraping: {headless: true, timeout: 30000}
`
	_, err := Load(writeConfig(t, content))
	assert.Error(t, err)
}

func TestProblemSlugsPreservesOrder(t *testing.T) {
	cfg := &Config{
		Problems: []ProblemConfig{
			{Slug: "b"}, {Slug: "a"}, {Slug: "c"},
		},
	}
	assert.Equal(t, []string{"b", "a", "c"}, cfg.ProblemSlugs())
}
