package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhavyasrideva22/career-fit-quiz/internal/llm"
)

// runScore executes the score command and returns stdout and stderr.
func runScore(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	scoreCmd.SetOut(&out)
	scoreCmd.SetErr(&errOut)
	t.Cleanup(func() {
		scoreCmd.SetOut(nil)
		scoreCmd.SetErr(nil)
		_ = scoreCmd.Flags().Set("format", "text")
	})

	rootCmd.SetArgs(append([]string{"score"}, args...))
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func writeSheet(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "answers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestScore_JSON(t *testing.T) {
	t.Setenv("CAREERFIT_LLM_PROVIDER", "")
	path := writeSheet(t, "answers:\n  psych_1: 5\n  tech_1: 1\n  ghost: 3\n")

	stdout, stderr, err := runScore(t, path, "--format", "json")
	require.NoError(t, err)

	var doc struct {
		Answered int `json:"answered"`
		Total    int `json:"total"`
		Result   struct {
			Recommendation string `json:"recommendation"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
	assert.Equal(t, 2, doc.Answered)
	assert.Equal(t, 17, doc.Total)
	assert.Equal(t, "conditional", doc.Result.Recommendation)

	assert.Contains(t, stderr, "ignoring unknown question ids: ghost")
	assert.Contains(t, stderr, "15 of 17 questions unanswered")
}

func TestScore_InvalidValue(t *testing.T) {
	path := writeSheet(t, "answers:\n  psych_1: 9\n")

	_, _, err := runScore(t, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "psych_1")
}

func TestScore_BadFormat(t *testing.T) {
	path := writeSheet(t, "answers:\n  psych_1: 3\n")

	_, _, err := runScore(t, path, "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestMaskKey(t *testing.T) {
	assert.Equal(t, "(none)", maskKey(""))
	assert.Equal(t, "***", maskKey("abc"))
	assert.Equal(t, "********wxyz", maskKey("sk-abcdefwxyz"))
}

func TestProviderDetails(t *testing.T) {
	c := llm.DefaultConfig()
	c.Provider = llm.ProviderOpenAI
	c.OpenAI.APIKey = "k"

	model, key := providerDetails(c)
	assert.Equal(t, "gpt-4o-mini", model)
	assert.Equal(t, "k", key)

	c.Provider = llm.ProviderMock
	model, key = providerDetails(c)
	assert.Equal(t, "mock", model)
	assert.Empty(t, key)
}

func TestRootHasSubcommands(t *testing.T) {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	joined := strings.Join(names, " ")
	for _, want := range []string{"questions", "score", "validate", "llm", "version"} {
		assert.Contains(t, joined, want)
	}
}

func TestVersion_ReportsBuiltInCatalog(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	t.Cleanup(func() { versionCmd.SetOut(nil) })

	rootCmd.SetArgs([]string{"version"})
	require.NoError(t, rootCmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "careerfit "+version, lines[0])
	assert.Equal(t, `catalog "Should I Learn Cloud DevOps?": 17 questions, schema v1.0.0 (accepts v1.x)`, lines[1])
}
