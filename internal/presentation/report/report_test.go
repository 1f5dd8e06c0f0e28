package report_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tendril/internal/presentation/report"
	"github.com/aretw0/tendril/pkg/domain"
)

func acceptedResult() *domain.Result {
	return &domain.Result{
		Machine: "a_plus",
		Input:   "aaa",
		Status:  domain.StatusAccepted,
		Trace: []domain.Configuration{
			{Left: "", State: "q0", Right: "aaa"},
			{Left: "a", State: "q1", Right: "aa_"},
			{Left: "aa", State: "q1", Right: "a__"},
			{Left: "aaa", State: "q1", Right: "___"},
			{Left: "aaa_", State: "qaccept", Right: "____"},
		},
		Levels:    4,
		Explored:  5,
		MaxDepth:  50,
		Mode:      domain.ModeExhaustive,
		Metric:    domain.MetricStateDiversity,
		Branching: 1.6666666,
		Elapsed:   3 * time.Millisecond,
	}
}

func TestText(t *testing.T) {
	got := report.Text(acceptedResult())

	want := `--- Simulation Summary ---
Machine: a_plus
Input String: aaa
Result: Accepted
Depth: 4
Configurations Explored: 5
Average Non-Determinism: 1.67

Detailed Steps:
Step 1: (, q0, aaa)
Step 2: (a, q1, aa_)
Step 3: (aa, q1, a__)
Step 4: (aaa, q1, ___)
Step 5: (aaa_, qaccept, ____)
`
	assert.Equal(t, want, got)
}

func TestTextTimedOut(t *testing.T) {
	res := acceptedResult()
	res.Status = domain.StatusTimedOut

	got := report.Text(res)
	assert.Contains(t, got, "Result: Timed Out\n")
}

func TestTextEmptyTrace(t *testing.T) {
	res := &domain.Result{
		Machine: "void",
		Input:   "",
		Status:  domain.StatusRejected,
	}

	got := report.Text(res)
	assert.Contains(t, got, "Result: Rejected\n")
	assert.Contains(t, got, "Detailed Steps:\n")
	assert.NotContains(t, got, "Step 1:")
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, acceptedResult()))
	assert.Equal(t, report.Text(acceptedResult()), buf.String())
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "simulation_output.txt")
	require.NoError(t, report.WriteFile(path, acceptedResult()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, report.Text(acceptedResult()), string(data))
}

func TestMarkdown(t *testing.T) {
	got := report.Markdown(acceptedResult())

	assert.Contains(t, got, "# Simulation Summary")
	assert.Contains(t, got, "**Machine:** a_plus")
	assert.Contains(t, got, "**Result:** Accepted")
	assert.Contains(t, got, "**Average Non-Determinism:** 1.67 (state_diversity)")
	assert.Contains(t, got, "| 1 | `(, q0, aaa)` |")
}

func TestMarkdownEmptyTraceOmitsSteps(t *testing.T) {
	res := &domain.Result{Machine: "void", Status: domain.StatusRejected}

	got := report.Markdown(res)
	assert.NotContains(t, got, "Detailed Steps")
}

func TestNewRendererProducesOutput(t *testing.T) {
	render := report.NewRenderer()

	out, err := render("# Hello\n\nplain text")
	require.NoError(t, err)
	assert.Contains(t, out, "Hello")
}
