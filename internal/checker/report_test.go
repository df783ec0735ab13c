package checker

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"urlcheck/pkg/models"
)

func TestInterpretResult(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		result  models.CheckResult
		want    string
		wantRow bool
	}{
		{
			name:    "normal produces no row",
			url:     "http://a.example",
			result:  models.NormalResult(),
			wantRow: false,
		},
		{
			name:    "moved",
			url:     "http://a.example",
			result:  models.MovedResult("https://a.example/new"),
			want:    "| 301 轉址 | http://a.example | https://a.example/new |",
			wantRow: true,
		},
		{
			name:    "unavailable",
			url:     "http://gone.example",
			result:  models.UnavailableResult(),
			want:    "| 404 失效 | http://gone.example | |",
			wantRow: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, ok := InterpretResult(tt.url, tt.result)
			require.Equal(t, tt.wantRow, ok)
			assert.Equal(t, tt.want, row)
		})
	}
}

func TestBuildReport_Empty(t *testing.T) {
	want := "| 狀態 | 網址 | 轉址網址 |\n| --- | --- | ------ |"
	assert.Equal(t, want, BuildReport(nil))
}

func TestBuildReport_SortsRows(t *testing.T) {
	rows := []string{
		"| 404 失效 | http://z.example | |",
		"| 301 轉址 | http://b.example | https://b.example/ |",
		"| 404 失效 | http://a.example | |",
	}

	report := BuildReport(rows)
	lines := strings.Split(report, "\n")
	require.Len(t, lines, 5)

	assert.Equal(t, "| 狀態 | 網址 | 轉址網址 |", lines[0])
	assert.Equal(t, "| --- | --- | ------ |", lines[1])

	// Data rows sort by full row text: marker first, URL second.
	assert.True(t, sort.StringsAreSorted(lines[2:]))
	assert.Equal(t, "| 301 轉址 | http://b.example | https://b.example/ |", lines[2])
	assert.Equal(t, "| 404 失效 | http://a.example | |", lines[3])
	assert.Equal(t, "| 404 失效 | http://z.example | |", lines[4])
}

func TestBuildReport_DoesNotMutateInput(t *testing.T) {
	rows := []string{"b", "a"}
	BuildReport(rows)
	assert.Equal(t, []string{"b", "a"}, rows)
}

func TestBuildReport_Deterministic(t *testing.T) {
	rows := []string{
		"| 404 失效 | http://b.example | |",
		"| 404 失效 | http://a.example | |",
	}
	assert.Equal(t, BuildReport(rows), BuildReport(rows))
}
