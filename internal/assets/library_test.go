package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		full := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("png"), 0o644))
	}
}

func matchupSources() []Source {
	return []Source{
		{PanelID: "TodayGame", Dir: DirTodayGame},
		{PanelID: "TodayBP", Dir: DirTodayBP},
		{PanelID: "TomorrowGame", Dir: DirTomorrowGame},
		{PanelID: "TomorrowBP", Dir: DirTomorrowBP},
	}
}

func TestLibrary_ScanSortsAndFilters(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root,
		"today_game/NYY_vs_BOS_today.png",
		"today_game/ATL_vs_PHI_today.png",
		"today_game/matchups_today.csv", // pipeline side-product, not an image
		"today_game/notes.txt",
		"today_bp/top_50_unfavorable_today.png",
		"today_bp/top_50_favorable_today.PNG", // extension match is case-insensitive
	)

	lib := NewLibrary(root, matchupSources())
	got, err := lib.Scan()
	require.NoError(t, err)
	require.Len(t, got, 4)

	require.Equal(t, "TodayGame", got[0].PanelID)
	require.Equal(t, []string{
		"today_game/ATL_vs_PHI_today.png",
		"today_game/NYY_vs_BOS_today.png",
	}, got[0].Images)

	require.Equal(t, []string{
		"today_bp/top_50_favorable_today.PNG",
		"today_bp/top_50_unfavorable_today.png",
	}, got[1].Images)
}

func TestLibrary_ScanMissingFolderIsEmpty(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "today_game/NYY_vs_BOS_today.png")

	lib := NewLibrary(root, matchupSources())
	got, err := lib.Scan()
	require.NoError(t, err)

	require.False(t, got[0].Empty())
	for _, g := range got[1:] {
		require.True(t, g.Empty(), "panel %s should be empty", g.PanelID)
	}
}

func TestLibrary_ScanIgnoresSubdirectories(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root,
		"today_game/NYY_vs_BOS_today.png",
		"today_game/archive/old_today.png",
	)

	lib := NewLibrary(root, []Source{{PanelID: "TodayGame", Dir: DirTodayGame}})
	got, err := lib.Scan()
	require.NoError(t, err)
	require.Equal(t, []string{"today_game/NYY_vs_BOS_today.png"}, got[0].Images)
}

func TestLibrary_WatchDirs(t *testing.T) {
	lib := NewLibrary("/data/charts", matchupSources())
	dirs := lib.WatchDirs()
	require.Equal(t, []string{
		filepath.FromSlash("/data/charts/today_game"),
		filepath.FromSlash("/data/charts/today_bp"),
		filepath.FromSlash("/data/charts/tomorrow_game"),
		filepath.FromSlash("/data/charts/tomorrow_bp"),
	}, dirs)
}

func TestParseChartName(t *testing.T) {
	tests := []struct {
		ref     string
		want    ChartName
		wantOK  bool
	}{
		{"today_game/NYY_vs_BOS_today.png", ChartName{Subject: "NYY vs BOS", Day: "today"}, true},
		{"tomorrow_bp/top_50_favorable_tomorrow.png", ChartName{Subject: "top 50 favorable", Day: "tomorrow"}, true},
		{"today_bp/top_50_unfavorable_today.PNG", ChartName{Subject: "top 50 unfavorable", Day: "today"}, true},
		{"today_game/readme.txt", ChartName{}, false},
		{"today_game/chart.png", ChartName{}, false},     // no day suffix
		{"today_game/_today.png", ChartName{}, false},    // empty subject
		{"today_game/NYY_someday.png", ChartName{}, false}, // unknown day
	}
	for _, tt := range tests {
		got, ok := ParseChartName(tt.ref)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParseChartName(%q) = %+v, %v; want %+v, %v", tt.ref, got, ok, tt.want, tt.wantOK)
		}
	}
}
