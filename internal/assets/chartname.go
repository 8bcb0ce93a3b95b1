package assets

import (
	"path"
	"strings"
)

// ChartName is the metadata encoded in a chart file name. The pipeline
// names files `<matchup-or-report>_<today|tomorrow>.png`, e.g.
// NYY_vs_BOS_today.png or top_50_favorable_tomorrow.png.
type ChartName struct {
	Subject string // matchup or report name with underscores replaced by spaces
	Day     string // "today" or "tomorrow"
}

// ParseChartName decodes the naming convention from an image reference.
// Returns false for files that do not follow the convention; such files
// still display, they just carry no parsed metadata.
func ParseChartName(ref string) (ChartName, bool) {
	base := path.Base(ref)
	ext := path.Ext(base)
	if !strings.EqualFold(ext, ".png") {
		return ChartName{}, false
	}
	stem := base[:len(base)-len(ext)]

	i := strings.LastIndex(stem, "_")
	if i <= 0 || i == len(stem)-1 {
		return ChartName{}, false
	}
	day := stem[i+1:]
	if day != "today" && day != "tomorrow" {
		return ChartName{}, false
	}
	return ChartName{
		Subject: strings.ReplaceAll(stem[:i], "_", " "),
		Day:     day,
	}, true
}
