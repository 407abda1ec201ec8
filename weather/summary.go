package weather

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Window is a fixed local-hour bucket. Start is inclusive, End exclusive:
// an observation at exactly 12:00 belongs to Afternoon, not Morning.
type Window struct {
	Label     string
	HourRange string
	Start     int
	End       int
}

var (
	Morning   = Window{Label: "Morning", HourRange: "8am-12pm", Start: 8, End: 12}
	Afternoon = Window{Label: "Afternoon", HourRange: "12pm-5pm", Start: 12, End: 17}
	Evening   = Window{Label: "Evening", HourRange: "5pm-10pm", Start: 17, End: 22}
)

// windows in presentation order.
var windows = []Window{Morning, Afternoon, Evening}

// PeriodSummary is the averaged conditions within one window.
type PeriodSummary struct {
	Window    Window
	AvgTemp   int
	AvgPrecip int
	AvgCloud  int
	Sky       string
}

func (p PeriodSummary) line() string {
	return fmt.Sprintf("Avg %dF, %d%% rain chance, %s", p.AvgTemp, p.AvgPrecip, p.Sky)
}

// summarizePeriod averages the observations that fall inside the window on
// the given local day. Returns nil when the window has no eligible hours;
// an empty window is absence, not an error.
func summarizePeriod(hourly []HourlyObservation, w Window, today time.Time, loc *time.Location) *PeriodSummary {
	var temps, precs, clouds []float64
	ty, tm, td := today.Date()
	for _, obs := range hourly {
		local := obs.Time.In(loc)
		y, m, d := local.Date()
		if y != ty || m != tm || d != td {
			continue
		}
		if local.Hour() < w.Start || local.Hour() >= w.End {
			continue
		}
		temps = append(temps, obs.Temperature)
		precs = append(precs, obs.PrecipitationProbability)
		clouds = append(clouds, obs.CloudCover)
	}
	if len(temps) == 0 {
		return nil
	}
	avgCloud := roundMean(clouds)
	return &PeriodSummary{
		Window:    w,
		AvgTemp:   roundMean(temps),
		AvgPrecip: roundMean(precs),
		AvgCloud:  avgCloud,
		Sky:       cloudDescriptor(avgCloud),
	}
}

func roundMean(vals []float64) int {
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return int(math.Round(sum / float64(len(vals))))
}

// cloudDescriptor maps averaged cloud cover to a qualitative label. The
// lower bound of each band is inclusive: 20 is already "partly cloudy" and
// 50 is already "cloudy".
func cloudDescriptor(avgCloud int) string {
	switch {
	case avgCloud < 20:
		return "sunny"
	case avgCloud < 50:
		return "partly cloudy"
	default:
		return "cloudy"
	}
}

// assemble joins the present period summaries into the final sentence.
// The second return is false when every window was empty.
func assemble(periods []*PeriodSummary) (string, bool) {
	parts := make([]string, 0, len(periods))
	for _, p := range periods {
		if p == nil {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s (%s): %s", p.Window.Label, p.Window.HourRange, p.line()))
	}
	if len(parts) == 0 {
		return "", false
	}
	return "Today's forecast - " + strings.Join(parts, ". ") + ".", true
}
