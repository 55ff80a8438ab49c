// Package chart renders simulation output as a Plotly figure document.
package chart

import (
	"fmt"
	"strings"

	"github.com/bobmcallan/vire-openbb/internal/simulation"
)

// maxPathTraces is the number of individual simulated paths drawn behind the bands.
const maxPathTraces = 50

// Figure is the subset of the Plotly figure schema the widget emits.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is a Plotly scatter trace.
type Trace struct {
	Type       string    `json:"type"`
	X          []int     `json:"x"`
	Y          []float64 `json:"y"`
	Mode       string    `json:"mode"`
	Name       string    `json:"name,omitempty"`
	Line       Line      `json:"line"`
	ShowLegend *bool     `json:"showlegend,omitempty"`
	HoverInfo  string    `json:"hoverinfo,omitempty"`
	Fill       string    `json:"fill,omitempty"`
	FillColor  string    `json:"fillcolor,omitempty"`
}

// Line styles a trace.
type Line struct {
	Width float64 `json:"width"`
	Color string  `json:"color"`
	Dash  string  `json:"dash,omitempty"`
}

// Text wraps Plotly's {"text": ...} title objects.
type Text struct {
	Text string `json:"text"`
}

// Axis is a Plotly axis.
type Axis struct {
	Title Text `json:"title"`
}

// Layout is the figure layout.
type Layout struct {
	Title    Text     `json:"title"`
	XAxis    Axis     `json:"xaxis"`
	YAxis    Axis     `json:"yaxis"`
	Template Template `json:"template"`
	Height   int      `json:"height"`
}

// Template carries the theme colours Plotly applies under the layout.
type Template struct {
	Layout TemplateLayout `json:"layout"`
}

// TemplateLayout is the themed part of a template.
type TemplateLayout struct {
	PaperBgColor string       `json:"paper_bgcolor"`
	PlotBgColor  string       `json:"plot_bgcolor"`
	Font         TemplateFont `json:"font"`
}

// TemplateFont is the template font colour.
type TemplateFont struct {
	Color string `json:"color"`
}

var templates = map[string]Template{
	"plotly_white": {Layout: TemplateLayout{PaperBgColor: "white", PlotBgColor: "white", Font: TemplateFont{Color: "#2a3f5f"}}},
	"plotly_dark":  {Layout: TemplateLayout{PaperBgColor: "rgb(17,17,17)", PlotBgColor: "rgb(17,17,17)", Font: TemplateFont{Color: "#f2f5fa"}}},
}

// TemplateName maps the widget theme parameter to a Plotly template.
func TemplateName(theme string) string {
	if strings.EqualFold(strings.TrimSpace(theme), "dark") {
		return "plotly_dark"
	}
	return "plotly_white"
}

// MonteCarlo builds the simulation figure: up to 50 faint paths, then the
// median, 5th and 95th percentile lines with the 5-95 band shaded.
func MonteCarlo(ticker string, paths [][]float64, theme string) Figure {
	days := 0
	if len(paths) > 0 {
		days = len(paths[0])
	}
	x := make([]int, days)
	for i := range x {
		x[i] = i
	}

	hidden := false
	data := make([]Trace, 0, min(len(paths), maxPathTraces)+3)
	for _, path := range paths[:min(len(paths), maxPathTraces)] {
		data = append(data, Trace{
			Type:       "scatter",
			X:          x,
			Y:          path,
			Mode:       "lines",
			Line:       Line{Width: 1, Color: "rgba(100, 150, 200, 0.1)"},
			ShowLegend: &hidden,
			HoverInfo:  "skip",
		})
	}

	bands := simulation.PercentileBands(paths)
	data = append(data,
		Trace{
			Type: "scatter", X: x, Y: bands.P50, Mode: "lines",
			Name: "Median (50th)",
			Line: Line{Width: 3, Color: "red"},
		},
		Trace{
			Type: "scatter", X: x, Y: bands.P5, Mode: "lines",
			Name: "5th Percentile",
			Line: Line{Width: 2, Color: "blue", Dash: "dash"},
		},
		// tonexty fills down to the previous trace, the 5th percentile.
		Trace{
			Type: "scatter", X: x, Y: bands.P95, Mode: "lines",
			Name:      "95th Percentile",
			Line:      Line{Width: 2, Color: "blue", Dash: "dash"},
			Fill:      "tonexty",
			FillColor: "rgba(0, 100, 200, 0.1)",
		},
	)

	return Figure{
		Data: data,
		Layout: Layout{
			Title:    Text{Text: fmt.Sprintf("Monte Carlo Simulation for %s", strings.ToUpper(ticker))},
			XAxis:    Axis{Title: Text{Text: "Days"}},
			YAxis:    Axis{Title: Text{Text: "Price ($)"}},
			Template: templates[TemplateName(theme)],
			Height:   500,
		},
	}
}
