package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/goccy/go-json"

	"github.com/fireplan/fire-calculator/internal/domain"
)

// HTMLFormatter produces a standalone HTML report with a growth chart.
type HTMLFormatter struct {
	Options
}

func (h HTMLFormatter) Name() string      { return "html" }
func (h HTMLFormatter) Extension() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr": FormatCurrency,
	"pct":  FormatPercentage,
	"json": func(v any) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

type chartPoint struct {
	Age     int    `json:"age"`
	Nominal string `json:"nominal"`
	Real    string `json:"real"`
	Target  string `json:"target"`
}

func (h HTMLFormatter) Format(result *domain.FireResult) ([]byte, error) {
	sym := h.symbol()

	points := make([]chartPoint, 0, len(result.Projections))
	for _, p := range result.Projections {
		points = append(points, chartPoint{
			Age:     p.Age,
			Nominal: p.AccumulatedAmount.String(),
			Real:    p.InflationAdjustedAmount.String(),
			Target:  result.FireNumber.String(),
		})
	}

	data := struct {
		*domain.FireResult
		Symbol      string
		Scenarios   []ScenarioRow
		Assumptions []string
		Chart       []chartPoint
	}{result, sym, SummarizeScenarios(result, sym), DescribeAssumptions(result.Assumptions, sym), points}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
