package export

import (
	"fmt"
	"io"

	"github.com/Davincible/fieldcalc/pkg/galois"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// writeHTML renders the multiplication table as a heat map. Cell colour is
// the enumeration index of the product; the cell label is its canonical form.
func writeHTML(w io.Writer, f *galois.Field) error {
	elements := f.Elements()
	mul := f.MulTable()

	labels := make([]string, len(elements))
	for i, e := range elements {
		labels[i] = e.String()
	}

	items := make([]opts.HeatMapData, 0, len(elements)*len(elements))
	for i := range elements {
		for j := range elements {
			prod := mul.At(i, j)
			k, _ := mul.IndexOf(prod)
			items = append(items, opts.HeatMapData{
				Name:  prod.String(),
				Value: [3]interface{}{j, i, k},
			})
		}
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Multiplication table of GF(%d^%d)", f.P(), f.M()),
			Subtitle: "modulo " + galois.Format(f.Modulus()),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: labels}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: labels}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(len(elements) - 1),
			InRange:    &opts.VisualMapInRange{Color: []string{"#0ea5e9", "#22c55e", "#ef4444"}},
		}),
	)
	hm.SetXAxis(labels).AddSeries("product", items,
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(len(elements) <= 16), Formatter: "{b}"}),
	)

	page := components.NewPage().SetPageTitle(f.String())
	page.AddCharts(hm)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render html: %w", err)
	}
	return nil
}
