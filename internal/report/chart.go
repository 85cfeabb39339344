package report

import (
	"errors"
	"os"

	"ppa-valuation/internal/model"

	"github.com/vicanso/go-charts/v2"
)

// maxChartPoints caps the rendered resolution; multi-year hourly tenors are
// decimated by striding before plotting.
const maxChartPoints = 2000

// RenderScheduleChart renders the PPA price schedule against the market
// forecast as a PNG line chart and returns the image bytes. The two series
// must share the schedule's tenor; pass an empty market series to plot the
// schedule alone.
func RenderScheduleChart(title string, schedule, market model.Series) ([]byte, error) {
	if schedule.Len() < 2 {
		return nil, errors.New("not enough schedule points to chart")
	}

	stride := 1
	if schedule.Len() > maxChartPoints {
		stride = schedule.Len() / maxChartPoints
	}

	labels := make([]string, 0, schedule.Len()/stride+1)
	ppa := make([]float64, 0, schedule.Len()/stride+1)
	spot := make([]float64, 0, schedule.Len()/stride+1)
	withMarket := market.Len() == schedule.Len()

	for i := 0; i < schedule.Len(); i += stride {
		labels = append(labels, schedule.Times[i].Format("2006-01-02"))
		ppa = append(ppa, schedule.Values[i])
		if withMarket {
			spot = append(spot, market.Values[i])
		}
	}

	series := [][]float64{ppa}
	legend := []string{"PPA price"}
	if withMarket {
		series = append(series, spot)
		legend = append(legend, "Market forecast")
	}

	painter, err := charts.LineRender(series,
		charts.TitleTextOptionFunc(title),
		charts.LegendOptionFunc(charts.LegendOption{Data: legend}),
		charts.XAxisOptionFunc(charts.XAxisOption{
			Data:        labels,
			BoundaryGap: charts.FalseFlag(),
			SplitNumber: 12,
		}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}

// WriteScheduleChart renders and writes the chart PNG to disk.
func WriteScheduleChart(path, title string, schedule, market model.Series) error {
	img, err := RenderScheduleChart(title, schedule, market)
	if err != nil {
		return err
	}
	return os.WriteFile(path, img, 0o644)
}
