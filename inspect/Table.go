package inspect

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/samuelfneumann/gosc2/preprocess"
)

// RenderTable renders rows as a text table. Columns listed in
// rightAlign are right aligned.
func RenderTable(headers []string, rows [][]string, rightAlign ...int) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	right := make(map[int]bool, len(rightAlign))
	for _, i := range rightAlign {
		right[i] = true
	}
	configs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if right[i] {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

// LayoutTable renders the output channel layout of an Encoder
func LayoutTable(e *preprocess.Encoder) string {
	layout := e.Layout()
	rows := make([][]string, len(layout))
	for i, p := range layout {
		kind := "scalar"
		if p.OneHot() {
			kind = "one-hot"
		}
		rows[i] = []string{
			strconv.Itoa(p.Output),
			strconv.Itoa(p.Channel),
			p.Feature.Name,
			p.Feature.Type.String(),
			kind,
			Describe(p),
		}
	}
	return RenderTable(
		[]string{"Out", "In", "Feature", "Type", "Encoding", "Value"},
		rows, 0, 1,
	)
}

// StatsTable renders per-channel statistics of an encoded tensor
// alongside the layout of the Encoder that produced it
func StatsTable(e *preprocess.Encoder, stats []PlaneStats) (string, error) {
	layout := e.Layout()
	if len(layout) != len(stats) {
		return "", fmt.Errorf("statstable: invalid number of channels"+
			"\n\twant(%v)\n\thave(%v)", len(layout), len(stats))
	}

	rows := make([][]string, len(stats))
	for i, s := range stats {
		rows[i] = []string{
			strconv.Itoa(s.Channel),
			Describe(layout[i]),
			format(s.Mean),
			format(s.StdDev),
			format(s.Min),
			format(s.Max),
			format(s.Active),
		}
	}
	return RenderTable(
		[]string{"Out", "Value", "Mean", "Std", "Min", "Max", "Active"},
		rows, 0, 2, 3, 4, 5, 6,
	), nil
}

func format(f float64) string {
	return strconv.FormatFloat(f, 'f', 4, 64)
}
