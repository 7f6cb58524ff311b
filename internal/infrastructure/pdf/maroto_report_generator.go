// Package pdf renders a completed-job report as a printable document.
//
// A4 layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Process type + Process ID  │  Job date             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  JOB: employee / supplier / lots / products / notes         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALS: input / output / balance                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: inbound lines (source, gross, tare, net)            │
//	│  TABLE: output lines per category (box ID, net, location)   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appreport "github.com/seedhouse/farmops-api/internal/application/report"
	"github.com/seedhouse/farmops-api/internal/domain/entity"
	"github.com/seedhouse/farmops-api/internal/domain/job"
)

var (
	colorPrimary = &props.Color{Red: 34, Green: 85, Blue: 34}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ appreport.PDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implements report.PDFGenerator using Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator builds the generator.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateReportPDF renders the report and returns its bytes.
func (g *MarotoReportGenerator) GenerateReportPDF(_ context.Context, r *entity.Report) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Job Report "+r.ProcessID, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(jobInfoRows(r)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))

	m.AddRows(sectionTitle("Inbound"))
	m.AddRows(inboundHeaderRow())
	for _, l := range r.Inbound {
		m.AddRows(inboundLineRow(l))
	}

	jobCfg, _ := job.Lookup(r.ProcessType)
	for _, cat := range jobCfg.Categories {
		lines := r.Outputs[cat.Key]
		if len(lines) == 0 {
			continue
		}
		m.AddRows(sectionTitle(cat.Label))
		m.AddRows(outputHeaderRow())
		for _, l := range lines {
			m.AddRows(outputLineRow(r.ProcessID, cat.Code, l))
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: process label + ID (left) and job date (right).
func headerRow(r *entity.Report) core.Row {
	label := r.ProcessType
	if cfg, ok := job.Lookup(r.ProcessType); ok {
		label = cfg.Label
	}
	return row.New(16).Add(
		col.New(8).Add(
			text.New(label+" Job", props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("Process ID: "+r.ProcessID, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New(r.JobDate, props.Text{Size: 10, Top: 4, Align: align.Right}),
		),
	)
}

func jobInfoRows(r *entity.Report) []core.Row {
	rows := []core.Row{
		labelValueRow("Employee", r.Employee, "Supplier", r.Supplier),
		labelValueRow("Lot Numbers", r.LotNumbers, "Products", r.Products),
	}
	if r.Notes != "" {
		rows = append(rows, row.New(8).Add(
			col.New(12).Add(
				text.New("Notes: "+r.Notes, props.Text{Size: 8, Color: colorGray, Top: 1}),
			),
		))
	}
	return rows
}

func labelValueRow(l1, v1, l2, v2 string) core.Row {
	return row.New(8).Add(
		col.New(6).Add(text.New(l1+": "+v1, props.Text{Size: 9, Top: 1})),
		col.New(6).Add(text.New(l2+": "+v2, props.Text{Size: 9, Top: 1})),
	)
}

func totalsRow(r *entity.Report) core.Row {
	return row.New(12).Add(
		totalCol("Input", r.InputTotal.StringFixed(1)),
		totalCol("Output", r.OutputTotal.StringFixed(1)),
		totalCol("Balance", r.Balance.StringFixed(1)),
	)
}

func totalCol(label, value string) core.Col {
	return col.New(4).Add(
		text.New(label, props.Text{Size: 8, Color: colorGray, Top: 1}),
		text.New(value+" lbs", props.Text{Style: fontstyle.Bold, Size: 11, Top: 5}),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(9).Add(
		col.New(12).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2}),
		),
	)
}

func inboundHeaderRow() core.Row {
	return row.New(6).Add(
		tableHeaderCol(4, "Source"),
		tableHeaderCol(3, "Gross"),
		tableHeaderCol(2, "Tare Box"),
		tableHeaderCol(3, "Net"),
	)
}

func inboundLineRow(l entity.InboundLine) core.Row {
	source := l.BinLocation
	switch l.SourceType {
	case entity.SourceTypeBoxID:
		source = "Box " + l.BoxID
	case entity.SourceTypeCustom:
		source = l.LotNumber + " / " + l.Product
	}
	tare := ""
	if l.UsePhysicalBox {
		tare = l.PhysicalBoxID
	}
	return row.New(5).Add(
		tableCol(4, source),
		tableCol(3, l.GrossWeight.StringFixed(1)),
		tableCol(2, tare),
		tableCol(3, l.NetWeight.StringFixed(1)),
	)
}

func outputHeaderRow() core.Row {
	return row.New(6).Add(
		tableHeaderCol(4, "Box ID"),
		tableHeaderCol(3, "Net"),
		tableHeaderCol(5, "Storage Location"),
	)
}

func outputLineRow(processID, code string, l entity.OutputLine) core.Row {
	return row.New(5).Add(
		tableCol(4, job.BoxID(processID, code, l.BoxNumber)),
		tableCol(3, l.NetWeight.StringFixed(1)),
		tableCol(5, l.StorageLocation),
	)
}

func tableHeaderCol(size int, label string) core.Col {
	return col.New(size).Add(
		text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1}),
	)
}

func tableCol(size int, value string) core.Col {
	return col.New(size).Add(
		text.New(value, props.Text{Size: 8, Top: 1}),
	)
}
