package roundservice

import (
	"context"
	"fmt"

	rounddb "github.com/Black-And-White-Club/scorecard/app/modules/round/infrastructure/repositories"
	roundtime "github.com/Black-And-White-Club/scorecard/app/modules/round/time_utils"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

const (
	scorecardSheet = "Scorecard"
	tiger5Sheet    = "Tiger 5"
	xlsxMIME       = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ExportScorecard renders the round as an XLSX workbook with a scorecard
// sheet and a Tiger 5 sheet.
func (s *RoundService) ExportScorecard(ctx context.Context, roundID uuid.UUID) (*Scorecard, error) {
	return withTelemetry(s, ctx, "ExportScorecard", roundID.String(), func(ctx context.Context) (*Scorecard, error) {
		detail, err := s.loadDetail(ctx, nil, roundID)
		if err != nil {
			return nil, err
		}

		data, err := renderScorecard(detail)
		if err != nil {
			return nil, err
		}

		return &Scorecard{
			Filename:    fmt.Sprintf("scorecard-%s-%s.xlsx", detail.Date.Format(roundtime.DateLayout), roundID.String()[:8]),
			ContentType: xlsxMIME,
			Data:        data,
		}, nil
	})
}

func renderScorecard(d *RoundDetail) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", scorecardSheet); err != nil {
		return nil, fmt.Errorf("failed to name scorecard sheet: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}

	title := d.CourseName
	if d.TeeName != "" {
		title += " (" + d.TeeName + ")"
	}
	rows := [][]any{
		{title},
		{"Player", d.PlayerName, "Date", d.Date.Format(roundtime.DateLayout), "Competition", string(d.CompetitionType), "Handicap", d.Handicap()},
		{},
		{"Hole", "Par", "SI", "Distance", "Score", "Putts", "Points"},
	}
	boldRows := []int{1, 4}

	var out, in subtotal
	for _, h := range d.Holes {
		if h.HoleNumber == 10 {
			rows = append(rows, out.row("OUT", d.Totals.OutScore, d.Totals.OutPoints))
			boldRows = append(boldRows, len(rows))
		}
		rows = append(rows, []any{
			h.HoleNumber, h.Par, intOrBlank(h.StrokeIndex), intOrBlank(h.Distance),
			intOrBlank(h.Score), intOrBlank(h.TotalPutts), intOrBlank(h.Points),
		})
		if h.HoleNumber <= 9 {
			out.add(h)
		} else {
			in.add(h)
		}
	}
	if in.holes > 0 {
		rows = append(rows, in.row("IN", d.Totals.InScore, d.Totals.InPoints))
	} else {
		rows = append(rows, out.row("OUT", d.Totals.OutScore, d.Totals.OutPoints))
	}
	boldRows = append(boldRows, len(rows))

	total := subtotal{par: out.par + in.par, distance: out.distance + in.distance, putts: out.putts + in.putts}
	rows = append(rows, total.row("TOTAL", d.Totals.TotalScore, d.Totals.TotalPoints))
	boldRows = append(boldRows, len(rows))

	if err := writeRows(f, scorecardSheet, rows, boldRows, bold); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(tiger5Sheet); err != nil {
		return nil, fmt.Errorf("failed to create tiger 5 sheet: %w", err)
	}
	if err := writeRows(f, tiger5Sheet, tiger5Rows(d), []int{1}, bold); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func tiger5Rows(d *RoundDetail) [][]any {
	rows := [][]any{{"Hole", "Bogey on Par 5", "Double Bogey", "3-Putt", "Short Miss", "Missed Up & Down"}}
	for _, h := range d.Tiger5.ByHole {
		rows = append(rows, []any{
			h.HoleNumber, mark(h.BogeyOnPar5), mark(h.DoubleBogey), mark(h.ThreePutt), mark(h.ShortMiss), mark(h.MissedUpDown),
		})
	}
	t := d.Tiger5.Totals
	rows = append(rows,
		[]any{"Total", t.BogeyOnPar5, t.DoubleBogey, t.ThreePutt, t.ShortMiss, t.MissedUpDown},
		[]any{},
		[]any{"Violations", t.Total, "of", t.MaxPossible, fmt.Sprintf("%.1f%%", t.Percentage)},
		[]any{"Grade", t.Grade},
	)
	return rows
}

func writeRows(f *excelize.File, sheet string, rows [][]any, boldRows []int, bold int) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	for _, r := range boldRows {
		start, _ := excelize.CoordinatesToCellName(1, r)
		end, _ := excelize.CoordinatesToCellName(8, r)
		if err := f.SetCellStyle(sheet, start, end, bold); err != nil {
			return fmt.Errorf("failed to style %s row %d: %w", sheet, r, err)
		}
	}
	return nil
}

// subtotal accumulates the course columns of the OUT and IN rows.
type subtotal struct {
	holes, par, distance, putts int
}

func (s *subtotal) add(h *rounddb.RoundHole) {
	s.holes++
	s.par += h.Par
	if h.Distance != nil {
		s.distance += *h.Distance
	}
	if h.TotalPutts != nil {
		s.putts += *h.TotalPutts
	}
}

func (s subtotal) row(label string, score, points int) []any {
	return []any{label, s.par, "", s.distance, score, s.putts, points}
}

func intOrBlank(v *int) any {
	if v == nil {
		return ""
	}
	return *v
}

func mark(b bool) string {
	if b {
		return "X"
	}
	return ""
}
