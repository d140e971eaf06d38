package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/domain/services"
)

const sheetName = "Meetings"

var header = []interface{}{"Meeting ID", "Created At", "Summary", "Action Items", "Transcript"}

var _ services.MeetingExporter = XLSXExporter{}

// XLSXExporter renders meetings as an Excel workbook
type XLSXExporter struct{}

// ContentType implements services.MeetingExporter
func (XLSXExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// FileExtension implements services.MeetingExporter
func (XLSXExporter) FileExtension() string {
	return ".xlsx"
}

// Export implements services.MeetingExporter
func (XLSXExporter) Export(w io.Writer, meetings []*entities.Meeting) error {
	return WriteMeetingsXLSX(w, meetings)
}

// WriteMeetingsXLSX writes one row per meeting, in the given order, below
// a bold header row. Action items are joined one per line.
func WriteMeetingsXLSX(w io.Writer, meetings []*entities.Meeting) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", "E1", bold); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	for i, m := range meetings {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			m.ID.String(),
			m.CreatedAt.UTC().Format(time.RFC3339),
			m.Summary,
			strings.Join(m.Items(), "\n"),
			m.Transcript,
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	_ = f.SetColWidth(sheetName, "A", "B", 38)
	_ = f.SetColWidth(sheetName, "C", "E", 60)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
