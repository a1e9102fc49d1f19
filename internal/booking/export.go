package booking

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
)

// Exporter writes a hotel's bookings for a date range as an Excel workbook.
type Exporter struct {
	repo Repository
}

func NewExporter(repo Repository) *Exporter {
	return &Exporter{repo: repo}
}

// Export streams an xlsx workbook of all bookings on the hotel intersecting
// [from, to) to w.
func (e *Exporter) Export(ctx context.Context, w io.Writer, hotelID string, from, to time.Time) error {
	if !to.After(from) {
		return ErrInvalidInterval
	}

	bookings, err := e.repo.Calendar(ctx, hotelID, from, to)
	if err != nil {
		return fmt.Errorf("load bookings for export failed: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Bookings"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("create sheet failed: %w", err)
	}
	f.SetActiveSheet(index)

	_ = f.SetCellValue(sheetName, "A1", fmt.Sprintf("Bookings %s to %s",
		from.Format("2006-01-02"), to.Format("2006-01-02")))
	_ = f.MergeCell(sheetName, "A1", "K1")

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	_ = f.SetCellStyle(sheetName, "A1", "A1", titleStyle)

	headers := []string{
		"Reference", "Room", "Room Type", "Guest", "Email",
		"Check-in", "Check-out", "Nights", "Guests", "Total", "Status",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		_ = f.SetCellValue(sheetName, cell, h)
	}
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	_ = f.SetCellStyle(sheetName, "A2", "K2", headerStyle)

	for i, b := range bookings {
		row := i + 3
		values := []any{
			b.Reference, b.RoomNumber, b.RoomTypeName, b.GuestName, b.GuestEmail,
			b.CheckIn.Format("2006-01-02"), b.CheckOut.Format("2006-01-02"),
			b.Stay().Nights(), b.Adults + b.Children, b.TotalAmount, string(b.Status),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(sheetName, cell, v)
		}
	}

	_ = f.SetColWidth(sheetName, "A", "A", 14)
	_ = f.SetColWidth(sheetName, "B", "E", 20)
	_ = f.SetColWidth(sheetName, "F", "K", 12)

	_ = f.DeleteSheet("Sheet1")

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook failed: %w", err)
	}
	return nil
}
