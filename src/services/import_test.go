package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// buildWorkbook produces an in-memory .xlsx with a header row and the given
// data rows on the default sheet.
func buildWorkbook(t *testing.T, rows [][]interface{}) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetList()[0]

	header := []interface{}{"object", "place", "instrument", "datetime", "observation", "prop1", "prop1value"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		t.Fatalf("write header: %v", err)
	}
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("write row %d: %v", i+2, err)
		}
	}
	return f
}

func TestImportFromExcel(t *testing.T) {
	database := newTestDB(t)
	_, propertyId, placeId, instrumentId, objectId := seedCatalog(t, database)
	service := NewObservationService(database)

	workbook := buildWorkbook(t, [][]interface{}{
		{objectId, placeId, instrumentId, "2025-01-01T20:30:00", "clear skies", propertyId, "3.4"},
		{objectId, placeId, instrumentId, "2025-01-02T21:00:00Z", "some haze"},
		{objectId, 999, instrumentId, "2025-01-03T21:00:00", "bad place reference"},
	})
	buf, err := workbook.WriteToBuffer()
	if err != nil {
		t.Fatalf("serialize workbook: %v", err)
	}

	result, err := service.ImportFromExcel(buf)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if result.Imported != 2 {
		t.Fatalf("imported %d rows, want 2 (errors: %v)", result.Imported, result.Errors)
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 row error, got %v", result.Errors)
	}

	rows, err := service.All()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 persisted observations, got %d", len(rows))
	}
	if rows[0].Prop1 == nil || *rows[0].Prop1 != propertyId {
		t.Fatalf("first row lost its property: %+v", rows[0].Prop1)
	}
}

func TestImportFromExcelRejectsGarbage(t *testing.T) {
	database := newTestDB(t)
	service := NewObservationService(database)

	_, err := service.ImportFromExcel(strings.NewReader("this is not a zip archive"))
	if err == nil {
		t.Fatal("expected an error for a non-xlsx payload")
	}
}
