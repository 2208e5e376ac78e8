package report

import (
	"bytes"
	"encoding/csv"
	"testing"

	"fuel-dispatch-monitor/internal/domain/dispatch"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func exportFixture() *Result {
	return &Result{
		Mode:    ModeDispatch,
		Columns: dispatchColumns,
		Rows: []Row{
			{
				Cells: []string{
					"PEA200", "3-11111 ET", "Horizon Petroleum", "Selam Freight",
					"2026-08-20 09:30:00", "2026-08-20 15:30:00", "6h",
				},
				Status: dispatch.StatusDelivered,
			},
		},
	}
}

func TestExportCSV(t *testing.T) {
	buf, err := ExportCSV(exportFixture())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, dispatchColumns, records[0])
	require.Equal(t, "PEA200", records[1][0])
	require.Equal(t, "Delivered", records[1][len(records[1])-1])
}

func TestExportXLSX(t *testing.T) {
	buf, err := ExportXLSX(exportFixture())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Report")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, dispatchColumns, rows[0])
	require.Equal(t, "PEA200", rows[1][0])
	require.Equal(t, "Delivered", rows[1][len(rows[1])-1])
}
