package directory

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/meridianvc/dealscope/internal/model"
)

func TestExportXLSX(t *testing.T) {
	d := New([]model.Company{
		{ID: "c1", Name: "Stripe", URL: "https://stripe.com", Industry: "Fintech", Stage: "Public", Location: "San Francisco, CA", Description: "Payments.", Founded: 2010},
		{ID: "c2", Name: "Vercel", URL: "https://vercel.com", Industry: "DevTools", Stage: "Series D", Location: "San Francisco, CA", Description: "Frontend cloud.", Founded: 2015},
	})

	var buf bytes.Buffer
	require.NoError(t, d.ExportXLSX(&buf))

	f, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, f.Sheets, 1)

	sheet := f.Sheets[0]
	assert.Equal(t, "Companies", sheet.Name)
	require.Len(t, sheet.Rows, 3) // header + 2 companies

	assert.Equal(t, "ID", sheet.Rows[0].Cells[0].String())
	assert.Equal(t, "Founded", sheet.Rows[0].Cells[7].String())
	assert.Equal(t, "Stripe", sheet.Rows[1].Cells[1].String())
	assert.Equal(t, "2015", sheet.Rows[2].Cells[7].String())
}

func TestExportXLSX_FullDirectory(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Seeded().ExportXLSX(&buf))

	f, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, f.Sheets[0].Rows, 11) // header + 10 seed companies
}
