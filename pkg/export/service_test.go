package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/GitNimay/lumino-crm-vc/ent"
	"github.com/GitNimay/lumino-crm-vc/ent/enttest"
	importpkg "github.com/GitNimay/lumino-crm-vc/pkg/import"
	"github.com/GitNimay/lumino-crm-vc/pkg/leads"
	"github.com/GitNimay/lumino-crm-vc/pkg/lists"
	"github.com/GitNimay/lumino-crm-vc/pkg/models"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type fakeNotifier struct {
	calls int
	to    string
}

func (f *fakeNotifier) ExportReady(toEmail, filename string, leadCount int) error {
	f.calls++
	f.to = toEmail
	return nil
}

func setupTest(t *testing.T) (*Service, *leads.Service, *ent.Client) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })
	leadService := leads.NewService(client, nil, nil)
	return NewService(leadService, nil, nil), leadService, client
}

func TestExportCSV(t *testing.T) {
	svc, leadService, _ := setupTest(t)
	ctx := context.Background()

	_, err := leadService.Create(ctx, "owner-1", models.LeadCreateRequest{
		Name:    "Ada",
		Company: "Acme",
		Email:   "ada@acme.io",
		Value:   float64(1500),
		Tags:    []string{"vip", "inbound"},
	})
	require.NoError(t, err)

	file, resp, err := svc.Export(ctx, "owner-1", "", models.ExportRequest{Format: "csv"})
	require.NoError(t, err)

	wantName := fmt.Sprintf("leads_export_%s.csv", time.Now().Format("2006-01-02"))
	assert.Equal(t, wantName, resp.Filename)
	assert.Equal(t, 1, resp.LeadCount)

	records, err := csv.NewReader(bytes.NewReader(file.Data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, exportColumns, records[0])
	row := records[1]
	assert.Equal(t, "Ada", row[1])
	assert.Equal(t, "Acme", row[2])
	assert.Equal(t, "ada@acme.io", row[3])
	assert.Equal(t, "1500", row[4])
	assert.Equal(t, "vip,inbound", row[7])
}

func TestExportSelectedLeadsOnly(t *testing.T) {
	svc, leadService, _ := setupTest(t)
	ctx := context.Background()

	keep, err := leadService.Create(ctx, "owner-1", models.LeadCreateRequest{Name: "Keep", Company: "A"})
	require.NoError(t, err)
	_, err = leadService.Create(ctx, "owner-1", models.LeadCreateRequest{Name: "Skip", Company: "B"})
	require.NoError(t, err)

	_, resp, err := svc.Export(ctx, "owner-1", "", models.ExportRequest{
		Format:  "csv",
		LeadIDs: []string{keep.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.LeadCount)
}

func TestExportXLSX(t *testing.T) {
	svc, leadService, _ := setupTest(t)
	ctx := context.Background()

	_, err := leadService.Create(ctx, "owner-1", models.LeadCreateRequest{Name: "Ada", Company: "Acme"})
	require.NoError(t, err)

	file, resp, err := svc.Export(ctx, "owner-1", "", models.ExportRequest{Format: "xlsx"})
	require.NoError(t, err)
	assert.Equal(t, "xlsx", resp.Format)
	assert.True(t, strings.HasSuffix(resp.Filename, ".xlsx"))

	wb, err := excelize.OpenReader(bytes.NewReader(file.Data))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows(wb.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Ada", rows[1][1])
}

func TestExportNotifiesByEmail(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })
	leadService := leads.NewService(client, nil, nil)
	notifier := &fakeNotifier{}
	svc := NewService(leadService, nil, notifier)

	_, _, err := svc.Export(context.Background(), "owner-1", "ada@acme.io", models.ExportRequest{Format: "csv"})
	require.NoError(t, err)
	assert.Equal(t, 1, notifier.calls)
	assert.Equal(t, "ada@acme.io", notifier.to)
}

func TestExportImportRoundTrip(t *testing.T) {
	svc, leadService, client := setupTest(t)
	ctx := context.Background()

	_, err := leadService.Create(ctx, "owner-1", models.LeadCreateRequest{
		Name:    "Ada",
		Company: "Acme",
		Email:   "ada@acme.io",
		Value:   float64(1500.5),
		Tags:    []string{"vip"},
	})
	require.NoError(t, err)

	file, _, err := svc.Export(ctx, "owner-1", "", models.ExportRequest{Format: "csv"})
	require.NoError(t, err)

	importer := importpkg.NewService(leadService, lists.NewService(client, nil))
	result, err := importer.Import(ctx, "owner-2", bytes.NewReader(file.Data), map[string]string{
		"Name":    "name",
		"Company": "company",
		"Email":   "email",
		"Value":   "value",
		"Tags":    "tags",
	}, "")
	require.NoError(t, err)
	require.Equal(t, 1, result.Success)

	reimported, err := leadService.List(ctx, "owner-2", "")
	require.NoError(t, err)
	require.Len(t, reimported, 1)
	assert.Equal(t, "Ada", reimported[0].Name)
	assert.Equal(t, "Acme", reimported[0].Company)
	assert.Equal(t, "ada@acme.io", reimported[0].Email)
	assert.Equal(t, 1500.5, reimported[0].Value)
	assert.Equal(t, []string{"vip"}, reimported[0].Tags)
}
