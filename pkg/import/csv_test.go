package importpkg

import (
	"context"
	"strings"
	"testing"

	"github.com/GitNimay/lumino-crm-vc/ent"
	"github.com/GitNimay/lumino-crm-vc/ent/enttest"
	"github.com/GitNimay/lumino-crm-vc/pkg/leads"
	"github.com/GitNimay/lumino-crm-vc/pkg/lists"
	"github.com/GitNimay/lumino-crm-vc/pkg/models"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTest(t *testing.T) (*Service, *ent.Client) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })
	leadService := leads.NewService(client, nil, nil)
	listService := lists.NewService(client, nil)
	return NewService(leadService, listService), client
}

func TestAutoMapHeaders(t *testing.T) {
	mappings := AutoMapHeaders([]string{
		"Full Name", "Email Address", "Organization", "Deal Value", "Annual Revenue", "Notes",
	})

	assert.Equal(t, "name", mappings["Full Name"])
	assert.Equal(t, "email", mappings["Email Address"])
	assert.Equal(t, "company", mappings["Organization"])
	assert.Equal(t, "value", mappings["Deal Value"])
	assert.Equal(t, "value", mappings["Annual Revenue"])
	assert.Equal(t, "ignore", mappings["Notes"])
}

func TestAutoMapFirstRuleWins(t *testing.T) {
	// "Company Name" contains both "name" and "company"; the name rule
	// is evaluated first.
	mappings := AutoMapHeaders([]string{"Company Name"})
	assert.Equal(t, "name", mappings["Company Name"])
}

func TestPreview(t *testing.T) {
	svc, _ := setupTest(t)

	file := strings.Join([]string{
		"Name,Email,Company",
		"Ada,ada@acme.io,Acme",
		"Grace,grace@initech.io,Initech",
	}, "\n")

	preview, err := svc.Preview(strings.NewReader(file))
	require.NoError(t, err)

	assert.Equal(t, []string{"Name", "Email", "Company"}, preview.Headers)
	require.Len(t, preview.Preview, 2)
	assert.Equal(t, "Ada", preview.Preview[0]["Name"])
	assert.Equal(t, "email", preview.Mappings["Email"])
}

func TestImportCreatesLeads(t *testing.T) {
	svc, client := setupTest(t)
	ctx := context.Background()

	file := strings.Join([]string{
		"Name,Company,Deal Value",
		"Ada,Acme,\"$1,000\"",
		"Grace,Initech,2500",
	}, "\n")

	result, err := svc.Import(ctx, "owner-1", strings.NewReader(file), map[string]string{
		"Name":       "name",
		"Company":    "company",
		"Deal Value": "value",
	}, "")
	require.NoError(t, err)

	assert.Equal(t, 2, result.Success)
	assert.Equal(t, 0, result.Failed)

	rows := client.Lead.Query().AllX(ctx)
	require.Len(t, rows, 2)
	byName := map[string]float64{}
	for _, l := range rows {
		byName[l.Name] = l.Value
	}
	assert.Equal(t, float64(1000), byName["Ada"])
	assert.Equal(t, float64(2500), byName["Grace"])
}

func TestImportAbortsOnParseError(t *testing.T) {
	svc, client := setupTest(t)
	ctx := context.Background()

	// The bare quote on the middle row is a parse error. The rows
	// around it are valid, but nothing may be created.
	file := strings.Join([]string{
		"Name,Company",
		"Ada,Acme",
		"Grace,\"Initech",
		"Barbara,Globex",
	}, "\n")

	_, err := svc.Import(ctx, "owner-1", strings.NewReader(file), map[string]string{
		"Name":    "name",
		"Company": "company",
	}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse CSV")
	assert.Equal(t, 0, client.Lead.Query().CountX(ctx))
}

func TestPreviewAbortsOnParseError(t *testing.T) {
	svc, _ := setupTest(t)

	file := strings.Join([]string{
		"Name,Company",
		"Ada,\"Acme",
	}, "\n")

	_, err := svc.Preview(strings.NewReader(file))
	require.Error(t, err)
}

func TestImportSkipsRowsWithoutName(t *testing.T) {
	svc, client := setupTest(t)
	ctx := context.Background()

	file := strings.Join([]string{
		"Name,Company",
		"Ada,Acme",
		",Ghost Corp",
		"Grace,Initech",
	}, "\n")

	result, err := svc.Import(ctx, "owner-1", strings.NewReader(file), map[string]string{
		"Name":    "name",
		"Company": "company",
	}, "")
	require.NoError(t, err)

	assert.Equal(t, 2, result.Success)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, 2, client.Lead.Query().CountX(ctx))
}

func TestImportIgnoredColumns(t *testing.T) {
	svc, client := setupTest(t)
	ctx := context.Background()

	file := strings.Join([]string{
		"Name,Internal Notes",
		"Ada,do not import",
	}, "\n")

	result, err := svc.Import(ctx, "owner-1", strings.NewReader(file), map[string]string{
		"Name":           "name",
		"Internal Notes": FieldIgnore,
	}, "")
	require.NoError(t, err)

	assert.Equal(t, 1, result.Success)
	lead := client.Lead.Query().OnlyX(ctx)
	assert.Equal(t, "Ada", lead.Name)
	assert.Equal(t, "Unknown Company", lead.Company)
}

func TestImportLastMappedColumnWins(t *testing.T) {
	svc, client := setupTest(t)
	ctx := context.Background()

	file := strings.Join([]string{
		"First Name,Last Name",
		"Ada,Lovelace",
	}, "\n")

	_, err := svc.Import(ctx, "owner-1", strings.NewReader(file), map[string]string{
		"First Name": "name",
		"Last Name":  "name",
	}, "")
	require.NoError(t, err)

	lead := client.Lead.Query().OnlyX(ctx)
	assert.Equal(t, "Lovelace", lead.Name)
}

func TestImportIntoTargetList(t *testing.T) {
	svc, client := setupTest(t)
	ctx := context.Background()

	listService := lists.NewService(client, nil)
	target, err := listService.Create(ctx, "owner-1", models.ListCreateRequest{Name: "Imported"})
	require.NoError(t, err)

	file := strings.Join([]string{
		"Name",
		"Ada",
		"Grace",
	}, "\n")

	result, err := svc.Import(ctx, "owner-1", strings.NewReader(file), map[string]string{
		"Name": "name",
	}, target.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Success)

	refreshed, err := listService.List(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, refreshed, 1)
	assert.Equal(t, 2, refreshed[0].LeadCount)
}
