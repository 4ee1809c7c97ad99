package importpkg

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/GitNimay/lumino-crm-vc/pkg/leads"
	"github.com/GitNimay/lumino-crm-vc/pkg/lists"
	"github.com/GitNimay/lumino-crm-vc/pkg/models"
)

// FieldIgnore marks a CSV column that should not be imported.
const FieldIgnore = "ignore"

// previewRows caps the sample returned by Preview.
const previewRows = 3

// autoMapRules is evaluated in order; the first rule whose substring
// matches the lowercased header wins.
var autoMapRules = []struct {
	substrings []string
	field      string
}{
	{[]string{"name"}, "name"},
	{[]string{"email"}, "email"},
	{[]string{"company", "organization"}, "company"},
	{[]string{"value", "amount", "revenue"}, "value"},
	{[]string{"phone"}, "phone"},
	{[]string{"tag"}, "tags"},
}

// Service turns uploaded CSV files into lead records.
type Service struct {
	leads *leads.Service
	lists *lists.Service
}

func NewService(leadService *leads.Service, listService *lists.Service) *Service {
	return &Service{leads: leadService, lists: listService}
}

// Preview parses the file's headers and a handful of sample rows and
// suggests a column mapping for the wizard.
func (s *Service) Preview(r io.Reader) (*models.ImportPreviewResponse, error) {
	csvReader := csv.NewReader(r)
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1

	headers, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	rows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}

	preview := make([]map[string]string, 0, previewRows)
	for _, row := range rows {
		if len(preview) == previewRows {
			break
		}
		preview = append(preview, rowToMap(headers, row))
	}

	return &models.ImportPreviewResponse{
		Headers:  headers,
		Preview:  preview,
		Mappings: AutoMapHeaders(headers),
	}, nil
}

// AutoMapHeaders suggests a lead field for each CSV header by
// substring match. Unrecognized headers map to "ignore".
func AutoMapHeaders(headers []string) map[string]string {
	mappings := make(map[string]string, len(headers))
	for _, header := range headers {
		mappings[header] = matchField(header)
	}
	return mappings
}

func matchField(header string) string {
	lower := strings.ToLower(header)
	for _, rule := range autoMapRules {
		for _, sub := range rule.substrings {
			if strings.Contains(lower, sub) {
				return rule.field
			}
		}
	}
	return FieldIgnore
}

// Import applies the committed mapping to every data row and creates
// one lead per row that has a non-empty mapped name. The whole file is
// parsed up front; a parse error anywhere aborts before any lead is
// created. Rows without a name are skipped without counting as
// failures. When targetListID is set, created leads are added to that
// list afterwards.
func (s *Service) Import(ctx context.Context, ownerID string, r io.Reader, mappings map[string]string, targetListID string) (*models.ImportResultResponse, error) {
	csvReader := csv.NewReader(r)
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1

	headers, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	rows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}

	result := &models.ImportResultResponse{}
	createdIDs := []string{}

	for _, row := range rows {
		req, ok := mapRow(headers, row, mappings)
		if !ok {
			continue
		}

		created, err := s.leads.Create(ctx, ownerID, req)
		if err != nil {
			log.Printf("⚠️ Import row failed: %v", err)
			result.Failed++
			continue
		}
		createdIDs = append(createdIDs, created.ID)
		result.Success++
	}

	if targetListID != "" && len(createdIDs) > 0 {
		if _, err := s.lists.AddLeads(ctx, ownerID, targetListID, createdIDs); err != nil {
			return result, err
		}
	}

	log.Printf("✅ Import complete: %d created, %d failed", result.Success, result.Failed)
	return result, nil
}

// mapRow builds a creation request from one data row. Columns mapped
// to the same field overwrite left to right. Returns false when the
// mapped name is empty.
func mapRow(headers, row []string, mappings map[string]string) (models.LeadCreateRequest, bool) {
	fields := make(map[string]string)
	for i, header := range headers {
		if i >= len(row) {
			break
		}
		field, ok := mappings[header]
		if !ok || field == FieldIgnore || field == "" {
			continue
		}
		fields[field] = strings.TrimSpace(row[i])
	}

	if fields["name"] == "" {
		return models.LeadCreateRequest{}, false
	}

	req := models.LeadCreateRequest{
		Name:    fields["name"],
		Company: fields["company"],
		Email:   fields["email"],
		Phone:   fields["phone"],
		Value:   fields["value"],
	}
	if raw := fields["tags"]; raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if t := strings.TrimSpace(tag); t != "" {
				req.Tags = append(req.Tags, t)
			}
		}
	}
	return req, true
}

func rowToMap(headers, row []string) map[string]string {
	m := make(map[string]string, len(headers))
	for i, header := range headers {
		if i < len(row) {
			m[header] = row[i]
		} else {
			m[header] = ""
		}
	}
	return m
}
