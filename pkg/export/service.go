package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/GitNimay/lumino-crm-vc/pkg/domain"
	"github.com/GitNimay/lumino-crm-vc/pkg/leads"
	"github.com/GitNimay/lumino-crm-vc/pkg/models"
	"github.com/xuri/excelize/v2"
)

var exportColumns = []string{"ID", "Name", "Company", "Email", "Value", "Stage", "Status", "Tags", "Created"}

// File is a generated export ready to be served or uploaded.
type File struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Notifier is told when an export finishes, typically to email the
// requesting user.
type Notifier interface {
	ExportReady(toEmail, filename string, leadCount int) error
}

// Service generates CSV and XLSX exports of a user's leads.
type Service struct {
	leads    *leads.Service
	uploader *Uploader
	notifier Notifier
}

// NewService creates the export service. uploader and notifier may be
// nil, disabling S3 upload and email notification respectively.
func NewService(leadService *leads.Service, uploader *Uploader, notifier Notifier) *Service {
	return &Service{leads: leadService, uploader: uploader, notifier: notifier}
}

// Export builds a file for the selected leads, or all of the owner's
// leads when no selection is given.
func (s *Service) Export(ctx context.Context, ownerID, ownerEmail string, req models.ExportRequest) (*File, *models.ExportResponse, error) {
	rows, err := s.leads.List(ctx, ownerID, "")
	if err != nil {
		return nil, nil, err
	}
	if len(req.LeadIDs) > 0 {
		selected := make(map[string]bool, len(req.LeadIDs))
		for _, id := range req.LeadIDs {
			selected[id] = true
		}
		filtered := rows[:0]
		for _, l := range rows {
			if selected[l.ID] {
				filtered = append(filtered, l)
			}
		}
		rows = filtered
	}

	format := req.Format
	if format == "" {
		format = "csv"
	}

	var file *File
	switch format {
	case "csv":
		file, err = buildCSV(rows)
	case "xlsx":
		file, err = buildXLSX(rows)
	default:
		return nil, nil, domain.NewValidationError("unsupported export format", nil)
	}
	if err != nil {
		return nil, nil, domain.NewInternalError("failed to generate export", err)
	}

	resp := &models.ExportResponse{
		Filename:  file.Filename,
		Format:    format,
		LeadCount: len(rows),
	}

	if s.uploader != nil {
		url, err := s.uploader.Upload(ctx, file.Filename, file.ContentType, file.Data)
		if err != nil {
			log.Printf("⚠️ Failed to upload export to S3: %v", err)
		} else {
			resp.FileURL = url
		}
	}

	if s.notifier != nil && ownerEmail != "" {
		if err := s.notifier.ExportReady(ownerEmail, file.Filename, len(rows)); err != nil {
			log.Printf("⚠️ Failed to send export notification: %v", err)
		}
	}

	log.Printf("✅ Exported %d leads to %s", len(rows), file.Filename)
	return file, resp, nil
}

func buildCSV(rows []models.LeadResponse) (*File, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportColumns); err != nil {
		return nil, err
	}
	for _, l := range rows {
		if err := w.Write(leadRecord(l)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return &File{
		Filename:    exportFilename("csv"),
		ContentType: "text/csv",
		Data:        buf.Bytes(),
	}, nil
}

func buildXLSX(rows []models.LeadResponse) (*File, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := make([]interface{}, len(exportColumns))
	for i, c := range exportColumns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}

	for i, l := range rows {
		record := leadRecord(l)
		cells := make([]interface{}, len(record))
		for j, v := range record {
			cells[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return &File{
		Filename:    exportFilename("xlsx"),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        buf.Bytes(),
	}, nil
}

func leadRecord(l models.LeadResponse) []string {
	return []string{
		l.ID,
		l.Name,
		l.Company,
		l.Email,
		strconv.FormatFloat(l.Value, 'f', -1, 64),
		l.Stage,
		l.Status,
		strings.Join(l.Tags, ","),
		l.CreatedAt,
	}
}

func exportFilename(ext string) string {
	return fmt.Sprintf("leads_export_%s.%s", time.Now().Format("2006-01-02"), ext)
}
