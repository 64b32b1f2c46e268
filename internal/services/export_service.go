package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/formcraft/formbuilder-api/internal/models"
	"github.com/formcraft/formbuilder-api/internal/repositories"
	"github.com/xuri/excelize/v2"
)

const (
	exportSheetName   = "Responses"
	exportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type exportService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewExportService(repo repositories.Repository, logger *slog.Logger) ExportService {
	return &exportService{
		repo:   repo,
		logger: logger,
	}
}

// ExportResponses renders every response of a form as one spreadsheet row,
// with one column per question in form order.
func (s *exportService) ExportResponses(ctx context.Context, formID string) (*ExportFile, error) {
	form, err := s.repo.Form().GetByID(ctx, formID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, fmt.Errorf("failed to get form: %w", err)
	}

	responses, err := s.repo.Response().ListByForm(ctx, formID)
	if err != nil {
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheetName); err != nil {
		return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
	}

	headers := []interface{}{"Response ID", "Submitted At", "Name", "Email"}
	for _, q := range form.Questions {
		headers = append(headers, q.Title)
	}
	if err := f.SetSheetRow(exportSheetName, "A1", &headers); err != nil {
		return nil, fmt.Errorf("failed to write Excel headers: %w", err)
	}

	for i, response := range responses {
		row := exportRow(form, response)
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(exportSheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write Excel row: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}

	s.logger.Info("Exported responses", "form_id", formID, "rows", len(responses))

	return &ExportFile{
		Filename:    fmt.Sprintf("responses-%s.xlsx", formID),
		ContentType: exportContentType,
		Data:        buf.Bytes(),
	}, nil
}

func exportRow(form *models.Form, response *models.Response) []interface{} {
	var name, email string
	if response.UserInfo != nil {
		name = response.UserInfo.Name
		email = response.UserInfo.Email
	}

	row := []interface{}{
		response.ID,
		response.SubmittedAt.UTC().Format(time.RFC3339),
		name,
		email,
	}

	answers := make(map[string]models.Answer, len(response.Answers))
	for _, a := range response.Answers {
		answers[a.QuestionID] = a
	}
	for _, q := range form.Questions {
		a, ok := answers[q.ID]
		if !ok {
			row = append(row, "")
			continue
		}
		row = append(row, renderAnswer(q, a))
	}

	return row
}

// renderAnswer flattens one answer into a single cell
func renderAnswer(q models.Question, a models.Answer) string {
	switch a.QuestionType {
	case models.QuestionCategorize:
		if a.Categorize == nil {
			return ""
		}
		parts := make([]string, 0, len(a.Categorize.Categorizations))
		for _, c := range a.Categorize.Categorizations {
			parts = append(parts, fmt.Sprintf("%s: %s", c.Category, strings.Join(c.Items, ", ")))
		}
		return strings.Join(parts, "; ")
	case models.QuestionCloze:
		if a.Cloze == nil {
			return ""
		}
		parts := make([]string, 0, len(a.Cloze.BlankAnswers))
		for _, b := range a.Cloze.BlankAnswers {
			parts = append(parts, fmt.Sprintf("%s=%s", b.BlankID, b.Answer))
		}
		return strings.Join(parts, "; ")
	case models.QuestionComprehension:
		if a.Comprehension == nil {
			return ""
		}
		var options []string
		if q.Comprehension != nil {
			options = q.Comprehension.Options
		}
		parts := make([]string, 0, len(a.Comprehension.MCQAnswers))
		for _, m := range a.Comprehension.MCQAnswers {
			choice := strconv.Itoa(m.SelectedOption)
			if m.SelectedOption >= 0 && m.SelectedOption < len(options) {
				choice = options[m.SelectedOption]
			}
			parts = append(parts, fmt.Sprintf("Q%d: %s", m.QuestionIndex+1, choice))
		}
		return strings.Join(parts, "; ")
	default:
		return ""
	}
}
