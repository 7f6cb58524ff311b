package report_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seedhouse/farmops-api/internal/application/report"
	"github.com/seedhouse/farmops-api/internal/domain"
	"github.com/seedhouse/farmops-api/internal/domain/entity"
	"github.com/seedhouse/farmops-api/internal/domain/repository"
)

type stubRepo struct {
	byID       map[string]*entity.Report
	lastFilter repository.ReportFilter
	deletedIDs []string
	yearRange  [2]int
}

func (r *stubRepo) Create(*entity.Report) error { return nil }

func (r *stubRepo) GetByID(id string) (*entity.Report, error) {
	return r.byID[id], nil
}

func (r *stubRepo) List(filter repository.ReportFilter) ([]*entity.Report, int, error) {
	r.lastFilter = filter
	var out []*entity.Report
	for _, rep := range r.byID {
		out = append(out, rep)
	}
	return out, len(out), nil
}

func (r *stubRepo) Delete(id string) error {
	r.deletedIDs = append(r.deletedIDs, id)
	return nil
}

func (r *stubRepo) DeleteByIDs(ids []string) (int64, error) {
	r.deletedIDs = append(r.deletedIDs, ids...)
	return int64(len(ids)), nil
}

func (r *stubRepo) DeleteYearRange(fromYear, toYear int) (int64, error) {
	r.yearRange = [2]int{fromYear, toYear}
	return 7, nil
}

type stubPDF struct{ called string }

func (p *stubPDF) GenerateReportPDF(_ context.Context, r *entity.Report) ([]byte, error) {
	p.called = r.ID
	return []byte("%PDF"), nil
}

type stubExcel struct{ count int }

func (e *stubExcel) ExportReports(reports []*entity.Report) ([]byte, error) {
	e.count = len(reports)
	return []byte("PK"), nil
}

func TestGet_NotFound(t *testing.T) {
	uc := report.NewUseCase(&stubRepo{byID: map[string]*entity.Report{}}, &stubPDF{}, &stubExcel{})

	_, err := uc.Get("missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteBulk_EmptySelection(t *testing.T) {
	uc := report.NewUseCase(&stubRepo{}, &stubPDF{}, &stubExcel{})

	_, err := uc.DeleteBulk(nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDeleteYearRange_Validation(t *testing.T) {
	repo := &stubRepo{}
	uc := report.NewUseCase(repo, &stubPDF{}, &stubExcel{})

	_, err := uc.DeleteYearRange(1990, 2020)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.DeleteYearRange(2024, 2020)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	n, err := uc.DeleteYearRange(2020, 2024)
	require.NoError(t, err)
	assert.EqualValues(t, 7, n)
	assert.Equal(t, [2]int{2020, 2024}, repo.yearRange)
}

func TestExportPDF(t *testing.T) {
	pdf := &stubPDF{}
	repo := &stubRepo{byID: map[string]*entity.Report{"r1": {ID: "r1", ProcessID: "QS1"}}}
	uc := report.NewUseCase(repo, pdf, &stubExcel{})

	data, err := uc.ExportPDF(context.Background(), "r1")
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, "r1", pdf.called)

	_, err = uc.ExportPDF(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExportXLSX_DefaultsLimit(t *testing.T) {
	excel := &stubExcel{}
	repo := &stubRepo{byID: map[string]*entity.Report{"r1": {ID: "r1"}, "r2": {ID: "r2"}}}
	uc := report.NewUseCase(repo, &stubPDF{}, excel)

	data, err := uc.ExportXLSX(repository.ReportFilter{ProcessType: "qsage"})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, 2, excel.count)
	assert.Equal(t, 1000, repo.lastFilter.Limit, "export is not page-bounded")
	assert.Equal(t, "qsage", repo.lastFilter.ProcessType)
}
