package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/seedhouse/farmops-api/internal/domain/entity"
	"github.com/seedhouse/farmops-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo ReportRepository on PostgreSQL. Line-item lists are stored as
// JSONB blobs; reports are write-once so there is no update statement.
type ReportRepo struct {
	q Querier
}

// NewReportRepository builds the adapter. Pass pool or tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// Create persists one denormalized report row.
func (r *ReportRepo) Create(report *entity.Report) error {
	sourceBins, err := json.Marshal(report.SourceBins)
	if err != nil {
		return fmt.Errorf("encode source bins: %w", err)
	}
	inbound, err := json.Marshal(report.Inbound)
	if err != nil {
		return fmt.Errorf("encode inbound lines: %w", err)
	}
	outputs, err := json.Marshal(report.Outputs)
	if err != nil {
		return fmt.Errorf("encode output lines: %w", err)
	}
	query := `
		INSERT INTO job_reports (
			id, process_id, process_type, job_date, employee, supplier,
			lot_numbers, products, notes, input_total, output_total, balance,
			source_bins, inbound, outputs, created_at, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err = r.q.Exec(context.Background(), query,
		report.ID, report.ProcessID, report.ProcessType, report.JobDate,
		report.Employee, report.Supplier, report.LotNumbers, report.Products,
		report.Notes, report.InputTotal, report.OutputTotal, report.Balance,
		sourceBins, inbound, outputs, report.CreatedAt, report.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

// GetByID fetches one report with its full line-item detail.
func (r *ReportRepo) GetByID(id string) (*entity.Report, error) {
	query := `
		SELECT id, process_id, process_type, job_date, employee, supplier,
		       lot_numbers, products, notes, input_total, output_total, balance,
		       source_bins, inbound, outputs, created_at, created_by
		FROM job_reports WHERE id = $1`
	var rep entity.Report
	var sourceBins, inbound, outputs []byte
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rep.ID, &rep.ProcessID, &rep.ProcessType, &rep.JobDate, &rep.Employee,
		&rep.Supplier, &rep.LotNumbers, &rep.Products, &rep.Notes,
		&rep.InputTotal, &rep.OutputTotal, &rep.Balance,
		&sourceBins, &inbound, &outputs, &rep.CreatedAt, &rep.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get report: %w", err)
	}
	if err := json.Unmarshal(sourceBins, &rep.SourceBins); err != nil {
		return nil, fmt.Errorf("decode source bins: %w", err)
	}
	if err := json.Unmarshal(inbound, &rep.Inbound); err != nil {
		return nil, fmt.Errorf("decode inbound lines: %w", err)
	}
	if err := json.Unmarshal(outputs, &rep.Outputs); err != nil {
		return nil, fmt.Errorf("decode output lines: %w", err)
	}
	return &rep, nil
}

// List returns header rows matching the filter (no line-item blobs) plus the
// total match count.
func (r *ReportRepo) List(filter repository.ReportFilter) ([]*entity.Report, int, error) {
	where := ` WHERE 1=1`
	args := []any{}
	n := 0
	if filter.ProcessType != "" {
		n++
		where += fmt.Sprintf(" AND process_type = $%d", n)
		args = append(args, filter.ProcessType)
	}
	if filter.FromDate != "" {
		n++
		where += fmt.Sprintf(" AND job_date >= $%d", n)
		args = append(args, filter.FromDate)
	}
	if filter.ToDate != "" {
		n++
		where += fmt.Sprintf(" AND job_date <= $%d", n)
		args = append(args, filter.ToDate)
	}

	var total int
	if err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM job_reports`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count reports: %w", err)
	}

	query := `
		SELECT id, process_id, process_type, job_date, employee, supplier,
		       lot_numbers, products, notes, input_total, output_total, balance,
		       created_at, created_by
		FROM job_reports` + where +
		fmt.Sprintf(" ORDER BY job_date DESC, created_at DESC LIMIT $%d OFFSET $%d", n+1, n+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()
	var list []*entity.Report
	for rows.Next() {
		var rep entity.Report
		if err := rows.Scan(&rep.ID, &rep.ProcessID, &rep.ProcessType, &rep.JobDate,
			&rep.Employee, &rep.Supplier, &rep.LotNumbers, &rep.Products, &rep.Notes,
			&rep.InputTotal, &rep.OutputTotal, &rep.Balance,
			&rep.CreatedAt, &rep.CreatedBy); err != nil {
			return nil, 0, fmt.Errorf("scan report: %w", err)
		}
		list = append(list, &rep)
	}
	return list, total, rows.Err()
}

// Delete removes one report.
func (r *ReportRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM job_reports WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	return nil
}

// DeleteByIDs removes a selection of reports in one statement.
func (r *ReportRepo) DeleteByIDs(ids []string) (int64, error) {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM job_reports WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, fmt.Errorf("bulk delete reports: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// DeleteYearRange removes every report whose job date falls within the
// calendar-year range, as a single statement. Dates are stored as
// YYYY-MM-DD strings, so the range compares lexicographically.
func (r *ReportRepo) DeleteYearRange(fromYear, toYear int) (int64, error) {
	from := fmt.Sprintf("%04d-01-01", fromYear)
	to := fmt.Sprintf("%04d-12-31", toYear)
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM job_reports WHERE job_date >= $1 AND job_date <= $2`, from, to)
	if err != nil {
		return 0, fmt.Errorf("year-range delete reports: %w", err)
	}
	return cmd.RowsAffected(), nil
}
