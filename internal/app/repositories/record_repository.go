package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/passboard/internal/app/models"
	"github.com/yigit/passboard/internal/pkg/apperrors"
	"github.com/yigit/passboard/internal/pkg/dberrors"
)

// recordColumns are the teacher_performance columns in Record field order
var recordColumns = []string{
	"teacher_name",
	"section",
	"subject_name",
	"academic_year",
	"btech_year",
	"semester",
	"pass_percentage",
}

// RecordRepository handles database operations for performance records
type RecordRepository struct {
	db *pgxpool.Pool
}

// NewRecordRepository creates a new record repository
func NewRecordRepository(db *pgxpool.Pool) *RecordRepository {
	return &RecordRepository{
		db: db,
	}
}

// ListAll returns every record in insertion order
func (r *RecordRepository) ListAll(ctx context.Context) ([]models.Record, error) {
	query := `
		SELECT teacher_name, section, subject_name, academic_year,
		       btech_year, semester, pass_percentage
		FROM teacher_performance
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, queryError(err)
	}
	defer rows.Close()

	records := make([]models.Record, 0)
	for rows.Next() {
		var (
			teacherName, section, subjectName, academicYear *string
			btechYear, semester, passPercentage             *string
		)
		if err := rows.Scan(
			&teacherName,
			&section,
			&subjectName,
			&academicYear,
			&btechYear,
			&semester,
			&passPercentage,
		); err != nil {
			return nil, fmt.Errorf("error scanning record: %w", err)
		}

		records = append(records, models.Record{
			TeacherName:    nullableField(teacherName),
			Section:        deref(section),
			SubjectName:    nullableField(subjectName),
			AcademicYear:   deref(academicYear),
			BTechYear:      nullableField(btechYear),
			Semester:       nullableField(semester),
			PassPercentage: nullableField(passPercentage),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, queryError(err)
	}

	return records, nil
}

// Count returns the number of stored records
func (r *RecordRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM teacher_performance`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting records: %w", err)
	}
	return count, nil
}

// InsertAll stores records in order using COPY and returns the number written
func (r *RecordRepository) InsertAll(ctx context.Context, records []models.Record) (int64, error) {
	n, err := r.db.CopyFrom(
		ctx,
		pgx.Identifier{"teacher_performance"},
		recordColumns,
		pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
			rec := records[i]
			return []any{
				fieldValue(rec.TeacherName),
				rec.Section,
				fieldValue(rec.SubjectName),
				rec.AcademicYear,
				fieldValue(rec.BTechYear),
				fieldValue(rec.Semester),
				fieldValue(rec.PassPercentage),
			}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("error copying records: %w", err)
	}
	return n, nil
}

func queryError(err error) error {
	if dberrors.IsUndefinedTable(err) {
		return fmt.Errorf("%w: teacher_performance table missing, run migrations", apperrors.ErrDatasetEmpty)
	}
	return fmt.Errorf("error querying records: %w", err)
}

func nullableField(s *string) models.Field {
	if s == nil {
		return models.Field{}
	}
	return models.Text(*s)
}

func fieldValue(f models.Field) *string {
	if !f.Present {
		return nil
	}
	v := f.Value
	return &v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
