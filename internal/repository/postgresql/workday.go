package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/andresaoe/mi-jornada-calculada/internal/domain/workday"
	"github.com/andresaoe/mi-jornada-calculada/internal/pkg/database"
)

type workDayRepositoryImpl struct {
	db *database.DB
}

func NewWorkDayRepository(db *database.DB) workday.Repository {
	return &workDayRepositoryImpl{db: db}
}

const workDayColumns = `id, user_id, date, shift_type, regular_hours, extra_hours, is_holiday, notes, created_at, updated_at`

func scanWorkDay(row pgx.Row) (workday.WorkDay, error) {
	var wd workday.WorkDay
	err := row.Scan(
		&wd.ID,
		&wd.UserID,
		&wd.Date,
		&wd.ShiftType,
		&wd.RegularHours,
		&wd.ExtraHours,
		&wd.IsHoliday,
		&wd.Notes,
		&wd.CreatedAt,
		&wd.UpdatedAt,
	)
	return wd, err
}

func collectWorkDays(rows pgx.Rows) ([]workday.WorkDay, error) {
	defer rows.Close()

	var days []workday.WorkDay
	for rows.Next() {
		wd, err := scanWorkDay(rows)
		if err != nil {
			return nil, err
		}
		days = append(days, wd)
	}
	return days, rows.Err()
}

func (r *workDayRepositoryImpl) Create(ctx context.Context, wd workday.WorkDay) (workday.WorkDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_days (id, user_id, date, shift_type, regular_hours, extra_hours, is_holiday, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + workDayColumns

	created, err := scanWorkDay(q.QueryRow(ctx, query,
		wd.ID,
		wd.UserID,
		wd.Date,
		wd.ShiftType,
		wd.RegularHours,
		wd.ExtraHours,
		wd.IsHoliday,
		wd.Notes,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return workday.WorkDay{}, workday.ErrWorkDayExists
		}
		return workday.WorkDay{}, err
	}
	return created, nil
}

// CreateBatch inserts every day in one transaction so a duplicate date
// in the range rolls back the whole bulk insert.
func (r *workDayRepositoryImpl) CreateBatch(ctx context.Context, days []workday.WorkDay) ([]workday.WorkDay, error) {
	created := make([]workday.WorkDay, 0, len(days))

	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		for _, wd := range days {
			c, err := r.Create(txCtx, wd)
			if err != nil {
				return err
			}
			created = append(created, c)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *workDayRepositoryImpl) GetByID(ctx context.Context, id string, userID string) (workday.WorkDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workDayColumns + ` FROM work_days WHERE id = $1 AND user_id = $2`

	wd, err := scanWorkDay(q.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return workday.WorkDay{}, workday.ErrWorkDayNotFound
		}
		return workday.WorkDay{}, err
	}
	return wd, nil
}

func (r *workDayRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]workday.WorkDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workDayColumns + ` FROM work_days WHERE user_id = $1 ORDER BY date ASC`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return collectWorkDays(rows)
}

func (r *workDayRepositoryImpl) ListByUserMonth(ctx context.Context, userID string, year int, month time.Month) ([]workday.WorkDay, error) {
	q := GetQuerier(ctx, r.db)

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)

	query := `
		SELECT ` + workDayColumns + `
		FROM work_days
		WHERE user_id = $1 AND date >= $2 AND date < $3
		ORDER BY date ASC`

	rows, err := q.Query(ctx, query, userID, monthStart, nextMonth)
	if err != nil {
		return nil, err
	}
	return collectWorkDays(rows)
}

func (r *workDayRepositoryImpl) Update(ctx context.Context, wd workday.WorkDay) (workday.WorkDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE work_days
		SET date = $1, shift_type = $2, regular_hours = $3, extra_hours = $4,
		    is_holiday = $5, notes = $6, updated_at = NOW()
		WHERE id = $7 AND user_id = $8
		RETURNING ` + workDayColumns

	updated, err := scanWorkDay(q.QueryRow(ctx, query,
		wd.Date,
		wd.ShiftType,
		wd.RegularHours,
		wd.ExtraHours,
		wd.IsHoliday,
		wd.Notes,
		wd.ID,
		wd.UserID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return workday.WorkDay{}, workday.ErrWorkDayNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return workday.WorkDay{}, workday.ErrWorkDayExists
		}
		return workday.WorkDay{}, err
	}
	return updated, nil
}

func (r *workDayRepositoryImpl) Delete(ctx context.Context, id string, userID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM work_days WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return workday.ErrWorkDayNotFound
	}
	return nil
}
