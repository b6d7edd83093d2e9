package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andresaoe/mi-jornada-calculada/internal/domain/laborlaw"
	"github.com/andresaoe/mi-jornada-calculada/internal/domain/user"
	"github.com/andresaoe/mi-jornada-calculada/internal/domain/workday"
	"github.com/andresaoe/mi-jornada-calculada/internal/repository/postgresql"
)

func createTestUser(t *testing.T, ctx context.Context, repo user.Repository) user.User {
	t.Helper()

	u, err := repo.Create(ctx, user.User{
		ID:           uuid.NewString(),
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		FullName:     "Test User",
		BaseSalary:   decimal.NewFromInt(2416500),
	})
	require.NoError(t, err)
	return u
}

func TestWorkDayRepository_CreateAndGet(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)
	ctx := context.Background()

	userRepo := postgresql.NewUserRepository(db)
	repo := postgresql.NewWorkDayRepository(db)
	u := createTestUser(t, ctx, userRepo)

	created, err := repo.Create(ctx, workday.WorkDay{
		ID:           uuid.NewString(),
		UserID:       u.ID,
		Date:         time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC),
		ShiftType:    laborlaw.ShiftDiurnoAM,
		RegularHours: 8,
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID, u.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, laborlaw.ShiftDiurnoAM, got.ShiftType)
	assert.Equal(t, 8.0, got.RegularHours)
}

func TestWorkDayRepository_DuplicateDate(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)
	ctx := context.Background()

	userRepo := postgresql.NewUserRepository(db)
	repo := postgresql.NewWorkDayRepository(db)
	u := createTestUser(t, ctx, userRepo)

	date := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	_, err := repo.Create(ctx, workday.WorkDay{
		ID: uuid.NewString(), UserID: u.ID, Date: date,
		ShiftType: laborlaw.ShiftDiurnoAM, RegularHours: 8,
	})
	require.NoError(t, err)

	_, err = repo.Create(ctx, workday.WorkDay{
		ID: uuid.NewString(), UserID: u.ID, Date: date,
		ShiftType: laborlaw.ShiftTardePM, RegularHours: 8,
	})
	assert.ErrorIs(t, err, workday.ErrWorkDayExists)
}

func TestWorkDayRepository_CreateBatchRollsBackOnDuplicate(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)
	ctx := context.Background()

	userRepo := postgresql.NewUserRepository(db)
	repo := postgresql.NewWorkDayRepository(db)
	u := createTestUser(t, ctx, userRepo)

	dup := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)
	_, err := repo.Create(ctx, workday.WorkDay{
		ID: uuid.NewString(), UserID: u.ID, Date: dup,
		ShiftType: laborlaw.ShiftDiurnoAM, RegularHours: 8,
	})
	require.NoError(t, err)

	var batch []workday.WorkDay
	for day := 4; day <= 6; day++ {
		batch = append(batch, workday.WorkDay{
			ID:     uuid.NewString(),
			UserID: u.ID,
			Date:   time.Date(2025, time.March, day, 0, 0, 0, 0, time.UTC),
			ShiftType:    laborlaw.ShiftDiurnoAM,
			RegularHours: 8,
		})
	}

	_, err = repo.CreateBatch(ctx, batch)
	assert.ErrorIs(t, err, workday.ErrWorkDayExists)

	days, err := repo.ListByUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Len(t, days, 1, "failed batch must not leave partial rows")
}

func TestWorkDayRepository_ListByUserMonth(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)
	ctx := context.Background()

	userRepo := postgresql.NewUserRepository(db)
	repo := postgresql.NewWorkDayRepository(db)
	u := createTestUser(t, ctx, userRepo)

	dates := []time.Time{
		time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, d := range dates {
		_, err := repo.Create(ctx, workday.WorkDay{
			ID: uuid.NewString(), UserID: u.ID, Date: d,
			ShiftType: laborlaw.ShiftDiurnoAM, RegularHours: 8,
		})
		require.NoError(t, err)
	}

	days, err := repo.ListByUserMonth(ctx, u.ID, 2025, time.March)
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, 1, days[0].Date.Day())
	assert.Equal(t, 31, days[1].Date.Day())
}

func TestWorkDayRepository_ScopedByUser(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)
	ctx := context.Background()

	userRepo := postgresql.NewUserRepository(db)
	repo := postgresql.NewWorkDayRepository(db)
	owner := createTestUser(t, ctx, userRepo)
	other := createTestUser(t, ctx, userRepo)

	created, err := repo.Create(ctx, workday.WorkDay{
		ID: uuid.NewString(), UserID: owner.ID,
		Date:      time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC),
		ShiftType: laborlaw.ShiftDiurnoAM, RegularHours: 8,
	})
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, created.ID, other.ID)
	assert.ErrorIs(t, err, workday.ErrWorkDayNotFound)

	err = repo.Delete(ctx, created.ID, other.ID)
	assert.ErrorIs(t, err, workday.ErrWorkDayNotFound)
}
