package pg

import (
	"context"
	"errors"
	"testing"
	"time"

	"healthpulse/internal/common/apperr"
	"healthpulse/internal/repositories/user"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testPatientID  = "4f1c2b8e-3a57-4c1e-9f0a-2d6b1e7c9a10"
	testProviderID = "9b2e4d6a-1c3f-4e5a-8b7d-0f9e8d7c6b5a"
)

func TestCreatePatient(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	stor := NewStore(mock)
	ctx := context.Background()

	now := time.Now()
	p := &user.Patient{Account: user.Account{
		ID:           testPatientID,
		FirstName:    "A",
		LastName:     "B",
		Email:        "a@b.com",
		PasswordHash: "hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}}
	args := []any{p.ID, "A", "B", "a@b.com", "hash", pgxmock.AnyArg(), "", "", "", now, now}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO patients").WithArgs(args...).WillReturnResult(pgxmock.NewResult("INSERT", 1))
		require.NoError(t, stor.CreatePatient(ctx, p))
	})

	t.Run("email already exists", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO patients").WithArgs(args...).WillReturnError(&pgconn.PgError{Code: "23505"})
		err := stor.CreatePatient(ctx, p)
		assert.True(t, errors.Is(err, apperr.ErrDuplicateEmail))
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO patients").WithArgs(args...).WillReturnError(errors.New("db error"))
		err := stor.CreatePatient(ctx, p)
		require.Error(t, err)
		assert.False(t, errors.Is(err, apperr.ErrDuplicateEmail))
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentials(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	stor := NewStore(mock)
	ctx := context.Background()

	t.Run("email exists", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS").WithArgs("a@b.com").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
		ok, err := stor.EmailExists(ctx, user.KindProvider, "a@b.com")
		require.NoError(t, err)
		assert.Equal(t, true, ok)
	})

	t.Run("credentials found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, password_hash FROM patients").WithArgs("a@b.com").
			WillReturnRows(pgxmock.NewRows([]string{"id", "password_hash"}).AddRow(testPatientID, "hash"))
		cred, ok, err := stor.GetCredentials(ctx, user.KindPatient, "a@b.com")
		require.NoError(t, err)
		assert.Equal(t, true, ok)
		assert.Equal(t, user.Credentials{ID: testPatientID, Kind: user.KindPatient, PasswordHash: "hash"}, cred)
	})

	t.Run("credentials not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, password_hash FROM providers").WithArgs("x@b.com").WillReturnError(pgx.ErrNoRows)
		_, ok, err := stor.GetCredentials(ctx, user.KindProvider, "x@b.com")
		require.NoError(t, err)
		assert.Equal(t, false, ok)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, password_hash FROM providers").WithArgs("x@b.com").WillReturnError(errors.New("db error"))
		_, ok, err := stor.GetCredentials(ctx, user.KindProvider, "x@b.com")
		require.Error(t, err)
		assert.Equal(t, false, ok)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, ok, err := stor.GetCredentials(ctx, user.Kind("admin"), "a@b.com")
		require.NoError(t, err)
		assert.Equal(t, false, ok)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	stor := NewStore(mock)
	ctx := context.Background()

	// некорректный идентификатор не доходит до базы
	_, ok, err := stor.GetPatient(ctx, "not a uuid")
	require.NoError(t, err)
	assert.Equal(t, false, ok)
	_, ok, err = stor.GetProvider(ctx, "not a uuid")
	require.NoError(t, err)
	assert.Equal(t, false, ok)

	mock.ExpectQuery("FROM patients WHERE id").WithArgs(testPatientID).WillReturnError(pgx.ErrNoRows)
	_, ok, err = stor.GetPatient(ctx, testPatientID)
	require.NoError(t, err)
	assert.Equal(t, false, ok)

	mock.ExpectQuery("FROM providers WHERE id").WithArgs(testProviderID).WillReturnError(errors.New("db error"))
	_, ok, err = stor.GetProvider(ctx, testProviderID)
	require.Error(t, err)
	assert.Equal(t, false, ok)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateVitals(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	stor := NewStore(mock)
	ctx := context.Background()
	now := time.Now()

	hr := 80
	temp := 37.0

	t.Run("heart rate appends history", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE patients SET").
			WithArgs(testPatientID, pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), now).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec("INSERT INTO vitals_history").WithArgs(testPatientID, 80, now).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		ok, err := stor.UpdateVitals(ctx, testPatientID, user.VitalsUpdate{HeartRate: &hr}, now)
		require.NoError(t, err)
		assert.Equal(t, true, ok)
	})

	t.Run("without heart rate", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE patients SET").
			WithArgs(testPatientID, pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), now).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		ok, err := stor.UpdateVitals(ctx, testPatientID, user.VitalsUpdate{Temperature: &temp}, now)
		require.NoError(t, err)
		assert.Equal(t, true, ok)
	})

	t.Run("patient not found", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE patients SET").
			WithArgs(testPatientID, pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), now).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectRollback()

		ok, err := stor.UpdateVitals(ctx, testPatientID, user.VitalsUpdate{HeartRate: &hr}, now)
		require.NoError(t, err)
		assert.Equal(t, false, ok)
	})

	t.Run("history insert fails", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE patients SET").
			WithArgs(testPatientID, pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), now).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec("INSERT INTO vitals_history").WithArgs(testPatientID, 80, now).
			WillReturnError(errors.New("db error"))
		mock.ExpectRollback()

		_, err := stor.UpdateVitals(ctx, testPatientID, user.VitalsUpdate{HeartRate: &hr}, now)
		require.Error(t, err)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePatientDuplicateEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	stor := NewStore(mock)
	now := time.Now()

	email := "Taken@b.com"
	mock.ExpectExec("UPDATE patients SET").
		WithArgs(testPatientID, pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), now).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err = stor.UpdatePatient(context.Background(), testPatientID, user.PatientUpdate{Email: &email}, now)
	assert.True(t, errors.Is(err, apperr.ErrDuplicateEmail))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMedicalRecordAndAssignment(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	stor := NewStore(mock)
	ctx := context.Background()
	now := time.Now()

	rec := user.MedicalRecord{Condition: "Asthma", AddedAt: now}
	mock.ExpectExec("INSERT INTO medical_history").
		WithArgs(testPatientID, "Asthma", pgxmock.AnyArg(), "", now).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	ok, err := stor.AddMedicalRecord(ctx, testPatientID, rec)
	require.NoError(t, err)
	assert.Equal(t, true, ok)

	// пациент не найден - ни одной строки не вставлено
	mock.ExpectExec("INSERT INTO medical_history").
		WithArgs(testPatientID, "Asthma", pgxmock.AnyArg(), "", now).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))
	ok, err = stor.AddMedicalRecord(ctx, testPatientID, rec)
	require.NoError(t, err)
	assert.Equal(t, false, ok)

	mock.ExpectExec("INSERT INTO provider_patients").WithArgs(testProviderID, testPatientID, now).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	ok, err = stor.AssignPatient(ctx, testProviderID, testPatientID, now)
	require.NoError(t, err)
	assert.Equal(t, true, ok)

	// повторное закрепление - конфликт первичного ключа
	mock.ExpectExec("INSERT INTO provider_patients").WithArgs(testProviderID, testPatientID, now).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))
	ok, err = stor.AssignPatient(ctx, testProviderID, testPatientID, now)
	require.NoError(t, err)
	assert.Equal(t, false, ok)

	mock.ExpectExec("TRUNCATE TABLE").WillReturnResult(pgxmock.NewResult("TRUNCATE", 0))
	require.NoError(t, stor.Disable(ctx))

	require.NoError(t, mock.ExpectationsWereMet())
}
