package pg

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"healthpulse/internal/common/apperr"
	"healthpulse/internal/common/identity/tools/id"
	"healthpulse/internal/repositories/storage"
	"healthpulse/internal/repositories/user"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB - соединение с СУБД. Реализуется пулом pgxpool.Pool и моком pgxmock в тестах.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store - реализует интерфейс storage.IStorage и позволяет взаимодествовать с СУБД PostgreSQL.
type Store struct {
	conn DB
}

var _ storage.IStorage = (*Store)(nil)

var _ DB = (*pgxpool.Pool)(nil)

// NewStore - возвращает новый экземпляр PostgreSQL-хранилища.
func NewStore(conn DB) *Store {
	return &Store{
		conn: conn,
	}
}

// Connect - применяет миграции и открывает пул соединений с СУБД.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	if err := runMigrations(dsn); err != nil {
		return nil, fmt.Errorf("failed to run DB migrations: %w", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("error connection to database: %w", err)
	}
	// Проверка соединения с БД
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error checking connection with database: %w", err)
	}
	return pool, nil
}

//go:embed migrations/*.sql
var migrationsDir embed.FS

func runMigrations(dsn string) error {
	d, err := iofs.New(migrationsDir, "migrations")
	if err != nil {
		return fmt.Errorf("failed to return an iofs driver: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", d, dsn)
	if err != nil {
		return fmt.Errorf("failed to get a new migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		if !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("failed to apply migrations to the DB: %w", err)
		}
	}
	return nil
}

// Disable - очищает БД, удаляя записи из таблиц.
// Метод необходим для тестирования, чтобы в процессе удалять тестовые записи.
func (s *Store) Disable(ctx context.Context) error {
	_, err := s.conn.Exec(ctx, `TRUNCATE TABLE provider_patients, medical_history, vitals_history, providers, patients`)
	if err != nil {
		return fmt.Errorf("truncate tables error, %w", err)
	}
	return nil
}

var (
	patientColumns = []string{
		"id", "first_name", "last_name", "email", "password_hash", "date_of_birth", "gender", "phone", "address",
		"heart_rate", "blood_pressure", "temperature", "oxygen_level", "created_at", "updated_at",
	}
	providerColumns = []string{
		"id", "first_name", "last_name", "email", "password_hash", "specialization", "license_number",
		"years_of_experience", "hospital_affiliation", "bio", "created_at", "updated_at",
	}
)

// columns - список колонок для SELECT с необязательным псевдонимом таблицы.
func columns(cols []string, alias string) string {
	if alias == "" {
		return strings.Join(cols, ", ")
	}
	prefixed := make([]string, len(cols))
	for i, c := range cols {
		prefixed[i] = alias + "." + c
	}
	return strings.Join(prefixed, ", ")
}

// table - таблица пользователей указанного вида.
func table(kind user.Kind) (string, bool) {
	switch kind {
	case user.KindPatient:
		return "patients", true
	case user.KindProvider:
		return "providers", true
	}
	return "", false
}

// isUniqueViolation - код ошибки 23505 - unique_violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// CreatePatient - сохраняет нового пациента. Если почта занята, возвращается apperr.ErrDuplicateEmail.
func (s *Store) CreatePatient(ctx context.Context, p *user.Patient) error {
	query := `
		INSERT INTO patients (id, first_name, last_name, email, password_hash, date_of_birth, gender, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := s.conn.Exec(ctx, query, p.ID, p.FirstName, p.LastName, p.Email, p.PasswordHash,
		p.DateOfBirth.TimePtr(), string(p.Gender), p.Phone, p.Address, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperr.ErrDuplicateEmail
		}
		return fmt.Errorf("insert patient error, %w", err)
	}
	return nil
}

// CreateProvider - сохраняет нового специалиста. Если почта занята, возвращается apperr.ErrDuplicateEmail.
func (s *Store) CreateProvider(ctx context.Context, p *user.Provider) error {
	query := `
		INSERT INTO providers (id, first_name, last_name, email, password_hash, specialization, license_number,
			years_of_experience, hospital_affiliation, bio, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := s.conn.Exec(ctx, query, p.ID, p.FirstName, p.LastName, p.Email, p.PasswordHash, p.Specialization,
		p.LicenseNumber, p.YearsOfExperience, p.HospitalAffiliation, p.Bio, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperr.ErrDuplicateEmail
		}
		return fmt.Errorf("insert provider error, %w", err)
	}
	return nil
}

// EmailExists - проверяет, занята ли почта пользователем указанного вида.
func (s *Store) EmailExists(ctx context.Context, kind user.Kind, email string) (bool, error) {
	tbl, ok := table(kind)
	if !ok {
		return false, nil
	}

	var exists bool
	err := s.conn.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM `+tbl+` WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check email error, %w", err)
	}
	return exists, nil
}

// GetCredentials - получаю авторизационные данные пользователя (хэш) по почте.
func (s *Store) GetCredentials(ctx context.Context, kind user.Kind, email string) (user.Credentials, bool, error) {
	tbl, ok := table(kind)
	if !ok {
		return user.Credentials{}, false, nil
	}

	cred := user.Credentials{Kind: kind}
	err := s.conn.QueryRow(ctx, `SELECT id, password_hash FROM `+tbl+` WHERE email = $1`, email).Scan(&cred.ID, &cred.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// пользователь не найден
			return user.Credentials{}, false, nil
		}
		return user.Credentials{}, false, fmt.Errorf("select credentials error, %w", err)
	}
	return cred, true, nil
}

func scanPatient(row pgx.Row) (*user.Patient, error) {
	var (
		p      user.Patient
		dob    *time.Time
		gender string
	)
	err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Email, &p.PasswordHash, &dob, &gender, &p.Phone, &p.Address,
		&p.Vitals.HeartRate, &p.Vitals.BloodPressure, &p.Vitals.Temperature, &p.Vitals.OxygenLevel, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.DateOfBirth = user.DateFromPtr(dob)
	p.Gender = user.Gender(gender)
	p.VitalsHistory = []user.VitalsRecord{}
	p.MedicalHistory = []user.MedicalRecord{}
	return &p, nil
}

// GetPatient - получение пациента вместе с историей показателей и медицинской историей.
func (s *Store) GetPatient(ctx context.Context, patientID string) (*user.Patient, bool, error) {
	if !id.IsValid(patientID) {
		return nil, false, nil
	}

	row := s.conn.QueryRow(ctx, `SELECT `+columns(patientColumns, "")+` FROM patients WHERE id = $1`, patientID)
	p, err := scanPatient(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("select patient error, %w", err)
	}

	if err := s.loadHistories(ctx, []*user.Patient{p}); err != nil {
		return nil, false, err
	}
	return p, true, nil
}

// ListPatients - все пациенты в порядке регистрации.
func (s *Store) ListPatients(ctx context.Context) ([]user.Patient, error) {
	return s.queryPatients(ctx, `SELECT `+columns(patientColumns, "")+` FROM patients ORDER BY created_at, id`)
}

// GetAssignedPatients - записи пациентов, закрепленных за специалистом, в порядке закрепления.
func (s *Store) GetAssignedPatients(ctx context.Context, providerID string) ([]user.Patient, error) {
	query := `
		SELECT ` + columns(patientColumns, "p") + `
		FROM patients p
		JOIN provider_patients pp ON pp.patient_id = p.id
		WHERE pp.provider_id = $1
		ORDER BY pp.assigned_at, p.id
	`
	return s.queryPatients(ctx, query, providerID)
}

func (s *Store) queryPatients(ctx context.Context, query string, args ...any) ([]user.Patient, error) {
	rows, err := s.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query execution error, %w", err)
	}

	ps := make([]*user.Patient, 0)
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan patient error, %w", err)
		}
		ps = append(ps, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error, %w", err)
	}

	if err := s.loadHistories(ctx, ps); err != nil {
		return nil, err
	}

	res := make([]user.Patient, len(ps))
	for i, p := range ps {
		res[i] = *p
	}
	return res, nil
}

// loadHistories - загружает историю пульса и медицинскую историю для всех переданных пациентов двумя запросами.
func (s *Store) loadHistories(ctx context.Context, ps []*user.Patient) error {
	if len(ps) == 0 {
		return nil
	}
	ids := make([]string, len(ps))
	byID := make(map[string]*user.Patient, len(ps))
	for i, p := range ps {
		ids[i] = p.ID
		byID[p.ID] = p
	}

	rows, err := s.conn.Query(ctx, `
		SELECT patient_id, heart_rate, recorded_at
		FROM vitals_history
		WHERE patient_id = ANY($1)
		ORDER BY id
	`, ids)
	if err != nil {
		return fmt.Errorf("select vitals history error, %w", err)
	}
	for rows.Next() {
		var (
			patientID string
			rec       user.VitalsRecord
		)
		if err := rows.Scan(&patientID, &rec.HeartRate, &rec.Timestamp); err != nil {
			rows.Close()
			return fmt.Errorf("scan vitals history error, %w", err)
		}
		if p, ok := byID[patientID]; ok {
			p.VitalsHistory = append(p.VitalsHistory, rec)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("vitals history iteration error, %w", err)
	}

	rows, err = s.conn.Query(ctx, `
		SELECT patient_id, condition, diagnosed_date, notes, added_at
		FROM medical_history
		WHERE patient_id = ANY($1)
		ORDER BY id
	`, ids)
	if err != nil {
		return fmt.Errorf("select medical history error, %w", err)
	}
	for rows.Next() {
		var (
			patientID string
			rec       user.MedicalRecord
			diagnosed *time.Time
		)
		if err := rows.Scan(&patientID, &rec.Condition, &diagnosed, &rec.Notes, &rec.AddedAt); err != nil {
			rows.Close()
			return fmt.Errorf("scan medical history error, %w", err)
		}
		rec.DiagnosedDate = user.DateFromPtr(diagnosed)
		if p, ok := byID[patientID]; ok {
			p.MedicalHistory = append(p.MedicalHistory, rec)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("medical history iteration error, %w", err)
	}
	return nil
}

// UpdatePatient - частичное обновление профиля. Пустые строки не перезаписывают сохраненные значения.
func (s *Store) UpdatePatient(ctx context.Context, patientID string, upd user.PatientUpdate, now time.Time) (bool, error) {
	query := `
		UPDATE patients SET
			first_name = COALESCE(NULLIF($2::text, ''), first_name),
			last_name = COALESCE(NULLIF($3::text, ''), last_name),
			email = COALESCE(NULLIF($4::text, ''), email),
			phone = COALESCE(NULLIF($5::text, ''), phone),
			address = COALESCE(NULLIF($6::text, ''), address),
			date_of_birth = COALESCE($7::date, date_of_birth),
			gender = COALESCE(NULLIF($8::text, ''), gender),
			updated_at = $9
		WHERE id = $1
	`
	var email, gender *string
	if upd.Email != nil {
		e := user.NormalizeEmail(*upd.Email)
		email = &e
	}
	if upd.Gender != nil {
		g := string(*upd.Gender)
		gender = &g
	}

	tag, err := s.conn.Exec(ctx, query, patientID, upd.FirstName, upd.LastName, email, upd.Phone, upd.Address,
		upd.DateOfBirth.TimePtr(), gender, now)
	if err != nil {
		if isUniqueViolation(err) {
			return false, apperr.ErrDuplicateEmail
		}
		return false, fmt.Errorf("update patient error, %w", err)
	}
	return tag.RowsAffected() != 0, nil
}

// UpdateVitals - в одной транзакции обновляет снимок показателей и добавляет запись истории пульса.
func (s *Store) UpdateVitals(ctx context.Context, patientID string, upd user.VitalsUpdate, now time.Time) (bool, error) {
	// запускаю транзакцию
	tx, err := s.conn.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("begin transaction error, %w", err)
	}
	// в случае неупешного коммита все изменения транзакции будут отменены
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE patients SET
			heart_rate = COALESCE($2::integer, heart_rate),
			blood_pressure = COALESCE($3::text, blood_pressure),
			temperature = COALESCE($4::double precision, temperature),
			oxygen_level = COALESCE($5::double precision, oxygen_level),
			updated_at = $6
		WHERE id = $1
	`, patientID, upd.HeartRate, upd.BloodPressure, upd.Temperature, upd.OxygenLevel, now)
	if err != nil {
		return false, fmt.Errorf("update vitals error, %w", err)
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}

	if upd.HeartRate != nil {
		_, err = tx.Exec(ctx, `
			INSERT INTO vitals_history (patient_id, heart_rate, recorded_at)
			VALUES ($1, $2, $3)
		`, patientID, *upd.HeartRate, now)
		if err != nil {
			return false, fmt.Errorf("insert vitals history error, %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit transaction error, %w", err)
	}
	return true, nil
}

// AddMedicalRecord - добавляет запись медицинской истории, если пациент существует.
func (s *Store) AddMedicalRecord(ctx context.Context, patientID string, rec user.MedicalRecord) (bool, error) {
	query := `
		WITH patient AS (
			UPDATE patients SET updated_at = $5 WHERE id = $1 RETURNING id
		)
		INSERT INTO medical_history (patient_id, condition, diagnosed_date, notes, added_at)
		SELECT id, $2::text, $3::date, $4::text, $5::timestamptz FROM patient
	`
	tag, err := s.conn.Exec(ctx, query, patientID, rec.Condition, rec.DiagnosedDate.TimePtr(), rec.Notes, rec.AddedAt)
	if err != nil {
		return false, fmt.Errorf("insert medical history error, %w", err)
	}
	return tag.RowsAffected() != 0, nil
}

// GetProvider - получение специалиста вместе с идентификаторами закрепленных пациентов.
func (s *Store) GetProvider(ctx context.Context, providerID string) (*user.Provider, bool, error) {
	if !id.IsValid(providerID) {
		return nil, false, nil
	}

	var p user.Provider
	err := s.conn.QueryRow(ctx, `SELECT `+columns(providerColumns, "")+` FROM providers WHERE id = $1`, providerID).
		Scan(&p.ID, &p.FirstName, &p.LastName, &p.Email, &p.PasswordHash, &p.Specialization, &p.LicenseNumber,
			&p.YearsOfExperience, &p.HospitalAffiliation, &p.Bio, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("select provider error, %w", err)
	}

	rows, err := s.conn.Query(ctx, `
		SELECT patient_id
		FROM provider_patients
		WHERE provider_id = $1
		ORDER BY assigned_at, patient_id
	`, providerID)
	if err != nil {
		return nil, false, fmt.Errorf("select assigned patients error, %w", err)
	}
	defer rows.Close()

	p.AssignedPatients = make([]string, 0)
	for rows.Next() {
		var patientID string
		if err := rows.Scan(&patientID); err != nil {
			return nil, false, fmt.Errorf("scan assigned patient error, %w", err)
		}
		p.AssignedPatients = append(p.AssignedPatients, patientID)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("assigned patients iteration error, %w", err)
	}
	return &p, true, nil
}

// UpdateProvider - частичное обновление профессионального профиля. Нулевой стаж сохраняется.
func (s *Store) UpdateProvider(ctx context.Context, providerID string, upd user.ProviderUpdate, now time.Time) (bool, error) {
	query := `
		UPDATE providers SET
			specialization = COALESCE(NULLIF($2::text, ''), specialization),
			license_number = COALESCE(NULLIF($3::text, ''), license_number),
			years_of_experience = COALESCE($4::integer, years_of_experience),
			hospital_affiliation = COALESCE(NULLIF($5::text, ''), hospital_affiliation),
			bio = COALESCE(NULLIF($6::text, ''), bio),
			updated_at = $7
		WHERE id = $1
	`
	tag, err := s.conn.Exec(ctx, query, providerID, upd.Specialization, upd.LicenseNumber, upd.YearsOfExperience,
		upd.HospitalAffiliation, upd.Bio, now)
	if err != nil {
		return false, fmt.Errorf("update provider error, %w", err)
	}
	return tag.RowsAffected() != 0, nil
}

// AssignPatient - закрепляет пациента за специалистом. Возвращает false, если пациент уже закреплен.
func (s *Store) AssignPatient(ctx context.Context, providerID, patientID string, now time.Time) (bool, error) {
	query := `
		INSERT INTO provider_patients (provider_id, patient_id, assigned_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (provider_id, patient_id) DO NOTHING
	`
	tag, err := s.conn.Exec(ctx, query, providerID, patientID, now)
	if err != nil {
		return false, fmt.Errorf("assign patient error, %w", err)
	}
	return tag.RowsAffected() != 0, nil
}
