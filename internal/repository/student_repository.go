package repository

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stemsi/school-registry/internal/model"
)

var (
	ErrDuplicateEmail = errors.New("student with this email already exists")
	ErrSchoolNotFound = errors.New("referenced school does not exist")
	ErrUnknownField   = errors.New("unknown student field")
)

// Postgres error codes.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// searchableColumns maps FindByField names to student columns.
var searchableColumns = map[string]string{
	"name":     "s.name",
	"lastname": "s.lastname",
	"email":    "s.email",
}

const selectStudent = `SELECT s.id, s.name, s.lastname, s.email, s.age, s.created_at, s.school_id,
		p.id, p.bio
	 FROM students s
	 LEFT JOIN student_profiles p ON p.student_id = s.id`

// StudentRepository handles student data access. A student's profile is
// stored and removed together with the student.
type StudentRepository struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool, now: time.Now}
}

// Save inserts a new student, and its profile if one is attached, in a
// single transaction. ID, CreatedAt and the profile's IDs are filled in only
// once the transaction commits; on error s is left untouched.
func (r *StudentRepository) Save(ctx context.Context, s *model.Student) error {
	pending := *s
	pending.PrePersist(r.now().UTC())

	var (
		id        int
		createdAt time.Time
		profileID int
	)
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`INSERT INTO students (name, lastname, email, age, created_at, school_id)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING id, created_at`,
			pending.Name, pending.Lastname, pending.Email, pending.Age, pending.CreatedAt, pending.School.ID,
		).Scan(&id, &createdAt)
		if err != nil {
			return err
		}

		if pending.Profile == nil {
			return nil
		}
		return tx.QueryRow(ctx,
			`INSERT INTO student_profiles (bio, student_id) VALUES ($1, $2) RETURNING id`,
			pending.Profile.Bio, id,
		).Scan(&profileID)
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				return ErrDuplicateEmail
			case pgForeignKeyViolation:
				return ErrSchoolNotFound
			}
		}
		return err
	}

	s.ID = id
	s.CreatedAt = createdAt
	if s.Profile != nil {
		s.Profile.ID = profileID
		s.Profile.StudentID = id
	}
	return nil
}

// FindAll retrieves all students in insertion order.
func (r *StudentRepository) FindAll(ctx context.Context) ([]model.Student, error) {
	rows, err := r.pool.Query(ctx, selectStudent+` ORDER BY s.id`)
	if err != nil {
		return nil, err
	}
	return collectStudents(rows)
}

// FindByID retrieves a student by ID. found is false when no row matches.
func (r *StudentRepository) FindByID(ctx context.Context, id int) (*model.Student, bool, error) {
	if !fitsSerial(id) {
		return nil, false, nil
	}
	row := r.pool.QueryRow(ctx, selectStudent+` WHERE s.id = $1`, id)
	s, err := scanStudent(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return s, true, nil
}

// FindByField retrieves the students whose field exactly equals value.
// Only name, lastname and email can be searched.
func (r *StudentRepository) FindByField(ctx context.Context, field, value string) ([]model.Student, error) {
	column, ok := searchableColumns[field]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	rows, err := r.pool.Query(ctx, selectStudent+` WHERE `+column+` = $1 ORDER BY s.id`, value)
	if err != nil {
		return nil, err
	}
	return collectStudents(rows)
}

// DeleteByID removes a student and its profile. Deleting a missing ID is a no-op.
func (r *StudentRepository) DeleteByID(ctx context.Context, id int) error {
	if !fitsSerial(id) {
		return nil
	}
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM student_profiles WHERE student_id = $1`, id); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
		return err
	})
}

// fitsSerial reports whether id can be a SERIAL (int4) key. Larger values
// cannot match any row and would fail parameter encoding.
func fitsSerial(id int) bool {
	return id >= math.MinInt32 && id <= math.MaxInt32
}

func collectStudents(rows pgx.Rows) ([]model.Student, error) {
	defer rows.Close()

	var students []model.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, *s)
	}
	return students, rows.Err()
}

func scanStudent(row pgx.Row) (*model.Student, error) {
	var (
		s         model.Student
		profileID *int
		bio       *string
	)
	err := row.Scan(&s.ID, &s.Name, &s.Lastname, &s.Email, &s.Age, &s.CreatedAt, &s.School.ID,
		&profileID, &bio)
	if err != nil {
		return nil, err
	}
	if profileID != nil {
		s.Profile = &model.StudentProfile{ID: *profileID, StudentID: s.ID}
		if bio != nil {
			s.Profile.Bio = *bio
		}
	}
	return &s, nil
}
