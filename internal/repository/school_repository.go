package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stemsi/school-registry/internal/model"
)

// SchoolRepository handles school data access.
type SchoolRepository struct {
	pool *pgxpool.Pool
}

// NewSchoolRepository creates a new SchoolRepository.
func NewSchoolRepository(pool *pgxpool.Pool) *SchoolRepository {
	return &SchoolRepository{pool: pool}
}

// Save inserts a new school and fills in its generated ID and creation time.
func (r *SchoolRepository) Save(ctx context.Context, s *model.School) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO schools (name) VALUES ($1)
		 RETURNING id, created_at`,
		s.Name,
	).Scan(&s.ID, &s.CreatedAt)
}

// FindAll retrieves all schools in insertion order.
func (r *SchoolRepository) FindAll(ctx context.Context) ([]model.School, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, created_at FROM schools ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schools []model.School
	for rows.Next() {
		var s model.School
		if err := rows.Scan(&s.ID, &s.Name, &s.CreatedAt); err != nil {
			return nil, err
		}
		schools = append(schools, s)
	}
	return schools, rows.Err()
}
