package service

import (
	"context"

	"github.com/stemsi/school-registry/internal/model"
)

// SchoolRepository is the persistence capability SchoolService depends on.
// repository.SchoolRepository implements it on PostgreSQL.
type SchoolRepository interface {
	Save(ctx context.Context, s *model.School) error
	FindAll(ctx context.Context) ([]model.School, error)
}

// StudentRepository is the persistence capability StudentService depends on.
// Save assigns ID and CreatedAt; DeleteByID also removes the student's profile.
type StudentRepository interface {
	Save(ctx context.Context, s *model.Student) error
	FindAll(ctx context.Context) ([]model.Student, error)
	FindByID(ctx context.Context, id int) (*model.Student, bool, error)
	FindByField(ctx context.Context, field, value string) ([]model.Student, error)
	DeleteByID(ctx context.Context, id int) error
}
