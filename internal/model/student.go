package model

import "time"

// Student represents an enrolled student.
type Student struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Lastname  string          `json:"lastname"`
	Email     string          `json:"email"`
	Age       int             `json:"age"`
	CreatedAt time.Time       `json:"created_at"`
	School    SchoolRef       `json:"school"`
	Profile   *StudentProfile `json:"profile,omitempty"`
}

// PrePersist stamps the creation date. It only writes CreatedAt the first
// time it runs; later calls leave the stored value untouched.
func (s *Student) PrePersist(now time.Time) {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
}

// StudentDto is the payload for creating a student.
// SchoolID may be absent; the schools foreign key rejects unknown IDs.
type StudentDto struct {
	Name     string `json:"name" binding:"required"`
	Lastname string `json:"lastname" binding:"required"`
	Email    string `json:"email" binding:"required"`
	SchoolID *int   `json:"school_id"`
}

// StudentResponseDto is the public view of a student.
type StudentResponseDto struct {
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	Email    string `json:"email"`
}
