package model

// StudentProfile holds optional details owned by a single student.
// It is removed together with its student.
type StudentProfile struct {
	ID        int    `json:"id"`
	Bio       string `json:"bio"`
	StudentID int    `json:"student_id"`
}
