package models

// College represents a college of the university
type College struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"` // Unique
	Code        string `json:"code" db:"code"`
	Description string `json:"description" db:"description"`
}

// Course represents a degree program offered by a college.
// Name is unique within a college.
type Course struct {
	ID          int64    `json:"id" db:"id"`
	CollegeID   int64    `json:"collegeId" db:"college_id"`
	Name        string   `json:"name" db:"name"`
	Code        string   `json:"code" db:"code"`
	Description string   `json:"description" db:"description"`
	College     *College `json:"college,omitempty"` // Relation, no db tag
}
