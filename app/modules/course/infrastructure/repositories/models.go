package coursedb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Course is a golf course.
type Course struct {
	bun.BaseModel `bun:"table:courses,alias:c"`
	ID            uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name          string    `bun:"name,notnull" json:"name"`
	Location      *string   `bun:"location,nullzero" json:"location,omitempty"`
	Description   *string   `bun:"description,nullzero" json:"description,omitempty"`
	CreatedAt     time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}

// Tee is a set of tee markers on a course, each with its own hole data.
type Tee struct {
	bun.BaseModel `bun:"table:tees,alias:t"`
	ID            uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	CourseID      uuid.UUID `bun:"course_id,type:uuid,notnull" json:"course_id"`
	Name          string    `bun:"name,notnull" json:"name"`
	Rating        *float64  `bun:"rating" json:"rating,omitempty"`
	Slope         *int      `bun:"slope" json:"slope,omitempty"`
	TotalDistance *int      `bun:"total_distance" json:"total_distance,omitempty"`
	Color         *string   `bun:"color,nullzero" json:"color,omitempty"`
}

// CourseHole is the static data for one hole played from one tee.
type CourseHole struct {
	bun.BaseModel `bun:"table:course_holes,alias:ch"`
	ID            uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	CourseID      uuid.UUID `bun:"course_id,type:uuid,notnull" json:"course_id"`
	TeeID         uuid.UUID `bun:"tee_id,type:uuid,notnull" json:"tee_id"`
	HoleNumber    int       `bun:"hole_number,notnull" json:"hole_number"`
	Par           int       `bun:"par,notnull" json:"par"`
	Distance      *int      `bun:"distance" json:"distance,omitempty"`
	StrokeIndex   *int      `bun:"stroke_index" json:"stroke_index,omitempty"`
}
