package playerdb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Player is a golfer who can be assigned to rounds.
type Player struct {
	bun.BaseModel `bun:"table:players,alias:p"`
	ID            uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name          string    `bun:"name,notnull,unique" json:"name"`
	Handicap      float64   `bun:"handicap,notnull" json:"handicap"`
	Email         *string   `bun:"email,nullzero" json:"email,omitempty"`
	Phone         *string   `bun:"phone,nullzero" json:"phone,omitempty"`
	CreatedAt     time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt     time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`
}
