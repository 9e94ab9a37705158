package entities

import "time"

// CustomWord is an admin-added dictionary entry. Custom words join both the
// valid-guess set and the answer pool for their length.
type CustomWord struct {
	ID         int64     `db:"id"`
	Word       string    `db:"word"`
	WordLength int       `db:"word_length"`
	AddedBy    int64     `db:"added_by"`
	CreatedAt  time.Time `db:"created_at"`
}
