package models

import "time"

// Education описывает запись об образовании.
type Education struct {
	BaseEntity
	School      string     `db:"school"`
	Department  string     `db:"department"`
	Program     *string    `db:"program"`
	StartDate   time.Time  `db:"start_date"`
	EndDate     *time.Time `db:"end_date"`
	Description *string    `db:"description"`
	Courses     *string    `db:"courses"`
}
