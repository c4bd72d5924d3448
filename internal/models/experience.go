package models

import (
	"slices"
	"time"

	"github.com/lib/pq"
)

// Experience описывает место работы.
type Experience struct {
	BaseEntity
	Company          string         `db:"company"`
	Position         string         `db:"position"`
	Location         string         `db:"location"`
	StartDate        time.Time      `db:"start_date"`
	EndDate          *time.Time     `db:"end_date"`
	Description      string         `db:"description"`
	Technologies     pq.StringArray `db:"technologies"`
	Responsibilities pq.StringArray `db:"responsibilities"`
}

// Clone возвращает копию, не делящую списки с оригиналом.
func (e Experience) Clone() Experience {
	e.Technologies = slices.Clone(e.Technologies)
	e.Responsibilities = slices.Clone(e.Responsibilities)
	return e
}
