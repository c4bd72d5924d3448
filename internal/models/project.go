package models

import (
	"slices"

	"github.com/lib/pq"
)

// Project описывает проект из портфолио.
type Project struct {
	BaseEntity
	Name         string         `db:"name"`
	Description  string         `db:"description"`
	GithubURL    *string        `db:"github_url"`
	LiveURL      *string        `db:"live_url"`
	Technologies pq.StringArray `db:"technologies"`
	Features     pq.StringArray `db:"features"`
	ImageURL     *string        `db:"image_url"`
}

// Clone возвращает копию, не делящую списки с оригиналом.
func (p Project) Clone() Project {
	p.Technologies = slices.Clone(p.Technologies)
	p.Features = slices.Clone(p.Features)
	return p
}
