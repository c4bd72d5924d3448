package models

// Skill описывает навык.
type Skill struct {
	BaseEntity
	Name     string `db:"name"`
	Category string `db:"category"` // языки, фреймворки, инструменты
	// ProficiencyLevel по шкале 1-5, не проверяется.
	ProficiencyLevel *int    `db:"proficiency_level"`
	IconURL          *string `db:"icon_url"`
}
