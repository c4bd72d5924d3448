package repository

// Table описывает таблицу одного вида записей.
// Columns перечисляет изменяемые колонки без id и is_active.
type Table struct {
	Name    string
	Columns []string
}

// Таблицы портфолио, см. migrations/001_portfolio.sql.
var (
	EducationsTable = Table{
		Name:    "educations",
		Columns: []string{"school", "department", "program", "start_date", "end_date", "description", "courses"},
	}
	ExperiencesTable = Table{
		Name:    "experiences",
		Columns: []string{"company", "position", "location", "start_date", "end_date", "description", "technologies", "responsibilities"},
	}
	ProjectsTable = Table{
		Name:    "projects",
		Columns: []string{"name", "description", "github_url", "live_url", "technologies", "features", "image_url"},
	}
	SkillsTable = Table{
		Name:    "skills",
		Columns: []string{"name", "category", "proficiency_level", "icon_url"},
	}
)
