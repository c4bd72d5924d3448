package mapper

import (
	"github.com/aliiaycicek/My-Portfolio/internal/dto"
	"github.com/aliiaycicek/My-Portfolio/internal/models"
)

// Skill - профиль навыков.
var Skill = Profile[models.Skill, dto.SkillDTO]{
	ToDTO:    SkillToDTO,
	ToEntity: SkillToEntity,
}

// SkillToDTO копирует все поля кроме флага активности.
func SkillToDTO(s models.Skill) dto.SkillDTO {
	return dto.SkillDTO{
		ID:               s.ID,
		Name:             s.Name,
		Category:         s.Category,
		ProficiencyLevel: s.ProficiencyLevel,
		IconURL:          s.IconURL,
	}
}

// SkillToEntity создаёт активную сущность из DTO.
func SkillToEntity(d dto.SkillDTO) models.Skill {
	return models.Skill{
		BaseEntity:       models.BaseEntity{ID: d.ID, IsActive: true},
		Name:             d.Name,
		Category:         d.Category,
		ProficiencyLevel: d.ProficiencyLevel,
		IconURL:          d.IconURL,
	}
}
