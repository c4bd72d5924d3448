package mapper

import (
	"github.com/aliiaycicek/My-Portfolio/internal/dto"
	"github.com/aliiaycicek/My-Portfolio/internal/models"
)

// Experience - профиль опыта работы.
var Experience = Profile[models.Experience, dto.ExperienceDTO]{
	ToDTO:    ExperienceToDTO,
	ToEntity: ExperienceToEntity,
}

// ExperienceToDTO копирует все поля кроме флага активности.
func ExperienceToDTO(e models.Experience) dto.ExperienceDTO {
	return dto.ExperienceDTO{
		ID:               e.ID,
		Company:          e.Company,
		Position:         e.Position,
		Location:         e.Location,
		StartDate:        e.StartDate,
		EndDate:          e.EndDate,
		Description:      e.Description,
		Technologies:     cloneStrings(e.Technologies),
		Responsibilities: cloneStrings(e.Responsibilities),
	}
}

// ExperienceToEntity создаёт активную сущность из DTO.
func ExperienceToEntity(d dto.ExperienceDTO) models.Experience {
	return models.Experience{
		BaseEntity:       models.BaseEntity{ID: d.ID, IsActive: true},
		Company:          d.Company,
		Position:         d.Position,
		Location:         d.Location,
		StartDate:        d.StartDate,
		EndDate:          d.EndDate,
		Description:      d.Description,
		Technologies:     cloneStrings(d.Technologies),
		Responsibilities: cloneStrings(d.Responsibilities),
	}
}
