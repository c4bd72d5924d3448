package mapper

import (
	"github.com/aliiaycicek/My-Portfolio/internal/dto"
	"github.com/aliiaycicek/My-Portfolio/internal/models"
)

// Education - профиль образования.
var Education = Profile[models.Education, dto.EducationDTO]{
	ToDTO:    EducationToDTO,
	ToEntity: EducationToEntity,
}

// EducationToDTO копирует все поля кроме флага активности.
func EducationToDTO(e models.Education) dto.EducationDTO {
	return dto.EducationDTO{
		ID:          e.ID,
		School:      e.School,
		Department:  e.Department,
		Program:     e.Program,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Description: e.Description,
		Courses:     e.Courses,
	}
}

// EducationToEntity создаёт активную сущность из DTO.
func EducationToEntity(d dto.EducationDTO) models.Education {
	return models.Education{
		BaseEntity:  models.BaseEntity{ID: d.ID, IsActive: true},
		School:      d.School,
		Department:  d.Department,
		Program:     d.Program,
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		Description: d.Description,
		Courses:     d.Courses,
	}
}
