package mapper

import (
	"github.com/aliiaycicek/My-Portfolio/internal/dto"
	"github.com/aliiaycicek/My-Portfolio/internal/models"
)

// Project - профиль проектов.
var Project = Profile[models.Project, dto.ProjectDTO]{
	ToDTO:    ProjectToDTO,
	ToEntity: ProjectToEntity,
}

// ProjectToDTO копирует все поля кроме флага активности.
func ProjectToDTO(p models.Project) dto.ProjectDTO {
	return dto.ProjectDTO{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		GithubURL:    p.GithubURL,
		LiveURL:      p.LiveURL,
		Technologies: cloneStrings(p.Technologies),
		Features:     cloneStrings(p.Features),
		ImageURL:     p.ImageURL,
	}
}

// ProjectToEntity создаёт активную сущность из DTO.
func ProjectToEntity(d dto.ProjectDTO) models.Project {
	return models.Project{
		BaseEntity:   models.BaseEntity{ID: d.ID, IsActive: true},
		Name:         d.Name,
		Description:  d.Description,
		GithubURL:    d.GithubURL,
		LiveURL:      d.LiveURL,
		Technologies: cloneStrings(d.Technologies),
		Features:     cloneStrings(d.Features),
		ImageURL:     d.ImageURL,
	}
}
