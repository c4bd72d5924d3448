package dto

import "time"

// EducationDTO представляет запись об образовании в API.
type EducationDTO struct {
	ID          int64      `json:"id" yaml:"id"`
	School      string     `json:"school" yaml:"school" binding:"required"`
	Department  string     `json:"department" yaml:"department" binding:"required"`
	Program     *string    `json:"program" yaml:"program"`
	StartDate   time.Time  `json:"startDate" yaml:"startDate" binding:"required"`
	EndDate     *time.Time `json:"endDate" yaml:"endDate"`
	Description *string    `json:"description" yaml:"description"`
	Courses     *string    `json:"courses" yaml:"courses"`
}

// ExperienceDTO представляет место работы в API.
type ExperienceDTO struct {
	ID               int64      `json:"id" yaml:"id"`
	Company          string     `json:"company" yaml:"company" binding:"required"`
	Position         string     `json:"position" yaml:"position" binding:"required"`
	Location         string     `json:"location" yaml:"location" binding:"required"`
	StartDate        time.Time  `json:"startDate" yaml:"startDate" binding:"required"`
	EndDate          *time.Time `json:"endDate" yaml:"endDate"`
	Description      string     `json:"description" yaml:"description" binding:"required"`
	Technologies     []string   `json:"technologies" yaml:"technologies"`
	Responsibilities []string   `json:"responsibilities" yaml:"responsibilities"`
}

// ProjectDTO представляет проект в API.
type ProjectDTO struct {
	ID           int64    `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name" binding:"required"`
	Description  string   `json:"description" yaml:"description" binding:"required"`
	GithubURL    *string  `json:"githubUrl" yaml:"githubUrl"`
	LiveURL      *string  `json:"liveUrl" yaml:"liveUrl"`
	Technologies []string `json:"technologies" yaml:"technologies"`
	Features     []string `json:"features" yaml:"features"`
	ImageURL     *string  `json:"imageUrl" yaml:"imageUrl"`
}

// SkillDTO представляет навык в API.
type SkillDTO struct {
	ID               int64   `json:"id" yaml:"id"`
	Name             string  `json:"name" yaml:"name" binding:"required"`
	Category         string  `json:"category" yaml:"category" binding:"required"`
	ProficiencyLevel *int    `json:"proficiencyLevel" yaml:"proficiencyLevel"`
	IconURL          *string `json:"iconUrl" yaml:"iconUrl"`
}
