package service

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/gin-gonic/gin/binding"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/aliiaycicek/My-Portfolio/internal/dto"
	"github.com/aliiaycicek/My-Portfolio/internal/logger"
	"github.com/aliiaycicek/My-Portfolio/internal/mapper"
	"github.com/aliiaycicek/My-Portfolio/internal/models"
)

//go:embed seed/default.yaml
var defaultSeed []byte

// SeedDocument описывает YAML файл с начальными данными.
type SeedDocument struct {
	Educations  []dto.EducationDTO  `yaml:"educations"`
	Experiences []dto.ExperienceDTO `yaml:"experiences"`
	Projects    []dto.ProjectDTO    `yaml:"projects"`
	Skills      []dto.SkillDTO      `yaml:"skills"`
}

// SeedRepository - часть репозитория, нужная для загрузки данных.
type SeedRepository[T any] interface {
	GetAll(ctx context.Context) ([]T, error)
	Add(ctx context.Context, entity T) (T, error)
}

// SeedService заполняет пустые коллекции начальными данными.
type SeedService struct {
	educations  SeedRepository[models.Education]
	experiences SeedRepository[models.Experience]
	projects    SeedRepository[models.Project]
	skills      SeedRepository[models.Skill]
}

// NewSeedService создаёт новый seed сервис.
func NewSeedService(
	educations SeedRepository[models.Education],
	experiences SeedRepository[models.Experience],
	projects SeedRepository[models.Project],
	skills SeedRepository[models.Skill],
) *SeedService {
	return &SeedService{
		educations:  educations,
		experiences: experiences,
		projects:    projects,
		skills:      skills,
	}
}

// ParseSeed разбирает YAML и проверяет обязательные поля каждой записи.
func ParseSeed(raw []byte) (*SeedDocument, error) {
	var doc SeedDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("seed: не удалось разобрать YAML: %w", err)
	}

	if err := validateAll("educations", doc.Educations); err != nil {
		return nil, err
	}
	if err := validateAll("experiences", doc.Experiences); err != nil {
		return nil, err
	}
	if err := validateAll("projects", doc.Projects); err != nil {
		return nil, err
	}
	if err := validateAll("skills", doc.Skills); err != nil {
		return nil, err
	}

	return &doc, nil
}

// LoadSeedFile читает seed файл. Пустой путь означает встроенные данные.
func LoadSeedFile(path string) (*SeedDocument, error) {
	if path == "" {
		return DefaultSeed()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: не удалось прочитать %s: %w", path, err)
	}
	return ParseSeed(raw)
}

// DefaultSeed возвращает встроенный набор данных.
func DefaultSeed() (*SeedDocument, error) {
	return ParseSeed(defaultSeed)
}

// Seed добавляет записи документа в коллекции, которые сейчас пусты.
// Непустые коллекции не трогаются, поэтому повторный вызов ничего не дублирует.
func (s *SeedService) Seed(ctx context.Context, doc *SeedDocument) (dto.SeedResponse, error) {
	var (
		result dto.SeedResponse
		err    error
	)

	if result.Educations, err = seedCollection(ctx, "educations", s.educations, mapper.Education, doc.Educations); err != nil {
		return result, err
	}
	if result.Experiences, err = seedCollection(ctx, "experiences", s.experiences, mapper.Experience, doc.Experiences); err != nil {
		return result, err
	}
	if result.Projects, err = seedCollection(ctx, "projects", s.projects, mapper.Project, doc.Projects); err != nil {
		return result, err
	}
	if result.Skills, err = seedCollection(ctx, "skills", s.skills, mapper.Skill, doc.Skills); err != nil {
		return result, err
	}

	logger.L().WithFields(logrus.Fields{
		"educations":  result.Educations,
		"experiences": result.Experiences,
		"projects":    result.Projects,
		"skills":      result.Skills,
	}).Info("seed: начальные данные загружены")

	result.Message = "начальные данные загружены"
	return result, nil
}

func seedCollection[T any, D any](
	ctx context.Context,
	name string,
	repo SeedRepository[T],
	profile mapper.Profile[T, D],
	items []D,
) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	existing, err := repo.GetAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("seed: %s: %w", name, err)
	}
	if len(existing) > 0 {
		logger.L().WithField("collection", name).Debug("seed: коллекция не пуста, пропускаем")
		return 0, nil
	}

	for i, entity := range profile.ToEntities(items) {
		if _, err := repo.Add(ctx, entity); err != nil {
			return i, fmt.Errorf("seed: %s: %w", name, err)
		}
	}
	return len(items), nil
}

func validateAll[D any](name string, items []D) error {
	for i := range items {
		if err := binding.Validator.ValidateStruct(&items[i]); err != nil {
			return fmt.Errorf("seed: неверная запись %s[%d]: %w", name, i, err)
		}
	}
	return nil
}
