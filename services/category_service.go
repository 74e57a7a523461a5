package services

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/OmarHamdi11/blog-rest-api/errs"
	"github.com/OmarHamdi11/blog-rest-api/models"
)

// CategoryService implements category CRUD. Deleting a category leaves the
// posts that reference it untouched.
type CategoryService struct {
	logger       zerolog.Logger
	categoryRepo CategoryRepository
}

func NewCategoryService(categoryRepo CategoryRepository) *CategoryService {
	return &CategoryService{
		logger:       log.With().Str("serviceName", "categoryService").Logger(),
		categoryRepo: categoryRepo,
	}
}

func (s *CategoryService) Create(dto models.CategoryDTO) (models.CategoryDTO, error) {
	if err := checkStruct(dto); err != nil {
		return models.CategoryDTO{}, err
	}

	category := models.Category{
		Name:        dto.Name,
		Description: dto.Description,
	}
	if err := s.categoryRepo.Add(&category); err != nil {
		return models.CategoryDTO{}, errs.NewDatabaseError("create category", "categories", err)
	}

	s.logger.Info().Int64("categoryId", category.ID).Msg("category created")
	return models.NewCategoryDTO(category), nil
}

func (s *CategoryService) GetByID(id int64) (models.CategoryDTO, error) {
	category, err := s.findCategory(id)
	if err != nil {
		return models.CategoryDTO{}, err
	}
	return models.NewCategoryDTO(*category), nil
}

func (s *CategoryService) GetAll() ([]models.CategoryDTO, error) {
	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		return nil, errs.NewDatabaseError("find categories", "categories", err)
	}

	content := make([]models.CategoryDTO, 0, len(categories))
	for _, category := range categories {
		content = append(content, models.NewCategoryDTO(category))
	}
	return content, nil
}

func (s *CategoryService) Update(id int64, dto models.CategoryDTO) (models.CategoryDTO, error) {
	if err := checkStruct(dto); err != nil {
		return models.CategoryDTO{}, err
	}

	category, err := s.findCategory(id)
	if err != nil {
		return models.CategoryDTO{}, err
	}

	category.Name = dto.Name
	category.Description = dto.Description

	if err := s.categoryRepo.Update(category); err != nil {
		return models.CategoryDTO{}, errs.NewDatabaseError("update category", "categories", err)
	}

	return models.NewCategoryDTO(*category), nil
}

func (s *CategoryService) Delete(id int64) error {
	if _, err := s.findCategory(id); err != nil {
		return err
	}

	if err := s.categoryRepo.Delete(id); err != nil {
		return errs.NewDatabaseError("delete category", "categories", err)
	}

	s.logger.Info().Int64("categoryId", id).Msg("category deleted")
	return nil
}

func (s *CategoryService) findCategory(id int64) (*models.Category, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		return nil, errs.NewDatabaseError("find category", "categories", err)
	}
	if category == nil {
		return nil, errs.NewNotFoundError("Category", id)
	}
	return category, nil
}
