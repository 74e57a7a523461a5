package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OmarHamdi11/blog-rest-api/errs"
	"github.com/OmarHamdi11/blog-rest-api/models"
)

func TestCategoryCRUD(t *testing.T) {
	repo := newMockCategoryRepo()
	service := NewCategoryService(repo)

	created, err := service.Create(models.CategoryDTO{Name: "Tech", Description: "Technology posts"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	got, err := service.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	updated, err := service.Update(created.ID, models.CategoryDTO{Name: "Technology", Description: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Technology", updated.Name)

	all, err := service.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Technology", all[0].Name)

	require.NoError(t, service.Delete(created.ID))

	_, err = service.GetByID(created.ID)
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestCategoryValidation(t *testing.T) {
	service := NewCategoryService(newMockCategoryRepo())

	_, err := service.Create(models.CategoryDTO{Description: "no name"})
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestCategoryNotFoundOperations(t *testing.T) {
	service := NewCategoryService(newMockCategoryRepo())

	_, err := service.Update(9, models.CategoryDTO{Name: "Tech"})
	assert.True(t, errs.IsNotFound(err))

	err = service.Delete(9)
	assert.True(t, errs.IsNotFound(err))
}
