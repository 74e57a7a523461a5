package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OmarHamdi11/blog-rest-api/errs"
	"github.com/OmarHamdi11/blog-rest-api/models"
)

func newPostFixture() (*PostService, *mockPostRepo, *mockCategoryRepo) {
	postRepo := newMockPostRepo()
	categoryRepo := newMockCategoryRepo()
	return NewPostService(postRepo, categoryRepo), postRepo, categoryRepo
}

func addCategory(t *testing.T, repo *mockCategoryRepo, name string) models.Category {
	t.Helper()
	category := models.Category{Name: name, Description: name + " posts"}
	require.NoError(t, repo.Add(&category))
	return category
}

func validPostDTO(title string, categoryID int64) models.PostDTO {
	return models.PostDTO{
		Title:       title,
		Description: "A description long enough to pass",
		Content:     "Some content",
		CategoryID:  categoryID,
	}
}

func TestPostCreateAssignsServerID(t *testing.T) {
	service, _, categoryRepo := newPostFixture()
	category := addCategory(t, categoryRepo, "Tech")

	dto := validPostDTO("Hello", category.ID)
	dto.ID = 999 // client-supplied id must be discarded

	created, err := service.Create(dto)
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Hello", created.Title)
	assert.Equal(t, dto.Description, created.Description)
	assert.Equal(t, dto.Content, created.Content)
	assert.Equal(t, category.ID, created.CategoryID)
}

func TestPostCreateRequiresExistingCategory(t *testing.T) {
	service, _, _ := newPostFixture()

	_, err := service.Create(validPostDTO("Hello", 42))
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
	assert.Contains(t, err.Error(), "Category not found with id : '42'")
}

func TestPostCreateDuplicateTitleConflicts(t *testing.T) {
	service, _, categoryRepo := newPostFixture()
	category := addCategory(t, categoryRepo, "Tech")

	_, err := service.Create(validPostDTO("Hello", category.ID))
	require.NoError(t, err)

	_, err = service.Create(validPostDTO("Hello", category.ID))
	require.Error(t, err)
	assert.True(t, errs.IsConflict(err))
}

func TestPostCreateValidation(t *testing.T) {
	service, _, categoryRepo := newPostFixture()
	category := addCategory(t, categoryRepo, "Tech")

	dto := validPostDTO("H", category.ID) // title below minimum length
	_, err := service.Create(dto)
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))

	dto = validPostDTO("Hello", category.ID)
	dto.Description = "too short"
	_, err = service.Create(dto)
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestPostGetByIDNotFound(t *testing.T) {
	service, _, _ := newPostFixture()

	_, err := service.GetByID(7)
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestPostUpdateIsIdempotent(t *testing.T) {
	service, _, categoryRepo := newPostFixture()
	category := addCategory(t, categoryRepo, "Tech")

	created, err := service.Create(validPostDTO("Hello", category.ID))
	require.NoError(t, err)

	update := validPostDTO("Hello again", category.ID)
	first, err := service.Update(created.ID, update)
	require.NoError(t, err)

	second, err := service.Update(created.ID, update)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	stored, err := service.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, first, stored)
}

func TestPostPatchOverwritesOnlySuppliedFields(t *testing.T) {
	service, _, categoryRepo := newPostFixture()
	category := addCategory(t, categoryRepo, "Tech")

	created, err := service.Create(validPostDTO("Hello", category.ID))
	require.NoError(t, err)

	patched, err := service.Patch(created.ID, map[string]any{"title": "New Title"})
	require.NoError(t, err)

	assert.Equal(t, "New Title", patched.Title)
	assert.Equal(t, created.Description, patched.Description)
	assert.Equal(t, created.Content, patched.Content)
	assert.Equal(t, created.CategoryID, patched.CategoryID)

	stored, err := service.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, patched, stored)
}

func TestPostPatchRevalidatesMergedResult(t *testing.T) {
	service, _, categoryRepo := newPostFixture()
	category := addCategory(t, categoryRepo, "Tech")

	created, err := service.Create(validPostDTO("Hello", category.ID))
	require.NoError(t, err)

	_, err = service.Patch(created.ID, map[string]any{"title": ""})
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))

	// the failed patch must leave the stored post untouched
	stored, err := service.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello", stored.Title)
}

func TestPostPatchResolvesNewCategory(t *testing.T) {
	service, _, categoryRepo := newPostFixture()
	category := addCategory(t, categoryRepo, "Tech")

	created, err := service.Create(validPostDTO("Hello", category.ID))
	require.NoError(t, err)

	_, err = service.Patch(created.ID, map[string]any{"categoryId": float64(99)})
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))

	other := addCategory(t, categoryRepo, "Life")
	patched, err := service.Patch(created.ID, map[string]any{"categoryId": float64(other.ID)})
	require.NoError(t, err)
	assert.Equal(t, other.ID, patched.CategoryID)
}

func TestPostDelete(t *testing.T) {
	service, postRepo, categoryRepo := newPostFixture()
	category := addCategory(t, categoryRepo, "Tech")

	created, err := service.Create(validPostDTO("Hello", category.ID))
	require.NoError(t, err)

	require.NoError(t, service.Delete(created.ID))
	assert.Empty(t, postRepo.posts)

	err = service.Delete(created.ID)
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestPostGetAllPagesPartitionTheSortedSet(t *testing.T) {
	service, _, categoryRepo := newPostFixture()
	category := addCategory(t, categoryRepo, "Tech")

	for i := 1; i <= 7; i++ {
		_, err := service.Create(validPostDTO(fmt.Sprintf("Post %02d", i), category.ID))
		require.NoError(t, err)
	}

	var seen []int64
	for pageNo := 0; ; pageNo++ {
		page, err := service.GetAll(fmt.Sprintf("%d", pageNo), "3", "id", "asc")
		require.NoError(t, err)
		assert.LessOrEqual(t, len(page.Content), 3)
		assert.Equal(t, int64(7), page.TotalElements)
		assert.Equal(t, 3, page.TotalPages)

		for _, post := range page.Content {
			seen = append(seen, post.ID)
		}
		if page.Last {
			break
		}
	}

	// every post exactly once, in order, no gaps
	require.Len(t, seen, 7)
	for i, id := range seen {
		assert.Equal(t, int64(i+1), id)
	}
}

func TestPostGetAllDescendingReversesAscending(t *testing.T) {
	service, _, categoryRepo := newPostFixture()
	category := addCategory(t, categoryRepo, "Tech")

	for _, title := range []string{"Banana", "Apple", "Cherry"} {
		_, err := service.Create(validPostDTO(title, category.ID))
		require.NoError(t, err)
	}

	asc, err := service.GetAll("0", "10", "title", "asc")
	require.NoError(t, err)
	desc, err := service.GetAll("0", "10", "title", "desc")
	require.NoError(t, err)

	require.Len(t, asc.Content, 3)
	require.Len(t, desc.Content, 3)
	for i := range asc.Content {
		assert.Equal(t, asc.Content[i].Title, desc.Content[len(desc.Content)-1-i].Title)
	}
	assert.Equal(t, "Apple", asc.Content[0].Title)
}

func TestPostGetAllPageBeyondRange(t *testing.T) {
	service, _, categoryRepo := newPostFixture()
	category := addCategory(t, categoryRepo, "Tech")

	_, err := service.Create(validPostDTO("Hello", category.ID))
	require.NoError(t, err)

	page, err := service.GetAll("5", "10", "", "")
	require.NoError(t, err)
	assert.Empty(t, page.Content)
	assert.True(t, page.Last)
	assert.Equal(t, int64(1), page.TotalElements)
}

func TestPostGetByCategoryID(t *testing.T) {
	service, _, categoryRepo := newPostFixture()
	tech := addCategory(t, categoryRepo, "Tech")
	life := addCategory(t, categoryRepo, "Life")

	_, err := service.Create(validPostDTO("Tech post", tech.ID))
	require.NoError(t, err)
	_, err = service.Create(validPostDTO("Life post", life.ID))
	require.NoError(t, err)

	posts, err := service.GetByCategoryID(tech.ID)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Tech post", posts[0].Title)

	_, err = service.GetByCategoryID(42)
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}
