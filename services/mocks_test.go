package services

import (
	"fmt"
	"sort"

	"github.com/OmarHamdi11/blog-rest-api/models"
)

// In-memory repository implementations backing the service tests. Paged
// finders honor the resolved ordering the same way the database does.

type mockPostRepo struct {
	posts  map[int64]models.Post
	nextID int64
}

func newMockPostRepo() *mockPostRepo {
	return &mockPostRepo{
		posts:  make(map[int64]models.Post),
		nextID: 1,
	}
}

func (m *mockPostRepo) FindByID(id int64) (*models.Post, error) {
	post, exists := m.posts[id]
	if !exists {
		return nil, nil
	}
	return &post, nil
}

func (m *mockPostRepo) FindPage(p Pageable) ([]models.Post, int64, error) {
	all := m.sorted(p)
	total := int64(len(all))
	return pageSlice(all, p), total, nil
}

func (m *mockPostRepo) FindByCategoryID(categoryID int64) ([]models.Post, error) {
	var posts []models.Post
	for _, post := range m.sorted(Pageable{Column: "id"}) {
		if post.CategoryID == categoryID {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

func (m *mockPostRepo) ExistsByTitle(title string, excludeID int64) (bool, error) {
	for _, post := range m.posts {
		if post.Title == title && post.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockPostRepo) Add(post *models.Post) error {
	post.ID = m.nextID
	m.nextID++
	m.posts[post.ID] = *post
	return nil
}

func (m *mockPostRepo) Update(post *models.Post) error {
	m.posts[post.ID] = *post
	return nil
}

func (m *mockPostRepo) Delete(id int64) error {
	delete(m.posts, id)
	return nil
}

func (m *mockPostRepo) sorted(p Pageable) []models.Post {
	var posts []models.Post
	for _, post := range m.posts {
		posts = append(posts, post)
	}
	sort.Slice(posts, func(i, j int) bool {
		a, b := posts[i], posts[j]
		ka, kb := postSortKey(a, p.Column), postSortKey(b, p.Column)
		if ka == kb {
			return a.ID < b.ID
		}
		if p.Desc {
			return ka > kb
		}
		return ka < kb
	})
	return posts
}

func postSortKey(post models.Post, column string) string {
	switch column {
	case "title":
		return post.Title
	case "description":
		return post.Description
	case "content":
		return post.Content
	case "category_id":
		return fmt.Sprintf("%020d", post.CategoryID)
	default:
		return fmt.Sprintf("%020d", post.ID)
	}
}

type mockCommentRepo struct {
	comments map[int64]models.Comment
	nextID   int64
}

func newMockCommentRepo() *mockCommentRepo {
	return &mockCommentRepo{
		comments: make(map[int64]models.Comment),
		nextID:   1,
	}
}

func (m *mockCommentRepo) FindByID(id int64) (*models.Comment, error) {
	comment, exists := m.comments[id]
	if !exists {
		return nil, nil
	}
	return &comment, nil
}

func (m *mockCommentRepo) FindPageByPostID(postID int64, p Pageable) ([]models.Comment, int64, error) {
	var owned []models.Comment
	for _, comment := range m.comments {
		if comment.PostID == postID {
			owned = append(owned, comment)
		}
	}
	sort.Slice(owned, func(i, j int) bool {
		a, b := owned[i], owned[j]
		ka, kb := commentSortKey(a, p.Column), commentSortKey(b, p.Column)
		if ka == kb {
			return a.ID < b.ID
		}
		if p.Desc {
			return ka > kb
		}
		return ka < kb
	})
	total := int64(len(owned))
	return pageSlice(owned, p), total, nil
}

func commentSortKey(comment models.Comment, column string) string {
	switch column {
	case "name":
		return comment.Name
	case "email":
		return comment.Email
	case "body":
		return comment.Body
	default:
		return fmt.Sprintf("%020d", comment.ID)
	}
}

func (m *mockCommentRepo) Add(comment *models.Comment) error {
	comment.ID = m.nextID
	m.nextID++
	m.comments[comment.ID] = *comment
	return nil
}

func (m *mockCommentRepo) Update(comment *models.Comment) error {
	m.comments[comment.ID] = *comment
	return nil
}

func (m *mockCommentRepo) Delete(id int64) error {
	delete(m.comments, id)
	return nil
}

type mockCategoryRepo struct {
	categories map[int64]models.Category
	nextID     int64
}

func newMockCategoryRepo() *mockCategoryRepo {
	return &mockCategoryRepo{
		categories: make(map[int64]models.Category),
		nextID:     1,
	}
}

func (m *mockCategoryRepo) FindByID(id int64) (*models.Category, error) {
	category, exists := m.categories[id]
	if !exists {
		return nil, nil
	}
	return &category, nil
}

func (m *mockCategoryRepo) FindAll() ([]models.Category, error) {
	var categories []models.Category
	for _, category := range m.categories {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].ID < categories[j].ID
	})
	return categories, nil
}

func (m *mockCategoryRepo) Add(category *models.Category) error {
	category.ID = m.nextID
	m.nextID++
	m.categories[category.ID] = *category
	return nil
}

func (m *mockCategoryRepo) Update(category *models.Category) error {
	m.categories[category.ID] = *category
	return nil
}

func (m *mockCategoryRepo) Delete(id int64) error {
	delete(m.categories, id)
	return nil
}

type mockUserRepo struct {
	users  map[int64]models.User
	nextID int64
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		users:  make(map[int64]models.User),
		nextID: 1,
	}
}

func (m *mockUserRepo) FindByUsernameOrEmail(login string) (*models.User, error) {
	for _, user := range m.users {
		if user.Username == login || user.Email == login {
			return &user, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) ExistsByUsername(username string) (bool, error) {
	for _, user := range m.users {
		if user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepo) ExistsByEmail(email string) (bool, error) {
	for _, user := range m.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepo) Add(user *models.User) error {
	user.ID = m.nextID
	m.nextID++
	m.users[user.ID] = *user
	return nil
}

func pageSlice[T any](all []T, p Pageable) []T {
	if p.PageSize <= 0 {
		return all
	}
	start := p.Offset()
	if start >= len(all) {
		return nil
	}
	end := start + p.PageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end]
}
