package service

import (
	"context"
	"strings"
	"testing"

	"github.com/bloghub/bloghub/internal/apperr"
	"github.com/bloghub/bloghub/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory fakes for the store interfaces.

type fakeUserStore struct {
	users map[string]*models.User
}

func (f *fakeUserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	return f.users[id], nil
}

type fakeBlogStore struct {
	blogs map[uuid.UUID]*models.Blog
}

func newFakeBlogStore() *fakeBlogStore {
	return &fakeBlogStore{blogs: make(map[uuid.UUID]*models.Blog)}
}

func (f *fakeBlogStore) Create(ctx context.Context, blog *models.Blog) error {
	if blog.ID == uuid.Nil {
		blog.ID = uuid.New()
	}
	if blog.Slug == "" {
		blog.Slug = strings.ToLower(strings.ReplaceAll(blog.Title, " ", "-"))
	}
	f.blogs[blog.ID] = blog
	return nil
}

func (f *fakeBlogStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Blog, error) {
	return f.blogs[id], nil
}

func (f *fakeBlogStore) FindBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	for _, blog := range f.blogs {
		if blog.Slug == slug {
			return blog, nil
		}
	}
	return nil, nil
}

func (f *fakeBlogStore) ListByAuthor(ctx context.Context, authorID uuid.UUID, page, size int) ([]models.Blog, int64, error) {
	var out []models.Blog
	for _, blog := range f.blogs {
		if blog.AuthorID == authorID {
			out = append(out, *blog)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeBlogStore) ListAll(ctx context.Context) ([]models.Blog, error) {
	var out []models.Blog
	for _, blog := range f.blogs {
		out = append(out, *blog)
	}
	return out, nil
}

func (f *fakeBlogStore) UpdateStatus(ctx context.Context, id uuid.UUID, status int) error {
	f.blogs[id].Status = status
	return nil
}

func (f *fakeBlogStore) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.blogs, id)
	return nil
}

type fakeCategoryResolver struct {
	categories map[string]models.Category
}

func (f *fakeCategoryResolver) FindByNames(ctx context.Context, names []string) ([]models.Category, error) {
	var out []models.Category
	for _, name := range names {
		if cat, ok := f.categories[name]; ok {
			out = append(out, cat)
		}
	}
	return out, nil
}

type fakeTagResolver struct {
	tags      map[string]*models.Tag
	creations int
	nextID    uint
}

func newFakeTagResolver() *fakeTagResolver {
	return &fakeTagResolver{tags: make(map[string]*models.Tag)}
}

func (f *fakeTagResolver) GetOrCreate(ctx context.Context, name string) (*models.Tag, error) {
	if tag, ok := f.tags[name]; ok {
		return tag, nil
	}
	f.nextID++
	f.creations++
	tag := &models.Tag{ID: f.nextID, Name: name}
	f.tags[name] = tag
	return tag, nil
}

type fakeLikeCounter struct {
	counts map[uuid.UUID]int64
}

func (f *fakeLikeCounter) CountLikes(ctx context.Context, blogID uuid.UUID) (int64, error) {
	return f.counts[blogID], nil
}

type blogFixture struct {
	service *BlogService
	users   *fakeUserStore
	blogs   *fakeBlogStore
	cats    *fakeCategoryResolver
	tags    *fakeTagResolver
	likes   *fakeLikeCounter
	author  *models.User
}

func newBlogFixture() *blogFixture {
	author := &models.User{ID: uuid.New(), Role: models.RoleAuthor, Email: "a@x.com"}

	users := &fakeUserStore{users: map[string]*models.User{author.ID.String(): author}}
	blogs := newFakeBlogStore()
	cats := &fakeCategoryResolver{categories: map[string]models.Category{
		"tech": {ID: 1, Name: "tech", Slug: "tech"},
	}}
	tags := newFakeTagResolver()
	likes := &fakeLikeCounter{counts: make(map[uuid.UUID]int64)}

	return &blogFixture{
		service: NewBlogService(users, blogs, cats, tags, likes),
		users:   users,
		blogs:   blogs,
		cats:    cats,
		tags:    tags,
		likes:   likes,
		author:  author,
	}
}

func validInput() CreateBlogInput {
	return CreateBlogInput{Title: "My First Post", Content: "hello", Status: models.StatusDraft}
}

func TestCreateResolvesCategoriesCaseFolded(t *testing.T) {
	fx := newBlogFixture()
	ctx := context.Background()

	blog, err := fx.service.Create(ctx, fx.author.ID.String(), validInput(),
		[]string{"Tech", "TECH"}, nil)
	require.NoError(t, err)

	// Both spellings fold to the single seeded category.
	require.Len(t, blog.Categories, 1)
	assert.Equal(t, "tech", blog.Categories[0].Name)
}

func TestCreateUnknownCategoryAssociatesNothing(t *testing.T) {
	fx := newBlogFixture()
	ctx := context.Background()

	blog, err := fx.service.Create(ctx, fx.author.ID.String(), validInput(),
		[]string{"no-such-category"}, nil)
	require.NoError(t, err, "an unknown category name is not an error")
	assert.Empty(t, blog.Categories)
}

func TestCreateTagsGetOrCreate(t *testing.T) {
	fx := newBlogFixture()
	ctx := context.Background()

	blog, err := fx.service.Create(ctx, fx.author.ID.String(), validInput(),
		nil, []string{"Go", "go", "redis"})
	require.NoError(t, err)

	// "Go" and "go" fold to one tag; unseen names are created exactly once.
	require.Len(t, blog.Tags, 2)
	assert.Equal(t, 2, fx.tags.creations)

	in2 := validInput()
	in2.Title = "Second Post"
	_, err = fx.service.Create(ctx, fx.author.ID.String(), in2, nil, []string{"GO"})
	require.NoError(t, err)
	assert.Equal(t, 2, fx.tags.creations, "reusing a tag name must not create a duplicate")
}

func TestCreateAuthorNotFound(t *testing.T) {
	fx := newBlogFixture()

	_, err := fx.service.Create(context.Background(), uuid.NewString(), validInput(), nil, nil)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestCreateValidation(t *testing.T) {
	fx := newBlogFixture()
	ctx := context.Background()

	in := validInput()
	in.Title = "  "
	_, err := fx.service.Create(ctx, fx.author.ID.String(), in, nil, nil)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	in = validInput()
	in.Content = ""
	_, err = fx.service.Create(ctx, fx.author.ID.String(), in, nil, nil)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	in = validInput()
	in.Status = 7
	_, err = fx.service.Create(ctx, fx.author.ID.String(), in, nil, nil)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestDeleteOwnership(t *testing.T) {
	fx := newBlogFixture()
	ctx := context.Background()

	other := &models.User{ID: uuid.New(), Role: models.RoleAuthor}
	admin := &models.User{ID: uuid.New(), Role: models.RoleAdmin}

	blog, err := fx.service.Create(ctx, fx.author.ID.String(), validInput(), nil, nil)
	require.NoError(t, err)

	// A non-owner, non-admin is rejected and the blog survives.
	err = fx.service.Delete(ctx, blog.ID.String(), other)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindPermission))
	_, ok := fx.blogs.blogs[blog.ID]
	assert.True(t, ok)

	// The owner succeeds.
	require.NoError(t, fx.service.Delete(ctx, blog.ID.String(), fx.author))
	_, ok = fx.blogs.blogs[blog.ID]
	assert.False(t, ok)

	// An admin succeeds on someone else's blog.
	in2 := validInput()
	in2.Title = "Another Post"
	blog2, err := fx.service.Create(ctx, fx.author.ID.String(), in2, nil, nil)
	require.NoError(t, err)
	require.NoError(t, fx.service.Delete(ctx, blog2.ID.String(), admin))
}

func TestDeleteAbsentBlogIsNotFound(t *testing.T) {
	fx := newBlogFixture()

	err := fx.service.Delete(context.Background(), uuid.NewString(), fx.author)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestChangeStatus(t *testing.T) {
	fx := newBlogFixture()
	ctx := context.Background()

	blog, err := fx.service.Create(ctx, fx.author.ID.String(), validInput(), nil, nil)
	require.NoError(t, err)

	require.NoError(t, fx.service.ChangeStatus(ctx, blog.ID.String(), models.StatusPublished))
	assert.Equal(t, models.StatusPublished, fx.blogs.blogs[blog.ID].Status)

	err = fx.service.ChangeStatus(ctx, blog.ID.String(), 5)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	err = fx.service.ChangeStatus(ctx, uuid.NewString(), models.StatusDraft)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestGetBySlug(t *testing.T) {
	fx := newBlogFixture()
	ctx := context.Background()

	blog, err := fx.service.Create(ctx, fx.author.ID.String(), validInput(), nil, nil)
	require.NoError(t, err)
	fx.likes.counts[blog.ID] = 4

	got, err := fx.service.GetBySlug(ctx, blog.Slug)
	require.NoError(t, err)
	assert.Equal(t, blog.ID, got.ID)
	assert.Equal(t, int64(4), got.Likes)

	_, err = fx.service.GetBySlug(ctx, "no-such-slug")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}
