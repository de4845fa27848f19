package services

import (
	"context"

	"blogger/internal/models"
	"blogger/internal/repository"
)

type fakeBlogRepo struct {
	created  *models.BlogInput
	updated  *models.BlogInput
	blogs    map[int64]*models.Blog
	nextID   int64
	writeErr error
	readErr  error
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{blogs: map[int64]*models.Blog{}, nextID: 1}
}

func (f *fakeBlogRepo) Create(_ context.Context, in *models.BlogInput) (int64, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	f.created = in
	id := f.nextID
	f.nextID++
	f.blogs[id] = &models.Blog{ID: id, Title: in.Title}
	return id, nil
}

func (f *fakeBlogRepo) Update(_ context.Context, id int64, in *models.BlogInput) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	if _, ok := f.blogs[id]; !ok {
		return repository.ErrNotFound
	}
	f.updated = in
	return nil
}

func (f *fakeBlogRepo) Delete(_ context.Context, id int64) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	if _, ok := f.blogs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.blogs, id)
	return nil
}

func (f *fakeBlogRepo) List(_ context.Context) ([]models.Blog, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	out := []models.Blog{}
	for _, b := range f.blogs {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeBlogRepo) GetByID(_ context.Context, id int64) (*models.Blog, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	b, ok := f.blogs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return b, nil
}

type fakeAdRepo struct {
	saved      map[int64][]models.AdEntry
	vendors    map[int64]bool
	replaceErr error
	deleted    []int64
}

func (f *fakeAdRepo) List(context.Context) ([]models.Ad, error) { return []models.Ad{}, nil }

func (f *fakeAdRepo) ListByVendor(context.Context, int64) ([]models.Ad, error) {
	return []models.Ad{}, nil
}

func (f *fakeAdRepo) ReplaceForVendor(_ context.Context, vendorID int64, entries []models.AdEntry) error {
	if !f.vendors[vendorID] {
		return repository.ErrNotFound
	}
	if f.replaceErr != nil {
		return f.replaceErr
	}
	if f.saved == nil {
		f.saved = map[int64][]models.AdEntry{}
	}
	f.saved[vendorID] = entries
	return nil
}

func (f *fakeAdRepo) Delete(_ context.Context, id int64) error {
	if id != 1 {
		return repository.ErrNotFound
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeCategoryRepo struct {
	rows   map[int64]string
	nextID int64
}

func newFakeCategoryRepo(names ...string) *fakeCategoryRepo {
	f := &fakeCategoryRepo{rows: map[int64]string{}, nextID: 1}
	for _, n := range names {
		f.rows[f.nextID] = n
		f.nextID++
	}
	return f
}

func (f *fakeCategoryRepo) List(context.Context) ([]models.Category, error) {
	out := []models.Category{}
	for id, n := range f.rows {
		out = append(out, models.Category{ID: id, Name: n})
	}
	return out, nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id int64) (*models.Category, error) {
	n, ok := f.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &models.Category{ID: id, Name: n}, nil
}

func (f *fakeCategoryRepo) NameTaken(_ context.Context, name string, exceptID int64) (bool, error) {
	for id, n := range f.rows {
		if n == name && id != exceptID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCategoryRepo) Create(_ context.Context, name string) (*models.Category, error) {
	id := f.nextID
	f.nextID++
	f.rows[id] = name
	return &models.Category{ID: id, Name: name}, nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, id int64, name string) (*models.Category, error) {
	if _, ok := f.rows[id]; !ok {
		return nil, repository.ErrNotFound
	}
	f.rows[id] = name
	return &models.Category{ID: id, Name: name}, nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

type fakeVendorRepo struct {
	rows      map[int64]*models.Vendor
	nextID    int64
	createErr error
}

func newFakeVendorRepo() *fakeVendorRepo {
	return &fakeVendorRepo{rows: map[int64]*models.Vendor{}, nextID: 1}
}

func (f *fakeVendorRepo) List(context.Context) ([]models.Vendor, error) {
	out := []models.Vendor{}
	for _, v := range f.rows {
		out = append(out, *v)
	}
	return out, nil
}

func (f *fakeVendorRepo) GetByID(_ context.Context, id int64) (*models.Vendor, error) {
	v, ok := f.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return v, nil
}

func (f *fakeVendorRepo) EmailTaken(_ context.Context, email string, exceptID int64) (bool, error) {
	for id, v := range f.rows {
		if v.Email != nil && *v.Email == email && id != exceptID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeVendorRepo) Create(_ context.Context, v *models.Vendor) (*models.Vendor, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *v
	out.ID = f.nextID
	f.nextID++
	f.rows[out.ID] = &out
	return &out, nil
}

func (f *fakeVendorRepo) Update(_ context.Context, v *models.Vendor) (*models.Vendor, error) {
	if _, ok := f.rows[v.ID]; !ok {
		return nil, repository.ErrNotFound
	}
	out := *v
	f.rows[v.ID] = &out
	return &out, nil
}

func (f *fakeVendorRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

type fakeUserRepo struct {
	users    map[string]*models.User
	lastUser *models.User
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) CreateUser(_ context.Context, u *models.User) error {
	u.ID = int64(len(f.users) + 1)
	f.users[u.Username] = u
	f.lastUser = u
	return nil
}
