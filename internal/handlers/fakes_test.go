package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"blogger/internal/apperr"
	"blogger/internal/auth"
	"blogger/internal/handlers"
	"blogger/internal/models"
	"blogger/internal/routes"

	"github.com/gorilla/mux"
)

const testToken = "dummy-token"

type fakeBlogs struct {
	created models.BlogRequest
	err     error
}

func (f *fakeBlogs) Create(_ context.Context, req models.BlogRequest) (int64, error) {
	f.created = req
	if f.err != nil {
		return 0, f.err
	}
	return 11, nil
}

func (f *fakeBlogs) Update(_ context.Context, id int64, _ models.BlogRequest) error {
	if id != 1 {
		return apperr.NotFound("Blog not found")
	}
	return f.err
}

func (f *fakeBlogs) Delete(_ context.Context, id int64) error {
	if id != 1 {
		return apperr.NotFound("Blog not found")
	}
	return nil
}

func (f *fakeBlogs) List(context.Context) ([]models.Blog, error) {
	return []models.Blog{{ID: 1, Title: "T", Categories: "Tech,Go"}}, nil
}

func (f *fakeBlogs) Get(_ context.Context, id int64) (*models.Blog, error) {
	if id != 1 {
		return nil, apperr.NotFound("Blog post not found")
	}
	return &models.Blog{ID: 1, Title: "T"}, nil
}

type fakeCategories struct{}

func (fakeCategories) List(context.Context) ([]models.Category, error) {
	return []models.Category{{ID: 1, Name: "Go"}}, nil
}

func (fakeCategories) Create(_ context.Context, req models.CategoryRequest) (*models.Category, error) {
	if req.Name == "Go" {
		return nil, apperr.Duplicate("Category already exists", "")
	}
	return &models.Category{ID: 2, Name: req.Name}, nil
}

func (fakeCategories) Update(_ context.Context, id int64, req models.CategoryRequest) (*models.Category, error) {
	return &models.Category{ID: id, Name: req.Name}, nil
}

func (fakeCategories) Delete(_ context.Context, id int64) error {
	if id != 1 {
		return apperr.NotFound("Category not found")
	}
	return nil
}

type fakeVendors struct{}

func (fakeVendors) List(context.Context) ([]models.Vendor, error) { return []models.Vendor{}, nil }

func (fakeVendors) Get(_ context.Context, id int64) (*models.Vendor, error) {
	return nil, apperr.NotFound("Vendor not found")
}

func (fakeVendors) Create(_ context.Context, req models.VendorRequest) (*models.Vendor, error) {
	if req.Name == "" {
		return nil, apperr.Validation("Validation failed", "Vendor name is required", "name")
	}
	return &models.Vendor{ID: 1, Name: req.Name, Status: models.VendorActive}, nil
}

func (fakeVendors) Update(_ context.Context, id int64, req models.VendorRequest) (*models.Vendor, error) {
	return &models.Vendor{ID: id, Name: req.Name}, nil
}

func (fakeVendors) Delete(context.Context, int64) error { return nil }

type fakeAds struct {
	saved models.SaveAdsRequest
}

func (f *fakeAds) List(context.Context) ([]models.Ad, error) { return []models.Ad{}, nil }

func (f *fakeAds) ListByVendor(_ context.Context, vendorID int64) ([]models.Ad, error) {
	return []models.Ad{{ID: 1, VendorID: vendorID, LocationID: "header", VendorName: "Acme"}}, nil
}

func (f *fakeAds) SaveAll(_ context.Context, req models.SaveAdsRequest) error {
	f.saved = req
	return nil
}

func (f *fakeAds) Delete(_ context.Context, id int64) error {
	if id != 1 {
		return apperr.NotFound("Ad not found")
	}
	return nil
}

type fakeLogin struct{}

func (fakeLogin) Login(_ context.Context, username, password string) (*models.LoginResponse, error) {
	if username != "admin" || password != "pw" {
		return nil, apperr.Unauthenticated("Invalid credentials")
	}
	return &models.LoginResponse{
		Token: testToken,
		User:  models.LoginUser{ID: 1, Username: "admin", Role: "admin"},
	}, nil
}

type env struct {
	router *mux.Router
	blogs  *fakeBlogs
	ads    *fakeAds
}

func newEnv() *env {
	e := &env{router: mux.NewRouter(), blogs: &fakeBlogs{}, ads: &fakeAds{}}
	routes.InitRoutes(e.router, routes.Handlers{
		Auth:     handlers.NewAuthHandler(fakeLogin{}),
		Blog:     handlers.NewBlogHandler(e.blogs),
		Category: handlers.NewCategoryHandler(fakeCategories{}),
		Vendor:   handlers.NewVendorHandler(fakeVendors{}),
		Ad:       handlers.NewAdHandler(e.ads),
	}, auth.NewStaticToken(testToken))
	return e
}

// do sends a request; pass token "" for an anonymous call.
func (e *env) do(method, path, body, token string) *httptest.ResponseRecorder {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, r)
	return rec
}
