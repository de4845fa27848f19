package models

import "time"

// Blog is a blog post as read back from the database. Categories is the
// comma-joined list of category names in the order they were attached.
type Blog struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Author           string    `json:"author"`
	Content          string    `json:"content"`
	ShortDescription string    `json:"short_description"`
	VendorID         int64     `json:"vendor_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
	Categories       string    `json:"categories"`
}

// BlogRequest is the body of POST /api/blogs and PUT /api/blogs/{id}.
type BlogRequest struct {
	Title            string   `json:"title" validate:"required"`
	Author           string   `json:"author" validate:"required"`
	Content          string   `json:"content" validate:"required"`
	ShortDescription string   `json:"shortDescription" validate:"required"`
	VendorID         FlexInt  `json:"vendor_id" validate:"gt=0"`
	Categories       []string `json:"categories" validate:"required,min=1"`
}

// BlogInput is a validated BlogRequest ready for the repository.
type BlogInput struct {
	Title            string
	Author           string
	Content          string
	ShortDescription string
	VendorID         int64
	Categories       []string
}

type CreateBlogResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	BlogID  int64  `json:"blogId"`
}
