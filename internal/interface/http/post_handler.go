package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/quillpress/quillpress/internal/application"
	"github.com/quillpress/quillpress/internal/interface/middleware"
	"github.com/quillpress/quillpress/pkg/response"
	"github.com/quillpress/quillpress/pkg/validation"
)

type PostHandler struct {
	Svc    *application.PostService
	Logger *logrus.Logger
}

func NewPostHandler(svc *application.PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Svc: svc, Logger: logger}
}

// Incoming bodies deliberately have no author field; the author is always
// taken from the authenticated identity.
type createPostRequest struct {
	Title   string   `json:"title" binding:"required,max=100"`
	Content string   `json:"content" binding:"required"`
	Status  string   `json:"status" binding:"omitempty,oneof=draft published"`
	Tags    []string `json:"tags"`
}

// omitnil skips absent fields but still validates present ones, so an
// explicit empty string cannot blank a required column.
type updatePostRequest struct {
	Title   *string   `json:"title" binding:"omitnil,min=1,max=100"`
	Content *string   `json:"content" binding:"omitnil,min=1"`
	Status  *string   `json:"status" binding:"omitnil,oneof=draft published"`
	Tags    *[]string `json:"tags"`
}

// Create POST /api/posts (auth required)
func (h *PostHandler) Create(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, validation.Describe(err))
		return
	}

	p, err := h.Svc.Create(c.Request.Context(), middleware.Identity(c), application.CreatePostInput{
		Title:   req.Title,
		Content: req.Content,
		Status:  req.Status,
		Tags:    req.Tags,
	})
	if err != nil {
		h.Logger.WithError(err).Error("create post failed")
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"post": p}, nil)
}

// List GET /api/posts (auth optional)
func (h *PostHandler) List(c *gin.Context) {
	q := application.ParseListQuery(c.Request.URL.Query())

	res, err := h.Svc.List(c.Request.Context(), middleware.Identity(c), q)
	if err != nil {
		h.Logger.WithError(err).Error("list posts failed")
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"posts": res.Posts}, gin.H{
		"count":      len(res.Posts),
		"pagination": res.Pagination,
	})
}

// GetBySlug GET /api/posts/:slug (public; drafts only for their author)
func (h *PostHandler) GetBySlug(c *gin.Context) {
	p, err := h.Svc.GetBySlug(c.Request.Context(), middleware.Identity(c), c.Param("slug"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"post": p}, nil)
}

// Update PUT /api/posts/:id (auth required, author only)
func (h *PostHandler) Update(c *gin.Context) {
	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, validation.Describe(err))
		return
	}

	p, err := h.Svc.Update(c.Request.Context(), middleware.Identity(c), c.Param("id"), application.UpdatePostInput{
		Title:   req.Title,
		Content: req.Content,
		Status:  req.Status,
		Tags:    req.Tags,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"post": p}, nil)
}

// Delete DELETE /api/posts/:id (auth required, author only)
func (h *PostHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), middleware.Identity(c), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{}, nil)
}
