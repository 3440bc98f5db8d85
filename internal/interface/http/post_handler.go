package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	postapp "github.com/healthplate/backend/internal/application"
	"github.com/healthplate/backend/internal/domain/entity"
	"github.com/healthplate/backend/pkg/response"
	"github.com/healthplate/backend/pkg/validation"
)

type PostHandler struct {
	Svc    *postapp.PostService
	Logger *logrus.Logger
}

func NewPostHandler(svc *postapp.PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Svc: svc, Logger: logger}
}

type createPostRequest struct {
	UserID   string   `json:"user_id" binding:"required"`
	UserName string   `json:"user_name" binding:"required"`
	Type     string   `json:"type" binding:"required"`
	Title    string   `json:"title"`
	Content  string   `json:"content" binding:"required"`
	ImageURL string   `json:"image_url"`
	Tags     []string `json:"tags"`
	IsPublic *bool    `json:"is_public" binding:"required"`
}

type postResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	UserName      string    `json:"user_name"`
	Type          string    `json:"type"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	ImageURL      string    `json:"image_url"`
	Tags          []string  `json:"tags"`
	IsPublic      bool      `json:"is_public"`
	LikesCount    int       `json:"likes_count"`
	CommentsCount int       `json:"comments_count"`
	CreatedAt     time.Time `json:"created_at"`
}

func toPostResponse(p entity.Post) postResponse {
	return postResponse{
		ID:            p.ID,
		UserID:        p.UserID,
		UserName:      p.UserName,
		Type:          p.Type,
		Title:         p.Title,
		Content:       p.Content,
		ImageURL:      p.ImageURL,
		Tags:          p.Tags,
		IsPublic:      p.IsPublic,
		LikesCount:    p.LikesCount,
		CommentsCount: p.CommentsCount,
		CreatedAt:     p.CreatedAt,
	}
}

// Create POST /posts/
func (h *PostHandler) Create(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	post := &entity.Post{
		UserID:   req.UserID,
		UserName: req.UserName,
		Type:     req.Type,
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
		Tags:     req.Tags,
		IsPublic: *req.IsPublic,
	}
	if err := h.Svc.CreatePost(c.Request.Context(), post); err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to create post", nil)
		return
	}

	c.JSON(http.StatusCreated, toPostResponse(*post))
}

// List GET /posts/
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.Svc.ListPosts(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list posts", nil)
		return
	}

	out := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, toPostResponse(p))
	}
	c.JSON(http.StatusOK, out)
}

// Upload POST /posts/upload (multipart field "file")
func (h *PostHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", map[string]string{"file": "is required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "upload failed", nil)
		return
	}
	defer func() { _ = f.Close() }()

	url, err := h.Svc.UploadImage(c.Request.Context(), f, fh.Filename, fh.Header.Get("Content-Type"))
	if errors.Is(err, postapp.ErrUploadsDisabled) {
		response.Error(c, http.StatusInternalServerError, "uploads not configured", nil)
		return
	}
	if err != nil {
		h.Logger.WithError(err).Error("post image upload failed")
		response.Error(c, http.StatusInternalServerError, "upload failed", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"file_url": url})
}
