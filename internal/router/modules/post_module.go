package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/healthplate/backend/internal/interface/http"
)

// PostModule wires the community feed.
// POST /posts/, GET /posts/, POST /posts/upload
type PostModule struct {
	Handler *handlers.PostHandler
}

func NewPostModule(h *handlers.PostHandler) *PostModule {
	return &PostModule{Handler: h}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	posts := rg.Group("/posts")
	{
		posts.POST("/", m.Handler.Create)
		posts.GET("/", m.Handler.List)
		posts.POST("/upload", m.Handler.Upload)
	}
}
