package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/healthplate/backend/internal/domain/repository"
	handlers "github.com/healthplate/backend/internal/interface/http"
	"github.com/healthplate/backend/internal/interface/middleware"
	"github.com/healthplate/backend/pkg/helpers"
)

// UserModule wires the identity routes.
// Public: POST /users/signup, POST /users/login
// Protected: GET /me, PUT /me
type UserModule struct {
	Handler *handlers.UserHandler
	Users   repository.UserRepository
	Tokens  *helpers.TokenManager
}

func NewUserModule(h *handlers.UserHandler, users repository.UserRepository, tokens *helpers.TokenManager) *UserModule {
	return &UserModule{Handler: h, Users: users, Tokens: tokens}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.POST("/signup", m.Handler.Signup)
		users.POST("/login", m.Handler.Login)
	}

	me := rg.Group("/me")
	me.Use(middleware.Auth(m.Users, m.Tokens))
	{
		me.GET("", m.Handler.GetProfile)
		me.PUT("", m.Handler.UpdateProfile)
	}
}
