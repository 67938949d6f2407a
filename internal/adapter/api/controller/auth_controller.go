package controller

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skyvoyage/booking-api/internal/activity"
	"github.com/skyvoyage/booking-api/internal/adapter/api/dto"
	"github.com/skyvoyage/booking-api/internal/adapter/repository"
	"github.com/skyvoyage/booking-api/internal/domain/user"
	"github.com/skyvoyage/booking-api/pkg/auth"
)

// AuthController gerencia as requisições relacionadas à autenticação
type AuthController struct {
	userRepository user.Repository
	jwtService     *auth.JWTService
	recorder       *activity.Recorder
}

// NewAuthController cria uma nova instância de AuthController
func NewAuthController(userRepository user.Repository, jwtService *auth.JWTService, recorder *activity.Recorder) *AuthController {
	return &AuthController{
		userRepository: userRepository,
		jwtService:     jwtService,
		recorder:       recorder,
	}
}

// Signup cria uma nova conta de usuário
// @Summary Cria uma nova conta
// @Description Registra um novo usuário com papel customer ou agent
// @Tags auth
// @Accept json
// @Produce json
// @Param signup body dto.SignupRequest true "Dados da conta"
// @Success 201 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/signup [post]
func (c *AuthController) Signup(ctx *gin.Context) {
	var request dto.SignupRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	u, err := user.NewUser(request.Username, request.Email, request.Password)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if request.Role == string(user.RoleAgent) {
		u.Role = user.RoleAgent
	}

	if err := c.userRepository.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrUserDuplicateEmail) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Conta já existe", "Email ou nome de usuário já cadastrado"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar conta", err.Error()))
		return
	}

	c.recorder.Record(ctx, fmt.Sprintf("Nova conta criada: %s", u.Username), &u.ID)

	c.respondWithSession(ctx, http.StatusCreated, u)
}

// Login autentica um usuário e retorna um token JWT
// @Summary Autentica um usuário
// @Description Verifica as credenciais e retorna um token JWT, também gravado no cookie de sessão
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Credenciais de login"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	u, err := c.userRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Credenciais inválidas", "Usuário ou senha incorretos"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao autenticar usuário", err.Error()))
		return
	}

	if !u.CheckPassword(request.Password) {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Credenciais inválidas", "Usuário ou senha incorretos"))
		return
	}

	c.recorder.Record(ctx, fmt.Sprintf("Login realizado: %s", u.Username), &u.ID)

	c.respondWithSession(ctx, http.StatusOK, u)
}

// Logout encerra a sessão do usuário limpando o cookie
// @Summary Encerra a sessão
// @Description Remove o cookie de sessão do navegador
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	if userID, ok := ctx.Get("user_id"); ok {
		id, _ := userID.(string)
		if id != "" {
			c.recorder.Record(ctx, "Logout realizado", &id)
		}
	}

	ctx.SetCookie(auth.SessionCookieName, "", -1, "/", "", false, true)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Sessão encerrada", nil))
}

// Me retorna os dados do usuário autenticado
// @Summary Dados do usuário logado
// @Description Retorna o usuário identificado pelo token de sessão
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	userID := ctx.GetString("user_id")

	u, err := c.userRepository.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Usuário não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar usuário", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(u))
}

// respondWithSession gera o token, grava o cookie de sessão e responde com
// os dados do usuário. O cookie e o corpo carregam o mesmo token: páginas e
// conexão realtime compartilham a credencial.
func (c *AuthController) respondWithSession(ctx *gin.Context, status int, u *user.User) {
	token, err := c.jwtService.GenerateToken(u)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao gerar token", err.Error()))
		return
	}

	maxAge := int(c.jwtService.Expiration().Seconds())
	ctx.SetCookie(auth.SessionCookieName, token, maxAge, "/", "", false, true)

	ctx.JSON(status, dto.LoginResponse{
		User:        dto.ToUserResponse(u),
		AccessToken: token,
		ExpiresAt:   time.Now().Add(c.jwtService.Expiration()),
	})
}
