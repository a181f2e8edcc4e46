package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/conectaedu/frontend/session"
	"github.com/conectaedu/frontend/utils"
)

// AuthController handles login and logout against the portal API.
type AuthController struct {
	api     PortalAPI
	session *session.Holder
}

// NewAuthController creates a new AuthController instance.
func NewAuthController(api PortalAPI, holder *session.Holder) *AuthController {
	return &AuthController{api: api, session: holder}
}

type loginPage struct {
	Title    string
	Shell    Shell
	Username string
	Error    string
}

type loginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func (a *AuthController) render(ctx *gin.Context, status int, username, msg string) {
	ctx.HTML(status, "login.html", loginPage{
		Title:    "Entrar",
		Shell:    shellFor(ctx, a.session, "login"),
		Username: username,
		Error:    msg,
	})
}

// LoginPage renders the empty form.
func (a *AuthController) LoginPage(ctx *gin.Context) {
	a.render(ctx, http.StatusOK, "", "")
}

// Login exchanges the submitted credentials for a token and opens the session.
func (a *AuthController) Login(ctx *gin.Context) {
	var req loginForm
	if err := ctx.ShouldBind(&req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			a.render(ctx, http.StatusBadRequest, req.Username, msgFillLogin)
			return
		}
		a.render(ctx, http.StatusBadRequest, req.Username, "Requisição inválida.")
		return
	}

	token, err := a.api.Login(ctx.Request.Context(), req.Username, req.Password)
	if detached(ctx) {
		return
	}
	if err != nil {
		logUpstream(ctx, "login", err)
		a.render(ctx, failureStatus(err), req.Username, errorMessage(err))
		return
	}

	a.session.Login(ctx, token)
	utils.Sugar.Infow("login", "user", req.Username, "request_id", ctx.GetString(utils.ContextRequestIDKey))
	ctx.Redirect(http.StatusSeeOther, "/admin")
}

// LoginRateLimited re-renders the form when a client submits too often.
func (a *AuthController) LoginRateLimited(ctx *gin.Context) {
	a.render(ctx, http.StatusTooManyRequests, ctx.PostForm("username"), msgTooMany)
}

// Logout drops the session and sends the browser home with a full page load.
func (a *AuthController) Logout(ctx *gin.Context) {
	a.session.Logout(ctx)
	ctx.Redirect(http.StatusSeeOther, "/")
}
