package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/conectaedu/frontend/models"
	"github.com/conectaedu/frontend/portal"
	"github.com/conectaedu/frontend/session"
	"github.com/conectaedu/frontend/utils"
)

// PortalAPI is the subset of the portal client the views use.
type PortalAPI interface {
	Login(ctx context.Context, username, password string) (string, error)
	ListPosts(ctx context.Context, token string) ([]models.RawPost, error)
	FindPost(ctx context.Context, token, id string) (models.RawPost, error)
	CreatePost(ctx context.Context, token string, in models.PostInput) error
	UpdatePost(ctx context.Context, token, id string, in models.PostInput) error
	DeletePost(ctx context.Context, token, id string) error
}

// ViewState is where a data-bearing view is in its fetch cycle.
type ViewState string

const (
	StateIdle    ViewState = "idle"
	StateLoading ViewState = "loading"
	StateReady   ViewState = "ready"
	StateEmpty   ViewState = "empty"
	StateError   ViewState = "error"
)

// View tracks idle -> loading -> ready|empty|error for one render.
type View struct {
	State ViewState
	Error string

	err error
}

// Begin moves the view to loading. Called on mount and on an explicit re-fetch.
func (v *View) Begin() {
	v.State = StateLoading
	v.Error = ""
	v.err = nil
}

// Settle records the outcome of the fetch. n is the size of the set about to render.
func (v *View) Settle(n int, err error) {
	if v.State != StateLoading {
		return
	}
	switch {
	case err != nil:
		v.State = StateError
		v.Error = errorMessage(err)
		v.err = err
	case n == 0:
		v.State = StateEmpty
	default:
		v.State = StateReady
	}
}

// Fail puts the view in the error state without a fetch. The request itself is at fault.
func (v *View) Fail(msg string) {
	v.State = StateError
	v.Error = msg
	v.err = nil
}

// Shell is what the navigation header needs.
type Shell struct {
	LoggedIn bool
	Username string
	Active   string
	Flash    string
}

func shellFor(ctx *gin.Context, h *session.Holder, active string) Shell {
	return Shell{
		LoggedIn: h.IsLoggedIn(ctx),
		Username: h.Username(ctx),
		Active:   active,
		Flash:    h.TakeFlash(ctx),
	}
}

// detached reports whether the browser went away while the fetch ran. Nothing is
// committed to a response nobody reads.
func detached(ctx *gin.Context) bool {
	if err := ctx.Request.Context().Err(); err != nil {
		utils.Sugar.Debugw("client gone, dropping result",
			"path", ctx.Request.URL.Path,
			"request_id", ctx.GetString(utils.ContextRequestIDKey),
		)
		ctx.Abort()
		return true
	}
	return false
}

// statusFor picks the response code for a rendered view.
func statusFor(v View) int {
	if v.State != StateError {
		return http.StatusOK
	}
	switch {
	case v.err == nil, errors.Is(v.err, portal.ErrInvalidID):
		return http.StatusBadRequest
	case errors.Is(v.err, portal.ErrNotFound):
		return http.StatusNotFound
	default:
		return failureStatus(v.err)
	}
}

func logUpstream(ctx *gin.Context, op string, err error) {
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	utils.Sugar.Warnw("portal request failed",
		"op", op,
		"err", err,
		"request_id", ctx.GetString(utils.ContextRequestIDKey),
	)
}

// rowView is one list row, already formatted for display.
type rowView struct {
	ID        string
	RowKey    string
	Titulo    string
	Autor     string
	Conteudo  string
	Data      string
	Resumo    string
	SearchKey string
}

// failureStatus mirrors client errors from the API and reports everything else as a
// bad gateway.
func failureStatus(err error) int {
	var apiErr *portal.APIError
	if errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500 {
		return apiErr.Status
	}
	return http.StatusBadGateway
}
