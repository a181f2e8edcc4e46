package controllers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/conectaedu/frontend/middleware"
	"github.com/conectaedu/frontend/models"
	"github.com/conectaedu/frontend/session"
	"github.com/conectaedu/frontend/utils"
)

// PostController serves the authenticated admin area: list, create, edit and delete.
// Every handler runs behind middleware.SessionRequired.
type PostController struct {
	api     PortalAPI
	session *session.Holder
	loc     *time.Location
	now     func() time.Time
}

// NewPostController creates a new PostController instance. Dates are read and shown in loc.
func NewPostController(api PortalAPI, holder *session.Holder, loc *time.Location) *PostController {
	return &PostController{api: api, session: holder, loc: loc, now: time.Now}
}

type adminPage struct {
	View
	Title string
	Shell Shell
	Query string
	Total int
	Rows  []rowView
}

// ListPosts shows every record, id-less ones included, filtered field by field on ?q=.
func (p *PostController) ListPosts(ctx *gin.Context) {
	page := adminPage{
		Title: "Administração",
		Shell: shellFor(ctx, p.session, "admin"),
		Query: ctx.Query("q"),
	}

	page.Begin()
	raws, err := p.api.ListPosts(ctx.Request.Context(), middleware.Token(ctx))
	if detached(ctx) {
		return
	}
	logUpstream(ctx, "list", err)

	var rows []rowView
	if err == nil {
		all := models.NormalizePosts(raws)
		page.Total = len(all)
		filtered := models.FilterByFields(all, page.Query)
		rows = make([]rowView, 0, len(filtered))
		for _, post := range filtered {
			rows = append(rows, rowView{
				ID:       post.ID,
				RowKey:   post.RowKey,
				Titulo:   post.Titulo,
				Autor:    post.Autor,
				Conteudo: post.Conteudo,
				Data:     models.FormatDate(post.DataCriacao, p.loc),
				Resumo:   models.Truncate(post.Conteudo, models.AdminSummaryLen),
			})
		}
	}
	page.Settle(len(rows), err)
	page.Rows = rows

	ctx.HTML(statusFor(page.View), "admin.html", page)
}

// RowAction dispatches the edit and delete buttons of a list row. Rows without an id
// are refused before anything is sent to the API.
func (p *PostController) RowAction(ctx *gin.Context) {
	id := strings.TrimSpace(ctx.PostForm("id"))
	switch ctx.PostForm("acao") {
	case "editar":
		if id == "" {
			p.backToList(ctx, msgNoIDForEdit)
			return
		}
		ctx.Redirect(http.StatusSeeOther, "/admin/edit/"+url.PathEscape(id))
	case "excluir":
		if id == "" {
			p.backToList(ctx, msgNoIDForDelete)
			return
		}
		if ctx.PostForm("confirmar") != "sim" {
			ctx.Redirect(http.StatusSeeOther, "/admin/excluir/"+url.PathEscape(id))
			return
		}
		p.deletePost(ctx, id)
	default:
		p.backToList(ctx, msgUnknownAction)
	}
}

type confirmPage struct {
	Title string
	Shell Shell
	ID    string
}

// ConfirmDelete asks before anything is deleted.
func (p *PostController) ConfirmDelete(ctx *gin.Context) {
	id := strings.TrimSpace(ctx.Param("id"))
	if id == "" {
		p.backToList(ctx, msgNoIDForDelete)
		return
	}
	ctx.HTML(http.StatusOK, "confirm_delete.html", confirmPage{
		Title: "Excluir post",
		Shell: shellFor(ctx, p.session, "admin"),
		ID:    id,
	})
}

// DeletePost deletes once the confirmation was given. The list is never patched locally:
// the redirect makes the admin list fetch the collection again.
func (p *PostController) DeletePost(ctx *gin.Context) {
	id := strings.TrimSpace(ctx.Param("id"))
	if id == "" {
		p.backToList(ctx, msgNoIDForDelete)
		return
	}
	if ctx.PostForm("confirmar") != "sim" {
		ctx.Redirect(http.StatusSeeOther, "/admin")
		return
	}
	p.deletePost(ctx, id)
}

func (p *PostController) deletePost(ctx *gin.Context, id string) {
	err := p.api.DeletePost(ctx.Request.Context(), middleware.Token(ctx), id)
	if detached(ctx) {
		return
	}
	if err != nil {
		logUpstream(ctx, "delete", err)
		p.backToList(ctx, errorMessage(err))
		return
	}
	utils.Sugar.Infow("post deleted", "id", id, "request_id", ctx.GetString(utils.ContextRequestIDKey))
	ctx.Redirect(http.StatusSeeOther, "/admin")
}

func (p *PostController) backToList(ctx *gin.Context, msg string) {
	p.session.SetFlash(ctx, msg)
	ctx.Redirect(http.StatusSeeOther, "/admin")
}

// postForm is what the create and edit forms submit. The date is a datetime-local value.
type postForm struct {
	Titulo      string `form:"titulo" binding:"required"`
	Autor       string `form:"autor" binding:"required"`
	DataCriacao string `form:"dataCriacao" binding:"required"`
	Conteudo    string `form:"conteudo" binding:"required"`
}

type postFormPage struct {
	View
	Title  string
	Shell  Shell
	Action string
	Form   postForm
}

// Blocked reports whether the form itself must not be shown.
func (f postFormPage) Blocked() bool {
	return f.State == StateError
}

// input validates the submitted form and converts it to the API body. The returned
// message is empty when the form can be sent.
func (p *PostController) input(ctx *gin.Context, form *postForm) (models.PostInput, string) {
	if err := ctx.ShouldBind(form); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			return models.PostInput{}, msgFillAll
		}
		return models.PostInput{}, "Requisição inválida."
	}

	// text goes out exactly as typed; templates escape it on the way back
	in := models.PostInput{
		Titulo:   form.Titulo,
		Autor:    form.Autor,
		Conteudo: form.Conteudo,
	}

	iso, err := models.LocalInputToISO(form.DataCriacao, p.loc)
	if err != nil {
		return models.PostInput{}, err.Error()
	}
	in.DataCriacao = iso
	return in, ""
}

func (p *PostController) newFormPage(ctx *gin.Context, title, action string) postFormPage {
	page := postFormPage{
		Title:  title,
		Shell:  shellFor(ctx, p.session, "admin"),
		Action: action,
	}
	page.State = StateIdle
	return page
}

// NewPost renders the empty create form, dated now.
func (p *PostController) NewPost(ctx *gin.Context) {
	page := p.newFormPage(ctx, "Cadastrar Post", "/admin/cadastrar")
	page.Form.DataCriacao = models.NowLocalInput(p.now(), p.loc)
	ctx.HTML(http.StatusOK, "post_form.html", page)
}

// CreatePost validates and sends a new post. Nothing is sent when a field is empty.
func (p *PostController) CreatePost(ctx *gin.Context) {
	page := p.newFormPage(ctx, "Cadastrar Post", "/admin/cadastrar")

	in, msg := p.input(ctx, &page.Form)
	if msg != "" {
		page.Error = msg
		ctx.HTML(http.StatusBadRequest, "post_form.html", page)
		return
	}

	err := p.api.CreatePost(ctx.Request.Context(), middleware.Token(ctx), in)
	if detached(ctx) {
		return
	}
	if err != nil {
		logUpstream(ctx, "create", err)
		page.Error = errorMessage(err)
		ctx.HTML(failureStatus(err), "post_form.html", page)
		return
	}
	utils.Sugar.Infow("post created", "titulo", in.Titulo, "request_id", ctx.GetString(utils.ContextRequestIDKey))
	ctx.Redirect(http.StatusSeeOther, "/admin")
}

func editAction(id string) string {
	return "/admin/edit/" + url.PathEscape(id)
}

// EditPost loads the record the same way the reading view does and fills the form.
func (p *PostController) EditPost(ctx *gin.Context) {
	id := strings.TrimSpace(ctx.Param("id"))
	page := p.newFormPage(ctx, "Editar Post", editAction(id))
	if id == "" {
		page.Fail("ID inválido.")
		ctx.HTML(http.StatusBadRequest, "post_form.html", page)
		return
	}

	page.Begin()
	raw, err := p.api.FindPost(ctx.Request.Context(), middleware.Token(ctx), id)
	if detached(ctx) {
		return
	}
	logUpstream(ctx, "find", err)
	if err != nil {
		page.Settle(0, err)
		ctx.HTML(statusFor(page.View), "post_form.html", page)
		return
	}

	page.Settle(1, nil)
	page.Form = postForm{
		Titulo:      raw.Titulo(),
		Autor:       raw.Autor(),
		DataCriacao: models.ToLocalInput(raw.DataCriacao(), p.loc),
		Conteudo:    raw.Conteudo(),
	}
	if raw.ID() == "" {
		page.Error = msgMissingPostID
	}
	ctx.HTML(http.StatusOK, "post_form.html", page)
}

// UpdatePost validates and sends the edited post under the route id.
func (p *PostController) UpdatePost(ctx *gin.Context) {
	id := strings.TrimSpace(ctx.Param("id"))
	page := p.newFormPage(ctx, "Editar Post", editAction(id))
	if id == "" {
		page.Fail("ID inválido.")
		ctx.HTML(http.StatusBadRequest, "post_form.html", page)
		return
	}

	in, msg := p.input(ctx, &page.Form)
	if msg != "" {
		page.Error = msg
		ctx.HTML(http.StatusBadRequest, "post_form.html", page)
		return
	}

	err := p.api.UpdatePost(ctx.Request.Context(), middleware.Token(ctx), id, in)
	if detached(ctx) {
		return
	}
	if err != nil {
		logUpstream(ctx, "update", err)
		page.Error = errorMessage(err)
		ctx.HTML(failureStatus(err), "post_form.html", page)
		return
	}
	utils.Sugar.Infow("post updated", "id", id, "request_id", ctx.GetString(utils.ContextRequestIDKey))
	ctx.Redirect(http.StatusSeeOther, "/admin")
}
