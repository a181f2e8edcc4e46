package controllers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/conectaedu/frontend/models"
	"github.com/conectaedu/frontend/session"
)

// PublicController serves the anonymous post list and the reading view.
type PublicController struct {
	api     PortalAPI
	session *session.Holder
	loc     *time.Location
}

// NewPublicController creates a PublicController. Dates render in loc.
func NewPublicController(api PortalAPI, holder *session.Holder, loc *time.Location) *PublicController {
	return &PublicController{api: api, session: holder, loc: loc}
}

type homePage struct {
	View
	Title string
	Shell Shell
	Query string
	Rows  []rowView
}

// Home lists every post with a usable id, filtered by ?q= against the search key.
func (p *PublicController) Home(ctx *gin.Context) {
	page := homePage{
		Title: "Postagens",
		Shell: shellFor(ctx, p.session, "home"),
		Query: ctx.Query("q"),
	}

	page.Begin()
	raws, err := p.api.ListPosts(ctx.Request.Context(), "")
	if detached(ctx) {
		return
	}
	logUpstream(ctx, "list", err)

	var rows []rowView
	if err == nil {
		posts := models.FilterBySearchKey(models.PublicPosts(models.NormalizePosts(raws)), page.Query)
		rows = make([]rowView, 0, len(posts))
		for _, post := range posts {
			rows = append(rows, rowView{
				ID:        post.ID,
				RowKey:    post.RowKey,
				Titulo:    post.Titulo,
				Autor:     post.Autor,
				Resumo:    models.Truncate(post.Conteudo, models.PublicSummaryLen),
				SearchKey: post.SearchKey,
			})
		}
	}
	page.Settle(len(rows), err)
	page.Rows = rows

	ctx.HTML(statusFor(page.View), "home.html", page)
}

type postPage struct {
	View
	Title string
	Shell Shell
	Post  *rowView
}

// ReadPost shows one post, falling back to a scan of the list when the by-id lookup fails.
func (p *PublicController) ReadPost(ctx *gin.Context) {
	page := postPage{Shell: shellFor(ctx, p.session, "")}

	id := strings.TrimSpace(ctx.Param("id"))
	if id == "" {
		page.Fail("ID inválido.")
		ctx.HTML(statusFor(page.View), "post.html", page)
		return
	}

	page.Begin()
	raw, err := p.api.FindPost(ctx.Request.Context(), "", id)
	if detached(ctx) {
		return
	}
	logUpstream(ctx, "find", err)

	n := 0
	if err == nil {
		post := models.NormalizePost(raw, 0)
		page.Title = post.Titulo
		page.Post = &rowView{
			ID:       post.ID,
			Titulo:   post.Titulo,
			Autor:    post.Autor,
			Conteudo: post.Conteudo,
			Data:     models.FormatDate(post.DataCriacao, p.loc),
		}
		if page.Post.ID == "" {
			page.Post.ID = id
		}
		n = 1
	}
	page.Settle(n, err)

	ctx.HTML(statusFor(page.View), "post.html", page)
}
