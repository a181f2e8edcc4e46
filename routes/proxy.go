package routes

import (
	"context"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/conectaedu/frontend/utils"
)

type ginContextKey struct{}

// NewAPIProxy forwards /api/* to the portal API with the /api prefix stripped and the
// Host header rewritten to the target.
func NewAPIProxy(baseURL string) (gin.HandlerFunc, error) {
	target, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}

	proxy := &httputil.ReverseProxy{
		Rewrite: func(r *httputil.ProxyRequest) {
			r.SetURL(target)
			r.Out.Host = target.Host
			r.SetXForwarded()
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			utils.Sugar.Warnw("api proxy failed", "path", r.URL.Path, "err", err)
			if ctx, ok := r.Context().Value(ginContextKey{}).(*gin.Context); ok {
				utils.Error(ctx, http.StatusBadGateway, 50200, "upstream unavailable")
				return
			}
			w.WriteHeader(http.StatusBadGateway)
		},
	}

	return func(ctx *gin.Context) {
		req := ctx.Request.Clone(context.WithValue(ctx.Request.Context(), ginContextKey{}, ctx))
		path := strings.TrimPrefix(req.URL.Path, "/api")
		if path == "" {
			path = "/"
		}
		req.URL.Path = path
		req.URL.RawPath = ""
		proxy.ServeHTTP(ctx.Writer, req)
	}, nil
}
