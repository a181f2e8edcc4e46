package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conectaedu/frontend/config"
	"github.com/conectaedu/frontend/portal"
	"github.com/conectaedu/frontend/session"
)

// fakePortal is an in-memory stand-in for the ConectaEdu API.
type fakePortal struct {
	mu           sync.Mutex
	posts        []map[string]any
	nextID       int
	calls        map[string]int
	auth         map[string]string
	bodies       map[string]map[string]any
	failByID     bool
	deleteStatus int
}

func newFakePortal(posts ...map[string]any) *fakePortal {
	return &fakePortal{
		posts:  posts,
		nextID: 100,
		calls:  map[string]int{},
		auth:   map[string]string{},
		bodies: map[string]map[string]any{},
	}
}

func (f *fakePortal) count(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[key]
}

func (f *fakePortal) authOf(key string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.auth[key]
}

func (f *fakePortal) bodyOf(key string) map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bodies[key]
}

func (f *fakePortal) total(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for k, v := range f.calls {
		if strings.HasPrefix(k, method+" ") {
			n += v
		}
	}
	return n
}

func (f *fakePortal) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := r.Method + " " + r.URL.Path
	f.calls[key]++
	f.auth[key] = r.Header.Get("Authorization")
	var body map[string]any
	_ = json.NewDecoder(r.Body).Decode(&body)
	f.bodies[key] = body

	id := strings.TrimPrefix(r.URL.Path, "/portal/")
	switch {
	case key == "POST /users/login":
		if body["password"] != "certa" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Credenciais inválidas"}`))
			return
		}
		_, _ = w.Write([]byte(`{"jwt":"t1","token":"t2"}`))
	case key == "GET /portal":
		_ = json.NewEncoder(w).Encode(f.posts)
	case key == "POST /portal":
		body["id"] = f.nextID
		f.nextID++
		f.posts = append(f.posts, body)
		w.WriteHeader(http.StatusCreated)
	case r.Method == http.MethodGet:
		if f.failByID {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if p := f.find(id); p != nil {
			_ = json.NewEncoder(w).Encode(p)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	case r.Method == http.MethodPut:
		p := f.find(id)
		if p == nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		for k, v := range body {
			p[k] = v
		}
	case r.Method == http.MethodDelete:
		if f.deleteStatus != 0 {
			w.WriteHeader(f.deleteStatus)
			return
		}
		kept := f.posts[:0]
		for _, p := range f.posts {
			if idOf(p) != id {
				kept = append(kept, p)
			}
		}
		f.posts = kept
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (f *fakePortal) find(id string) map[string]any {
	for _, p := range f.posts {
		if idOf(p) == id {
			return p
		}
	}
	return nil
}

func idOf(p map[string]any) string {
	v, ok := p["id"]
	if !ok {
		v = p["_id"]
	}
	switch t := v.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	}
	return ""
}

type harness struct {
	t    *testing.T
	api  *fakePortal
	h    http.Handler
	auth *http.Cookie
}

func newHarness(t *testing.T, api *fakePortal) *harness {
	t.Helper()
	upstream := httptest.NewServer(api)
	t.Cleanup(upstream.Close)

	cfg := config.AppConfig{
		APIBaseURL:         upstream.URL,
		RateLimitPerMinute: 600,
		AllowedOrigins:     []string{"*"},
		TimeZone:           "America/Sao_Paulo",
		GinMode:            "test",
		GinPath:            filepath.Join(t.TempDir(), "gin.log"),
		LogLevel:           "info",
	}
	holder := session.NewHolder(false, nil)
	r := SetupRouter(cfg, portal.NewClient(upstream.URL, upstream.Client()), holder)

	return &harness{
		t:    t,
		api:  api,
		h:    r,
		auth: &http.Cookie{Name: session.TokenCookie, Value: "t2"},
	}
}

func (h *harness) do(method, target string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	h.t.Helper()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	h.h.ServeHTTP(w, req)
	return w
}

func cookieNamed(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func samplePosts() []map[string]any {
	return []map[string]any{
		{"id": 1, "titulo": "Frações", "autor": "Beatriz Souza", "conteudo": "Somando partes", "dataCriacao": "2024-05-01T15:30:00.000Z"},
		{"_id": "abc", "titulo": "História", "autor": "Carlos", "conteudo": "Brasil colônia"},
		{"titulo": "Sem identificador", "autor": "Anônimo", "conteudo": "corrompido"},
		{"id": "null", "titulo": "Id nulo", "autor": "x", "conteudo": "y"},
	}
}

func TestHome_ExcludesPostsWithoutID(t *testing.T) {
	h := newHarness(t, newFakePortal(samplePosts()...))

	w := h.do(http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `href="/ler/1"`)
	assert.Contains(t, body, `href="/ler/abc"`)
	assert.NotContains(t, body, "Sem identificador")
	assert.NotContains(t, body, "Id nulo")
	assert.Contains(t, body, "Entrar")
	assert.Empty(t, h.api.authOf("GET /portal"))
}

func TestHome_FilterMatchesAuthorOnly(t *testing.T) {
	h := newHarness(t, newFakePortal(samplePosts()...))

	w := h.do(http.MethodGet, "/?q=souza", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Frações")
	assert.NotContains(t, w.Body.String(), "História")

	w = h.do(http.MethodGet, "/?q=inexistente", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<tr data-empty>")
	assert.Contains(t, w.Body.String(), "inexistente")
}

func TestHome_UpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer upstream.Close()

	cfg := config.AppConfig{GinMode: "test", GinPath: filepath.Join(t.TempDir(), "gin.log"), AllowedOrigins: []string{"*"}, APIBaseURL: upstream.URL}
	r := SetupRouter(cfg, portal.NewClient(upstream.URL, upstream.Client()), session.NewHolder(false, nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "Falha ao listar posts (HTTP 503)")
	assert.NotContains(t, w.Body.String(), "<table>")
}

func TestReadPost_FallbackRendersLikeDirectHit(t *testing.T) {
	api := newFakePortal(samplePosts()...)
	h := newHarness(t, api)

	direct := h.do(http.MethodGet, "/ler/1", nil)
	require.Equal(t, http.StatusOK, direct.Code)
	assert.Equal(t, 0, api.count("GET /portal"))

	api.mu.Lock()
	api.failByID = true
	api.mu.Unlock()

	fallback := h.do(http.MethodGet, "/ler/1", nil)
	require.Equal(t, http.StatusOK, fallback.Code)
	assert.Equal(t, 2, api.count("GET /portal/1"))
	assert.Equal(t, 1, api.count("GET /portal"))

	assert.Equal(t, direct.Body.String(), fallback.Body.String())
	assert.Contains(t, direct.Body.String(), "Por Beatriz Souza · 01/05/2024, 12:30:00")
	assert.Contains(t, direct.Body.String(), `href="/admin/edit/1"`)
}

func TestReadPost_NotFound(t *testing.T) {
	api := newFakePortal(samplePosts()...)
	api.failByID = true
	h := newHarness(t, api)

	w := h.do(http.MethodGet, "/ler/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Post não encontrado.")
}

func TestLogin(t *testing.T) {
	h := newHarness(t, newFakePortal())

	t.Run("stores token by priority", func(t *testing.T) {
		w := h.do(http.MethodPost, "/login", url.Values{"username": {"ana"}, "password": {"certa"}})
		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/admin", w.Header().Get("Location"))
		c := cookieNamed(w, session.TokenCookie)
		require.NotNil(t, c)
		assert.Equal(t, "t2", c.Value)
	})

	t.Run("server message", func(t *testing.T) {
		w := h.do(http.MethodPost, "/login", url.Values{"username": {"ana"}, "password": {"errada"}})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Credenciais inválidas")
		assert.Contains(t, w.Body.String(), `value="ana"`)
		assert.Nil(t, cookieNamed(w, session.TokenCookie))
	})

	t.Run("empty fields are not sent", func(t *testing.T) {
		before := h.api.count("POST /users/login")
		w := h.do(http.MethodPost, "/login", url.Values{"username": {"ana"}})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, before, h.api.count("POST /users/login"))
	})
}

func TestLogout(t *testing.T) {
	h := newHarness(t, newFakePortal())

	w := h.do(http.MethodPost, "/logout", nil, h.auth)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	c := cookieNamed(w, session.TokenCookie)
	require.NotNil(t, c)
	assert.Less(t, c.MaxAge, 0)

	// the old cookie no longer opens the admin area
	w = h.do(http.MethodGet, "/admin", nil, h.auth)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestAdmin_RequiresSession(t *testing.T) {
	api := newFakePortal(samplePosts()...)
	h := newHarness(t, api)

	for _, path := range []string{"/admin", "/admin/cadastrar", "/admin/edit/1"} {
		w := h.do(http.MethodGet, path, nil)
		assert.Equal(t, http.StatusSeeOther, w.Code, path)
		assert.Equal(t, "/login", w.Header().Get("Location"), path)
	}
	assert.Equal(t, 0, api.total(http.MethodGet))
}

func TestAdmin_ListKeepsAllRecords(t *testing.T) {
	api := newFakePortal(samplePosts()...)
	h := newHarness(t, api)

	w := h.do(http.MethodGet, "/admin", nil, h.auth)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Equal(t, "Bearer t2", api.authOf("GET /portal"))
	assert.Contains(t, body, `<span class="badge">4</span>`)
	assert.Contains(t, body, "Sem identificador")
	assert.Contains(t, body, "01/05/2024, 12:30:00")
	assert.Contains(t, body, "Sair")

	w = h.do(http.MethodGet, "/admin?q=Souza", nil, h.auth)
	assert.Contains(t, w.Body.String(), "Frações")
	assert.NotContains(t, w.Body.String(), "Sem identificador")
}

func TestCreate_EmptyFieldSendsNothing(t *testing.T) {
	api := newFakePortal()
	h := newHarness(t, api)

	full := url.Values{
		"titulo":      {"Título"},
		"autor":       {"Autora"},
		"dataCriacao": {"2024-05-01T12:30"},
		"conteudo":    {"Texto"},
	}
	for field := range full {
		field := field
		t.Run(field, func(t *testing.T) {
			form := url.Values{}
			for k, v := range full {
				form[k] = v
			}
			form.Set(field, "")

			w := h.do(http.MethodPost, "/admin/cadastrar", form, h.auth)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "Preencha todos os campos.")
		})
	}
	assert.Equal(t, 0, api.count("POST /portal"))
}

func TestCreate_Success(t *testing.T) {
	api := newFakePortal()
	h := newHarness(t, api)

	w := h.do(http.MethodGet, "/admin/cadastrar", nil, h.auth)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `type="datetime-local"`)

	w = h.do(http.MethodPost, "/admin/cadastrar", url.Values{
		"titulo":      {"Título"},
		"autor":       {"Autora"},
		"dataCriacao": {"2024-05-01T12:30"},
		"conteudo":    {"linha 1\nlinha 2"},
	}, h.auth)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))

	require.Equal(t, 1, api.count("POST /portal"))
	assert.Equal(t, "Bearer t2", api.authOf("POST /portal"))
	sent := api.bodyOf("POST /portal")
	assert.Equal(t, "2024-05-01T15:30:00.000Z", sent["dataCriacao"])
	assert.Equal(t, "linha 1\nlinha 2", sent["conteudo"])
}

func TestCreate_InvalidDate(t *testing.T) {
	api := newFakePortal()
	h := newHarness(t, api)

	w := h.do(http.MethodPost, "/admin/cadastrar", url.Values{
		"titulo": {"T"}, "autor": {"A"}, "dataCriacao": {"amanhã"}, "conteudo": {"C"},
	}, h.auth)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Data de criação inválida.")
	assert.Equal(t, 0, api.count("POST /portal"))
}

func TestSubmit_SendsTextVerbatim(t *testing.T) {
	api := newFakePortal(samplePosts()...)
	h := newHarness(t, api)

	form := url.Values{
		"titulo":      {"<script>x</script>"},
		"autor":       {"Escreva &lt;p&gt; para parágrafos"},
		"dataCriacao": {"2024-05-01T12:30"},
		"conteudo":    {"Se a<b e b>c então a<c"},
	}

	w := h.do(http.MethodPost, "/admin/cadastrar", form, h.auth)
	require.Equal(t, http.StatusSeeOther, w.Code)
	created := api.bodyOf("POST /portal")
	assert.Equal(t, "<script>x</script>", created["titulo"])
	assert.Equal(t, "Escreva &lt;p&gt; para parágrafos", created["autor"])
	assert.Equal(t, "Se a<b e b>c então a<c", created["conteudo"])

	w = h.do(http.MethodPost, "/admin/edit/1", form, h.auth)
	require.Equal(t, http.StatusSeeOther, w.Code)
	updated := api.bodyOf("PUT /portal/1")
	assert.Equal(t, "<script>x</script>", updated["titulo"])
	assert.Equal(t, "Escreva &lt;p&gt; para parágrafos", updated["autor"])
	assert.Equal(t, "Se a<b e b>c então a<c", updated["conteudo"])

	// markup is shown as text, never interpreted
	w = h.do(http.MethodGet, "/ler/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "&lt;script&gt;x&lt;/script&gt;")
	assert.NotContains(t, w.Body.String(), "<script>x</script>")
	assert.Contains(t, w.Body.String(), "Se a&lt;b e b&gt;c então a&lt;c")
}

func TestEdit_LoadsAndUpdates(t *testing.T) {
	api := newFakePortal(samplePosts()...)
	h := newHarness(t, api)

	w := h.do(http.MethodGet, "/admin/edit/1", nil, h.auth)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `value="Frações"`)
	assert.Contains(t, body, `value="2024-05-01T12:30"`)
	assert.Equal(t, "Bearer t2", api.authOf("GET /portal/1"))

	w = h.do(http.MethodPost, "/admin/edit/1", url.Values{
		"titulo": {"Frações 2"}, "autor": {"Beatriz Souza"}, "dataCriacao": {"2024-05-02T09:00"}, "conteudo": {"Novo"},
	}, h.auth)
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, 1, api.count("PUT /portal/1"))
	assert.Equal(t, "2024-05-02T12:00:00.000Z", api.bodyOf("PUT /portal/1")["dataCriacao"])

	w = h.do(http.MethodPost, "/admin/edit/1", url.Values{"titulo": {"x"}}, h.auth)
	assert.Contains(t, w.Body.String(), "Preencha todos os campos.")
	assert.Equal(t, 1, api.count("PUT /portal/1"))
}

func TestEdit_NotFoundBlocksForm(t *testing.T) {
	api := newFakePortal()
	api.failByID = true
	h := newHarness(t, api)

	w := h.do(http.MethodGet, "/admin/edit/7", nil, h.auth)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Post não encontrado.")
	assert.NotContains(t, w.Body.String(), `name="titulo"`)
}

func TestDelete_RefetchesList(t *testing.T) {
	api := newFakePortal(samplePosts()...)
	h := newHarness(t, api)

	w := h.do(http.MethodPost, "/admin/acoes", url.Values{"acao": {"excluir"}, "id": {"1"}, "confirmar": {"sim"}}, h.auth)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))
	assert.Equal(t, 1, api.count("DELETE /portal/1"))
	assert.Equal(t, 0, api.count("GET /portal"))

	w = h.do(http.MethodGet, "/admin", nil, h.auth)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, api.count("GET /portal"))
	assert.NotContains(t, w.Body.String(), "Frações")
	assert.Contains(t, w.Body.String(), `<span class="badge">3</span>`)
}

func TestDelete_NeedsConfirmation(t *testing.T) {
	api := newFakePortal(samplePosts()...)
	h := newHarness(t, api)

	w := h.do(http.MethodPost, "/admin/acoes", url.Values{"acao": {"excluir"}, "id": {"1"}}, h.auth)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/excluir/1", w.Header().Get("Location"))

	w = h.do(http.MethodGet, "/admin/excluir/1", nil, h.auth)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Tem certeza que deseja excluir este post?")

	w = h.do(http.MethodPost, "/admin/excluir/1", url.Values{}, h.auth)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, 0, api.count("DELETE /portal/1"))

	w = h.do(http.MethodPost, "/admin/excluir/1", url.Values{"confirmar": {"sim"}}, h.auth)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, 1, api.count("DELETE /portal/1"))
}

func TestRowAction_MissingID(t *testing.T) {
	api := newFakePortal(samplePosts()...)
	h := newHarness(t, api)

	tests := []struct {
		acao string
		want string
	}{
		{acao: "editar", want: "Este post não possui ID válido para edição."},
		{acao: "excluir", want: "Este post não possui ID válido para exclusão."},
	}
	for _, tt := range tests {
		t.Run(tt.acao, func(t *testing.T) {
			w := h.do(http.MethodPost, "/admin/acoes", url.Values{"acao": {tt.acao}, "id": {""}, "confirmar": {"sim"}}, h.auth)
			require.Equal(t, http.StatusSeeOther, w.Code)
			assert.Equal(t, "/admin", w.Header().Get("Location"))

			flash := cookieNamed(w, session.FlashCookie)
			require.NotNil(t, flash)
			msg, err := url.QueryUnescape(flash.Value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, msg)

			w = h.do(http.MethodGet, "/admin", nil, h.auth, flash)
			assert.Contains(t, w.Body.String(), tt.want)
		})
	}
	assert.Equal(t, 0, api.total(http.MethodDelete))
}

func TestDelete_FailureLeavesList(t *testing.T) {
	api := newFakePortal(samplePosts()...)
	api.deleteStatus = http.StatusInternalServerError
	h := newHarness(t, api)

	w := h.do(http.MethodPost, "/admin/excluir/1", url.Values{"confirmar": {"sim"}}, h.auth)
	require.Equal(t, http.StatusSeeOther, w.Code)
	flash := cookieNamed(w, session.FlashCookie)
	require.NotNil(t, flash)
	msg, err := url.QueryUnescape(flash.Value)
	require.NoError(t, err)
	assert.Equal(t, "Falha ao excluir (HTTP 500)", msg)

	w = h.do(http.MethodGet, "/admin", nil, h.auth)
	assert.Contains(t, w.Body.String(), "Frações")
}

func TestUnknownPathRedirectsHome(t *testing.T) {
	h := newHarness(t, newFakePortal())

	w := h.do(http.MethodGet, "/qualquer/coisa", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestAPIProxyStripsPrefix(t *testing.T) {
	api := newFakePortal(samplePosts()...)
	h := newHarness(t, api)

	w := h.do(http.MethodGet, "/api/portal", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, api.count("GET /portal"))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 4)
}

func TestAPIProxy_UpstreamDown(t *testing.T) {
	upstream := httptest.NewServer(http.NotFoundHandler())
	base := upstream.URL
	upstream.Close()

	cfg := config.AppConfig{GinMode: "test", GinPath: filepath.Join(t.TempDir(), "gin.log"), AllowedOrigins: []string{"*"}, APIBaseURL: base}
	r := SetupRouter(cfg, portal.NewClient(base, nil), session.NewHolder(false, nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/portal", nil))
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	assert.JSONEq(t, `{"code":50200,"message":"upstream unavailable"}`, w.Body.String())
}

func TestHealth(t *testing.T) {
	h := newHarness(t, newFakePortal())

	w := h.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"code":0,"message":"success","data":{"status":"ok"}}`, w.Body.String())
}
