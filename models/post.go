package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// RawPost is a post object as decoded from the portal API. Numbers are kept as json.Number.
type RawPost map[string]any

// Post is the normalized shape every view renders from.
type Post struct {
	ID          string
	RowKey      string
	Titulo      string
	Autor       string
	Conteudo    string
	DataCriacao any
	SearchKey   string
}

// PostInput is the body sent on create and update.
type PostInput struct {
	Titulo      string `json:"titulo"`
	Conteudo    string `json:"conteudo"`
	DataCriacao string `json:"dataCriacao"`
	Autor       string `json:"autor"`
}

// RawID returns the record's id, falling back to _id. Nil when neither is set.
func (r RawPost) RawID() any {
	if v, ok := r["id"]; ok && v != nil {
		return v
	}
	if v, ok := r["_id"]; ok && v != nil {
		return v
	}
	return nil
}

// ID is the normalized string form of RawID. Falsy ids (0, false) normalize to "".
func (r RawPost) ID() string {
	switch v := r.RawID().(type) {
	case bool:
		if !v {
			return ""
		}
	case json.Number:
		if f, err := v.Float64(); err == nil && f == 0 {
			return ""
		}
	case float64:
		if v == 0 {
			return ""
		}
	}
	return stringify(r.RawID())
}

func (r RawPost) text(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return stringify(v)
}

// Titulo returns the title or "".
func (r RawPost) Titulo() string { return r.text("titulo") }

// Autor returns the author or "".
func (r RawPost) Autor() string { return r.text("autor") }

// Conteudo returns the body or "".
func (r RawPost) Conteudo() string { return r.text("conteudo") }

// DataCriacao returns the creation timestamp as sent by the server, or "".
func (r RawPost) DataCriacao() any {
	if v, ok := r["dataCriacao"]; ok && v != nil {
		return v
	}
	return ""
}

// NormalizePost coerces a raw record into a Post. idx is the record's position in its list
// and only feeds RowKey when the record has no id.
func NormalizePost(raw RawPost, idx int) Post {
	id := raw.ID()
	titulo := raw.Titulo()
	autor := raw.Autor()
	conteudo := raw.Conteudo()

	rowKey := id
	if rowKey == "" {
		rowKey = fmt.Sprintf("%d-%s-%s", idx, titulo, autor)
	}

	return Post{
		ID:          id,
		RowKey:      rowKey,
		Titulo:      titulo,
		Autor:       autor,
		Conteudo:    conteudo,
		DataCriacao: raw.DataCriacao(),
		SearchKey:   strings.ToLower(titulo + " " + autor + " " + conteudo),
	}
}

// NormalizePosts normalizes a whole list, keeping order.
func NormalizePosts(raws []RawPost) []Post {
	posts := make([]Post, 0, len(raws))
	for i, raw := range raws {
		posts = append(posts, NormalizePost(raw, i))
	}
	return posts
}

// HasValidID reports whether the post can be navigated to, edited or deleted.
func (p Post) HasValidID() bool {
	return p.ID != "" && p.ID != "undefined" && p.ID != "null"
}

// PublicPosts drops records whose id is missing or corrupt.
func PublicPosts(posts []Post) []Post {
	out := make([]Post, 0, len(posts))
	for _, p := range posts {
		if p.HasValidID() {
			out = append(out, p)
		}
	}
	return out
}

// FilterBySearchKey matches the trimmed, lowercased query against SearchKey.
func FilterBySearchKey(posts []Post, query string) []Post {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return posts
	}
	out := make([]Post, 0, len(posts))
	for _, p := range posts {
		if strings.Contains(p.SearchKey, q) {
			out = append(out, p)
		}
	}
	return out
}

// FilterByFields matches the lowercased query against title, author and body one by one.
func FilterByFields(posts []Post, query string) []Post {
	q := strings.ToLower(query)
	out := make([]Post, 0, len(posts))
	for _, p := range posts {
		if strings.Contains(strings.ToLower(p.Titulo), q) ||
			strings.Contains(strings.ToLower(p.Autor), q) ||
			strings.Contains(strings.ToLower(p.Conteudo), q) {
			out = append(out, p)
		}
	}
	return out
}

// LooseIDEqual compares ids the way the API's mixed string/number ids need:
// equal strings, or two numbers with the same value ("5" and "5.0").
func LooseIDEqual(a, b string) bool {
	if a == b {
		return true
	}
	if strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" {
		return false
	}
	fa, errA := strconv.ParseFloat(strings.TrimSpace(a), 64)
	fb, errB := strconv.ParseFloat(strings.TrimSpace(b), 64)
	return errA == nil && errB == nil && fa == fb
}

// FindByID returns the first record whose id loosely equals id.
func FindByID(raws []RawPost, id string) (RawPost, bool) {
	for _, raw := range raws {
		if raw.RawID() == nil {
			continue
		}
		if LooseIDEqual(raw.ID(), id) {
			return raw, true
		}
	}
	return nil, false
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case map[string]any, []any:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	default:
		return fmt.Sprint(t)
	}
}
