package portal

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/conectaedu/frontend/models"
)

// ListPosts fetches the whole collection. A body that is not an array is an empty list.
func (c *Client) ListPosts(ctx context.Context, token string) ([]models.RawPost, error) {
	res, err := c.do(ctx, http.MethodGet, "/portal", token, nil)
	if err != nil {
		return nil, err
	}
	if !res.ok() {
		return nil, newAPIError(res.status, res.body, "Falha ao listar posts")
	}

	arr, ok := decodeJSON(res.body).([]any)
	if !ok {
		return []models.RawPost{}, nil
	}
	posts := make([]models.RawPost, 0, len(arr))
	for _, item := range arr {
		if m, ok := item.(map[string]any); ok {
			posts = append(posts, models.RawPost(m))
		}
	}
	return posts, nil
}

// errNotObject marks a 2xx by-id answer whose body is not a post object.
var errNotObject = errors.New("post response is not an object")

// GetPost fetches one record from the by-id endpoint.
func (c *Client) GetPost(ctx context.Context, token, id string) (models.RawPost, error) {
	if id == "" {
		return nil, ErrInvalidID
	}
	res, err := c.do(ctx, http.MethodGet, "/portal/"+url.PathEscape(id), token, nil)
	if err != nil {
		return nil, err
	}
	if !res.ok() {
		return nil, newAPIError(res.status, res.body, "Falha ao buscar post")
	}
	obj, ok := decodeObject(res.body)
	if !ok {
		return nil, errNotObject
	}
	return models.RawPost(obj), nil
}

// FindPost tries the by-id endpoint and, when it answers with an error status or an
// unusable body, scans the full collection for a record with a loosely equal id.
func (c *Client) FindPost(ctx context.Context, token, id string) (models.RawPost, error) {
	post, err := c.GetPost(ctx, token, id)
	if err == nil {
		return post, nil
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) && !errors.Is(err, errNotObject) {
		return nil, err
	}

	all, err := c.ListPosts(ctx, token)
	if err != nil {
		return nil, err
	}
	found, ok := models.FindByID(all, id)
	if !ok {
		return nil, ErrNotFound
	}
	return found, nil
}

// CreatePost sends a new record.
func (c *Client) CreatePost(ctx context.Context, token string, in models.PostInput) error {
	res, err := c.do(ctx, http.MethodPost, "/portal", token, in)
	if err != nil {
		return err
	}
	if !res.ok() {
		return newAPIError(res.status, res.body, "Falha ao salvar")
	}
	return nil
}

// UpdatePost replaces the record with the given id.
func (c *Client) UpdatePost(ctx context.Context, token, id string, in models.PostInput) error {
	if id == "" {
		return ErrInvalidID
	}
	res, err := c.do(ctx, http.MethodPut, "/portal/"+url.PathEscape(id), token, in)
	if err != nil {
		return err
	}
	if !res.ok() {
		return newAPIError(res.status, res.body, "Falha ao salvar")
	}
	return nil
}

// DeletePost removes the record with the given id.
func (c *Client) DeletePost(ctx context.Context, token, id string) error {
	if id == "" {
		return ErrInvalidID
	}
	res, err := c.do(ctx, http.MethodDelete, "/portal/"+url.PathEscape(id), token, nil)
	if err != nil {
		return err
	}
	if !res.ok() {
		return newAPIError(res.status, res.body, "Falha ao excluir")
	}
	return nil
}
