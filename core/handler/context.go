package handler

import (
	"context"
	"net/http"
)

// Context defines the contract for request contexts in the framework.
// Use NewContext for the default implementation.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	Param(key string) string
	SetValue(key, val any)
}

// ParamExtractor extracts a named path parameter from a request.
// Router integrations provide their own implementation, e.g. chi.URLParam.
type ParamExtractor func(r *http.Request, key string) string

// reqContext is the default Context implementation. It delegates path
// parameter lookups to the router via a ParamExtractor.
type reqContext struct {
	context.Context
	w      http.ResponseWriter
	r      *http.Request
	param  ParamExtractor
	values map[any]any
}

// NewContext creates the default request context backed by the given
// parameter extractor. Pass nil if the route has no path parameters.
func NewContext(w http.ResponseWriter, r *http.Request, param ParamExtractor) Context {
	return &reqContext{
		Context: r.Context(),
		w:       w,
		r:       r,
		param:   param,
	}
}

func (c *reqContext) Request() *http.Request              { return c.r }
func (c *reqContext) ResponseWriter() http.ResponseWriter { return c.w }

func (c *reqContext) Param(key string) string {
	if c.param == nil {
		return ""
	}
	return c.param(c.r, key)
}

func (c *reqContext) SetValue(key, val any) {
	if c.values == nil {
		c.values = make(map[any]any)
	}
	c.values[key] = val
}

func (c *reqContext) Value(key any) any {
	if val, ok := c.values[key]; ok {
		return val
	}
	return c.Context.Value(key)
}
