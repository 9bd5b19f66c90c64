package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tableside/restaurant-api/services"
)

// ErrNoPermission is the shared forbidden message for catalog writes.
var ErrNoPermission = errors.New("you do not have permission")

// callerFrom rebuilds the authenticated caller the middleware stored in
// the context. Zero-valued when the route is unauthenticated.
func callerFrom(c *gin.Context) services.Caller {
	caller := services.Caller{}
	if v, ok := c.Get("user_id"); ok {
		if id, ok := v.(uint); ok {
			caller.ID = id
		}
	}
	if v, ok := c.Get("role"); ok {
		if role, ok := v.(string); ok {
			caller.Role = role
		}
	}
	return caller
}

// paramID parses a numeric path parameter.
func paramID(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, errors.New("invalid " + name)
	}
	return uint(id), nil
}

// queryFloat parses an optional float query parameter, nil when absent.
func queryFloat(c *gin.Context, name string) (*float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.New("invalid " + name)
	}
	return &v, nil
}

// queryUint parses an optional unsigned query parameter, 0 when absent.
func queryUint(c *gin.Context, name string) (uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, errors.New("invalid " + name)
	}
	return uint(v), nil
}
