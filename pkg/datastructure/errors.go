package datastructure

import "errors"

var (
	ErrInvalidCityName = errors.New("invalid city name")
	ErrCityNotFound    = errors.New("city not found")
	ErrDuplicateCity   = errors.New("city already exists")
	ErrSameCity        = errors.New("road endpoints must be different cities")
	ErrInvalidLength   = errors.New("road length must be positive")
	ErrInvalidYear     = errors.New("repair year must be nonzero")
	ErrRoadExists      = errors.New("cities are already connected")
	ErrRoadNotFound    = errors.New("cities are not connected")

	ErrEmptyRoute      = errors.New("route has no cities")
	ErrEdgeNotOnRoute  = errors.New("edge is not part of the route")
	ErrDetourEndpoints = errors.New("detour endpoints do not match the gap")
	ErrPathEndpoint    = errors.New("path does not start at the route end")
	ErrRepeatedCity    = errors.New("city repeats on the route")
)
