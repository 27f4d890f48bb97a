package router

import (
	"net/http"
	"strings"
)

// Method is the closed set of HTTP methods a route can be registered for.
type Method uint8

const (
	MethodGet Method = iota
	MethodHead
	MethodPost
	MethodPut
	MethodPatch
	MethodDelete
	MethodOptions
	MethodConnect
	MethodTrace

	methodCount
)

var methodNames = [methodCount]string{
	MethodGet:     http.MethodGet,
	MethodHead:    http.MethodHead,
	MethodPost:    http.MethodPost,
	MethodPut:     http.MethodPut,
	MethodPatch:   http.MethodPatch,
	MethodDelete:  http.MethodDelete,
	MethodOptions: http.MethodOptions,
	MethodConnect: http.MethodConnect,
	MethodTrace:   http.MethodTrace,
}

var methodMap = map[string]Method{
	http.MethodGet:     MethodGet,
	http.MethodHead:    MethodHead,
	http.MethodPost:    MethodPost,
	http.MethodPut:     MethodPut,
	http.MethodPatch:   MethodPatch,
	http.MethodDelete:  MethodDelete,
	http.MethodOptions: MethodOptions,
	http.MethodConnect: MethodConnect,
	http.MethodTrace:   MethodTrace,
}

// ParseMethod resolves a method name case-insensitively.
func ParseMethod(name string) (Method, bool) {
	m, ok := methodMap[strings.ToUpper(name)]
	return m, ok
}

// String returns the upper-case method name.
func (m Method) String() string {
	if m >= methodCount {
		return ""
	}
	return methodNames[m]
}

// methodTable is the per-path handler table, one slot per Method.
type methodTable [methodCount]*Entry
