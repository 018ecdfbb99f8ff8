package core

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/julienschmidt/httprouter"
)

func TestIsValidMethod(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		expected bool
	}{
		{"GET method", http.MethodGet, true},
		{"HEAD method", http.MethodHead, true},
		{"POST method", http.MethodPost, true},
		{"PUT method", http.MethodPut, true},
		{"Invalid method INVALID", "INVALID", false},
		{"Invalid method CUSTOM", "CUSTOM", false},
		{"Empty method", "", false},
		{"Lowercase get", "get", false},
		{"Mixed case Post", "Post", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := isValidMethod(tt.method)
			if result != tt.expected {
				t.Errorf("isValidMethod(%q) = %v, want %v", tt.method, result, tt.expected)
			}
		})
	}
}

func TestRegisterValidMethod(t *testing.T) {
	route := Route{
		Id:      "test-get",
		Path:    "/test",
		Method:  http.MethodGet,
		Handler: func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {},
	}

	RegisterRoute(route)

	retrievedRoute, found := GetRoute("test-get")
	if !found {
		t.Error("Expected route to be registered")
	}
	if retrievedRoute.Method != http.MethodGet {
		t.Errorf("Expected method GET, got %s", retrievedRoute.Method)
	}
}

func TestRegisterInvalidMethodPanics(t *testing.T) {
	tests := []struct {
		name   string
		method string
	}{
		{"Invalid method INVALID", "INVALID"},
		{"Invalid method CUSTOM", "CUSTOM"},
		{"Empty method", ""},
		{"Lowercase get", "get"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("RegisterRoute() should have panicked for invalid method %q", tt.method)
				}
			}()

			route := Route{
				Id:      "test-invalid-" + tt.method,
				Path:    "/test",
				Method:  tt.method,
				Handler: func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {},
			}

			RegisterRoute(route)
		})
	}
}

func TestRegisterDuplicateIdPanics(t *testing.T) {
	route := Route{
		Id:      "test-duplicate",
		Path:    "/test",
		Method:  http.MethodGet,
		Handler: func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {},
	}

	RegisterRoute(route)

	defer func() {
		if r := recover(); r == nil {
			t.Error("RegisterRoute() should have panicked for duplicate id")
		}
	}()
	RegisterRoute(route)
}

func TestListRoutes(t *testing.T) {
	for i := 0; i < 3; i++ {
		RegisterRoute(Route{
			Id:      fmt.Sprintf("test-list-%d", i),
			Path:    fmt.Sprintf("/test/list/%d", i),
			Method:  http.MethodGet,
			Handler: func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {},
		})
	}

	listed := make(map[string]bool)
	for _, id := range ListRoutes() {
		listed[id] = true
	}
	for i := 0; i < 3; i++ {
		id := fmt.Sprintf("test-list-%d", i)
		if !listed[id] {
			t.Errorf("Expected %s in ListRoutes()", id)
		}
	}
}
