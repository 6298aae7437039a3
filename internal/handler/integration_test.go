package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/dmarquezl/aurora-rrhh/internal/handler"
)

func TestIntegration_RegisterLoginCRUDLogout(t *testing.T) {
	deps := newTestDeps(t)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, deps)

	srv := httptest.NewServer(handler.SecurityHeaders(mux))
	defer srv.Close()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("create cookie jar: %v", err)
	}
	client := &http.Client{Jar: jar}

	post := func(path, body string) *http.Response {
		t.Helper()
		resp, err := client.Post(srv.URL+path, "application/json", strings.NewReader(body))
		if err != nil {
			t.Fatalf("POST %s: %v", path, err)
		}
		t.Cleanup(func() { resp.Body.Close() })
		return resp
	}

	// 1. Register a new user.
	resp := post("/api/auth/register", `{
		"email": "integ@example.com",
		"nombre": "Inés",
		"apellido": "Torres",
		"password": "password123",
		"confirm_password": "password123"
	}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", resp.StatusCode)
	}

	// 2. Login; the auth cookie lands in the jar.
	resp = post("/api/auth/login", `{"email":"integ@example.com","password":"password123"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", resp.StatusCode)
	}

	srvURL, _ := url.Parse(srv.URL)
	var hasAuthToken bool
	for _, c := range jar.Cookies(srvURL) {
		if c.Name == "auth_token" && c.Value != "" {
			hasAuthToken = true
		}
	}
	if !hasAuthToken {
		t.Fatal("expected auth_token cookie after login")
	}

	// 3. The session identity is visible.
	resp, err = client.Get(srv.URL + "/api/auth/me")
	if err != nil {
		t.Fatalf("GET /api/auth/me: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("me: expected 200, got %d", resp.StatusCode)
	}

	// 4. Create an employee record.
	resp = post("/api/empleados", anaRuizJSON)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create empleado: expected 201, got %d", resp.StatusCode)
	}
	var created struct {
		Empleado empleadoPayload `json:"empleado"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode created: %v", err)
	}

	// 5. It shows up in the list.
	resp, err = client.Get(srv.URL + "/api/empleados?buscar=ruiz")
	if err != nil {
		t.Fatalf("GET /api/empleados: %v", err)
	}
	defer resp.Body.Close()
	var list struct {
		Empleados []empleadoPayload `json:"empleados"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list.Empleados) != 1 || list.Empleados[0].ID != created.Empleado.ID {
		t.Fatalf("expected the created record in the filtered list, got %+v", list.Empleados)
	}

	// 6. Logout clears the cookie.
	resp = post("/api/auth/logout", "")
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("logout: expected 204, got %d", resp.StatusCode)
	}

	// 7. Protected routes reject the cleared session.
	resp, err = client.Get(srv.URL + "/api/empleados")
	if err != nil {
		t.Fatalf("GET /api/empleados after logout: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", resp.StatusCode)
	}
}
