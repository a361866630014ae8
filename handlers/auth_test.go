package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mindcare/models"
	"mindcare/services/user"

	"github.com/gin-gonic/gin"
)

type fakeUserService struct {
	registerErr error
	loginErr    error
}

func (f *fakeUserService) Register(in user.RegisterInput) (*user.AuthResponse, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return &user.AuthResponse{ID: "u1", Token: "tok", FullName: in.FullName, Email: in.Email, Role: models.RoleStudent}, nil
}

func (f *fakeUserService) Login(email, password string) (*user.AuthResponse, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &user.AuthResponse{ID: "u1", Token: "tok", Email: email}, nil
}

func (f *fakeUserService) Logout(userID string) error { return nil }

func (f *fakeUserService) GetByID(userID string) (*models.User, error) {
	return &models.User{ID: userID}, nil
}

func authRouter(svc user.UserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuthHandler(svc)
	r.POST("/api/auth/register", h.Register)
	r.POST("/api/auth/login", h.Login)
	return r
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterEndpoint(t *testing.T) {
	router := authRouter(&fakeUserService{})

	w := postJSON(router, "/api/auth/register",
		`{"fullName":"Wanjiru","email":"w@example.com","password":"s3curepass","institution":"UoN"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"token":"tok"`) {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestRegisterEndpointRejectsBadEmail(t *testing.T) {
	router := authRouter(&fakeUserService{})
	w := postJSON(router, "/api/auth/register",
		`{"fullName":"Wanjiru","email":"not-an-email","password":"s3curepass"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestRegisterDuplicateMapsTo400(t *testing.T) {
	router := authRouter(&fakeUserService{registerErr: user.ConflictError{Message: "Email already exists"}})
	w := postJSON(router, "/api/auth/register",
		`{"fullName":"Wanjiru","email":"w@example.com","password":"s3curepass","institution":"UoN"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Email already exists") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	router := authRouter(&fakeUserService{loginErr: user.InvalidCredentialsError{}})
	w := postJSON(router, "/api/auth/login", `{"email":"w@example.com","password":"wrong"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid credentials") {
		t.Errorf("body = %s", w.Body.String())
	}
}
