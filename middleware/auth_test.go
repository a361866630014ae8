package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mindcare/models"
	"mindcare/utils"

	"github.com/gin-gonic/gin"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) Create(u *models.User) error { return nil }
func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	return f.users[id], nil
}
func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) { return nil, nil }
func (f *fakeUserRepo) SetTokenHash(id, hash string) error            { return nil }

func protectedRouter(repo *fakeUserRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/secure", JWTAuthMiddleware(repo, nil), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID": c.GetString(CtxUserID),
			"role":   c.GetString(CtxUserRole),
		})
	})
	r.GET("/admin", JWTAuthMiddleware(repo, nil), RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func issueFor(t *testing.T, repo *fakeUserRepo, id, role string) string {
	t.Helper()
	token, err := utils.GenerateToken(id, id+"@example.com", role, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	repo.users[id] = &models.User{ID: id, Role: role, TokenHash: utils.HashToken(token)}
	return token
}

func TestAuthMiddleware(t *testing.T) {
	repo := &fakeUserRepo{users: make(map[string]*models.User)}
	router := protectedRouter(repo)
	token := issueFor(t, repo, "u1", models.RoleStudent)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"no header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer nope", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/secure", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestAuthMiddlewareRejectsRevokedToken(t *testing.T) {
	repo := &fakeUserRepo{users: make(map[string]*models.User)}
	router := protectedRouter(repo)
	token := issueFor(t, repo, "u1", models.RoleStudent)

	// A logout clears the stored hash; the same token must stop working.
	repo.users["u1"].TokenHash = ""

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 after revocation", w.Code)
	}
}

func TestRequireAdmin(t *testing.T) {
	repo := &fakeUserRepo{users: make(map[string]*models.User)}
	router := protectedRouter(repo)

	studentToken := issueFor(t, repo, "student-1", models.RoleStudent)
	adminToken := issueFor(t, repo, "admin-1", models.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+studentToken)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("student status = %d, want 403", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("admin status = %d, want 200", w.Code)
	}
}
