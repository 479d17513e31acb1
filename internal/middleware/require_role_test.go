package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	domain "github.com/navalhaapps/barbershop-api/internal/domain/booking"
)

func runRequireRole(t *testing.T, role string, allowed ...domain.Role) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set(ContextUserRole, role)

	RequireRole(allowed...)(c)
	return w, c
}

func TestRequireRole_Allows(t *testing.T) {
	_, c := runRequireRole(t, "DONO", domain.RoleBarbeiro, domain.RoleDono)
	if c.IsAborted() {
		t.Fatal("DONO should pass a BARBEIRO/DONO gate")
	}
}

func TestRequireRole_Denies(t *testing.T) {
	w, c := runRequireRole(t, "CLIENTE", domain.RoleBarbeiro, domain.RoleDono)
	if !c.IsAborted() {
		t.Fatal("CLIENTE must not pass a BARBEIRO/DONO gate")
	}
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestRequireRole_UnknownRole(t *testing.T) {
	w, c := runRequireRole(t, "CLIENT", domain.RoleCliente)
	if !c.IsAborted() {
		t.Fatal("unknown role string must be refused")
	}
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}
