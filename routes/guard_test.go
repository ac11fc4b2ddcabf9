package routes

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"campsite-market-server/access"
	"campsite-market-server/utils"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

// buildGuardTestApp wires a minimal app exercising the ownership guard and
// the staff middleware without touching the database. The protected resource
// is owned by user 7.
func buildGuardTestApp() *iris.Application {
	os.Setenv("ACCESS_TOKEN_SECRET", "testsecret")
	app := iris.New()

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} { return new(utils.AccessToken) })

	writeHandler := func(ctx iris.Context) {
		if !authorizeWrite(ctx, access.OwnedBy(7)) {
			return
		}
		ctx.JSON(iris.Map{"success": true})
	}

	app.Get("/resource", func(ctx iris.Context) {
		// Reads are open to everyone.
		if access.Authorize(utils.CurrentPrincipal(ctx), access.OwnedBy(7), access.ActionRead) != access.Allow {
			ctx.StatusCode(iris.StatusForbidden)
			return
		}
		ctx.JSON(iris.Map{"success": true})
	})
	app.Patch("/resource", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, writeHandler)

	staff := app.Party("/staff", accessTokenVerifierMiddleware, utils.StaffOnlyMiddleware)
	{
		staff.Get("/ping", func(ctx iris.Context) {
			ctx.JSON(iris.Map{"success": true})
		})
	}

	if err := app.Build(); err != nil {
		panic(err)
	}
	return app
}

func signGuardTestToken(id uint, isStaff bool) string {
	signer := jwt.NewSigner(jwt.HS256, os.Getenv("ACCESS_TOKEN_SECRET"), 0)
	token, _ := signer.Sign(utils.AccessToken{ID: id, IsStaff: isStaff})
	return string(token)
}

func TestAnonymousReadAllowed(t *testing.T) {
	app := buildGuardTestApp()

	req := httptest.NewRequest(http.MethodGet, "/resource", nil)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for anonymous read, got %d", resp.Code)
	}
}

func TestAnonymousWriteDenied(t *testing.T) {
	app := buildGuardTestApp()

	req := httptest.NewRequest(http.MethodPatch, "/resource", nil)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	if resp.Code == http.StatusOK {
		t.Fatalf("expected non-200 for anonymous write, got %d", resp.Code)
	}
}

func TestOwnerWriteAllowed(t *testing.T) {
	app := buildGuardTestApp()

	req := httptest.NewRequest(http.MethodPatch, "/resource", nil)
	req.Header.Set("Authorization", "Bearer "+signGuardTestToken(7, false))
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for owner write, got %d", resp.Code)
	}
}

func TestStrangerWriteDenied(t *testing.T) {
	app := buildGuardTestApp()

	req := httptest.NewRequest(http.MethodPatch, "/resource", nil)
	req.Header.Set("Authorization", "Bearer "+signGuardTestToken(8, false))
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-owner write, got %d", resp.Code)
	}
}

func TestStaffWriteAllowed(t *testing.T) {
	app := buildGuardTestApp()

	req := httptest.NewRequest(http.MethodPatch, "/resource", nil)
	req.Header.Set("Authorization", "Bearer "+signGuardTestToken(99, true))
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for staff write, got %d", resp.Code)
	}
}

func TestStaffPartyRBAC(t *testing.T) {
	app := buildGuardTestApp()

	// Non-staff -> 403
	req := httptest.NewRequest(http.MethodGet, "/staff/ping", nil)
	req.Header.Set("Authorization", "Bearer "+signGuardTestToken(8, false))
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-staff, got %d", resp.Code)
	}

	// Staff -> 200
	req2 := httptest.NewRequest(http.MethodGet, "/staff/ping", nil)
	req2.Header.Set("Authorization", "Bearer "+signGuardTestToken(9, true))
	resp2 := httptest.NewRecorder()
	app.ServeHTTP(resp2, req2)
	if resp2.Code != http.StatusOK {
		t.Fatalf("expected 200 for staff, got %d", resp2.Code)
	}
}
