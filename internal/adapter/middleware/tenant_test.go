package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestTenant(t *testing.T) {
	cases := []struct {
		name       string
		header     string
		defaultID  string
		wantStatus int
		wantID     string
	}{
		{"header wins", "biz-h", "biz-d", http.StatusOK, "biz-h"},
		{"default used", "", "biz-d", http.StatusOK, "biz-d"},
		{"neither", "", "", http.StatusBadRequest, ""},
		{"blank header falls back", "   ", "biz-d", http.StatusOK, "biz-d"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			var seen string
			called := false
			e.GET("/x", func(c echo.Context) error {
				called = true
				seen = BusinessID(c)
				return c.NoContent(http.StatusOK)
			}, Tenant(tc.defaultID))

			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			if tc.header != "" {
				req.Header.Set(HeaderBusinessID, tc.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
			if tc.wantStatus == http.StatusBadRequest {
				if called {
					t.Fatalf("handler must not run without a tenant")
				}
				if !strings.Contains(rec.Body.String(), `"error":"Missing business_id"`) ||
					!strings.Contains(rec.Body.String(), `"success":false`) {
					t.Fatalf("unexpected body %s", rec.Body.String())
				}
				return
			}
			if seen != tc.wantID {
				t.Fatalf("BusinessID = %q, want %q", seen, tc.wantID)
			}
		})
	}
}

func TestBusinessID_OutsideTenant(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	if got := BusinessID(c); got != "" {
		t.Fatalf("want empty, got %q", got)
	}
}
