package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   language.Tag
	}{
		{name: "empty", header: "", want: language.Spanish},
		{name: "english", header: "en-US,en;q=0.9", want: language.English},
		{name: "regional_spanish", header: "es-CO", want: language.Spanish},
		{name: "unsupported", header: "de-DE", want: language.Spanish},
		{name: "weighted", header: "fr;q=0.9, en;q=0.8", want: language.English},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.header, language.Spanish); got != tt.want {
				t.Errorf("Resolve(%q) = %v, want %v", tt.header, got, tt.want)
			}
		})
	}
}

func TestPluralCounts(t *testing.T) {
	es := message.NewPrinter(language.Spanish)
	en := message.NewPrinter(language.English)

	tests := []struct {
		name string
		p    *message.Printer
		key  string
		n    int
		want string
	}{
		{name: "es_one_namespace", p: es, key: FoundNamespaces, n: 1, want: "Se encontró 1 espacio"},
		{name: "es_many_namespaces", p: es, key: FoundNamespaces, n: 3, want: "Se encontraron 3 espacios"},
		{name: "es_zero_expenses", p: es, key: FoundExpenses, n: 0, want: "Se encontraron 0 gastos"},
		{name: "es_one_category", p: es, key: FoundCategories, n: 1, want: "Se encontró 1 categoría"},
		{name: "en_one_expense", p: en, key: FoundExpenses, n: 1, want: "found 1 expense"},
		{name: "en_many_categories", p: en, key: FoundCategories, n: 2, want: "found 2 categories"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Sprintf(tt.key, tt.n); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(Middleware(ParseTag("es")))
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, T(c, "session expired"))
	})

	t.Run("spanish_default", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))
		if rec.Body.String() != "Su sesión expiró" {
			t.Errorf("got %q", rec.Body.String())
		}
		if rec.Header().Get("Content-Language") != "es" {
			t.Errorf("Content-Language = %q", rec.Header().Get("Content-Language"))
		}
	})

	t.Run("english", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
		req.Header.Set("Accept-Language", "en")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Body.String() != "session expired" {
			t.Errorf("got %q", rec.Body.String())
		}
	})
}

func TestCatalogCoversSpanish(t *testing.T) {
	es := message.NewPrinter(language.Spanish)
	for key, want := range spanish {
		if got := es.Sprintf(key); got != want {
			t.Errorf("Sprintf(%q) = %q, want %q", key, got, want)
		}
	}
}

func TestParseTag(t *testing.T) {
	if ParseTag("en-GB") != language.English {
		t.Error("expected en-GB to map to English")
	}
	if ParseTag("xx-invalid-") != Default {
		t.Error("expected invalid tag to fall back to the default")
	}
	if ParseTag("fr") != Default {
		t.Error("expected unsupported tag to fall back to the default")
	}
}
