package httpresp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func record(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	r := gin.New()
	r.GET("/", handler)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	return w
}

func TestOKPassesDataThrough(t *testing.T) {
	w := record(func(c *gin.Context) {
		OK(c, []string{"a", "b"})
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := w.Body.String(); got != `["a","b"]` {
		t.Fatalf("body = %s, want bare array", got)
	}
}

func TestCreatedStatus(t *testing.T) {
	w := record(func(c *gin.Context) {
		Created(c, gin.H{"id": 7})
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}
}

func TestListEnvelope(t *testing.T) {
	w := record(func(c *gin.Context) {
		List(c, []string{"x", "y", "z"})
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var got ListResponse[string]
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Total != 3 || len(got.Data) != 3 {
		t.Fatalf("envelope = %+v, want 3 items and total 3", got)
	}
}
