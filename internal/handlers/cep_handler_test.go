package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gestaodeatendimentos/crm-atendimentos/internal/cep"
)

func TestCEPLookup_MalformedReturnsNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Entrada malformada nem chega ao serviço, então a URL não importa.
	client := cep.NewClient("http://unused.invalid", time.Second, nil, 0)
	h := NewCEPHandler(client)

	for _, raw := range []string{"123", "123456789", "abcdefgh"} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/cep/"+raw, nil)
		c.Params = gin.Params{{Key: "cep", Value: raw}}

		h.Lookup(c)

		if w.Code != http.StatusOK {
			t.Fatalf("cep %q: expected 200, got %d", raw, w.Code)
		}

		var res cep.Result
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("cep %q: invalid body: %v", raw, err)
		}
		if res.Found {
			t.Fatalf("cep %q: expected success=false, got %+v", raw, res)
		}
	}
}
