package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/arrkit/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func record(handler func(c *gin.Context)) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	handler(c)
	return w
}

func TestRespondOK(t *testing.T) {
	w := record(func(c *gin.Context) {
		RespondOK(c, []int{1, 2, 3})
	})
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	var body DataResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Data == nil {
		t.Error("missing data envelope")
	}
}

func TestRespondCreated(t *testing.T) {
	w := record(func(c *gin.Context) {
		RespondCreated(c, map[string]string{"id": "1"})
	})
	if w.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", w.Code)
	}
}

func TestRespondNoContent(t *testing.T) {
	w := record(RespondNoContent)
	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("unexpected body %q", w.Body.String())
	}
}

func TestRespondWithStructuredError(t *testing.T) {
	w := record(func(c *gin.Context) {
		RespondWithError(c, errors.InvalidArgument("bad bound"))
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	var body errors.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Error.Code != errors.CodeInvalidArgument {
		t.Errorf("code = %s", body.Error.Code)
	}
}

func TestRespondWithPlainError(t *testing.T) {
	w := record(func(c *gin.Context) {
		RespondWithError(c, http.ErrHandlerTimeout)
	})
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}
