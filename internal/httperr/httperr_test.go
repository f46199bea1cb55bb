package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKinds(t *testing.T) {
	wrapped := fmt.Errorf("contratar plano: %w", ErrConflict("mensalidade_duplicada", "Já existe."))

	assert.True(t, IsConflict(wrapped))
	assert.False(t, IsNotFound(wrapped))
	assert.True(t, IsBusiness(wrapped, "mensalidade_duplicada"))
	assert.False(t, IsBusiness(errors.New("x"), "mensalidade_duplicada"))

	assert.Equal(t, http.StatusNotFound, ErrNotFound("a", "b").(BusinessError).Status())
	assert.Equal(t, http.StatusConflict, ErrConflict("a", "b").(BusinessError).Status())
	assert.Equal(t, http.StatusBadRequest, ErrInvalidState("a", "b").(BusinessError).Status())
	assert.Equal(t, http.StatusBadRequest, ErrValidation("a", "b").(BusinessError).Status())
}

func TestRespond(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
		code   string
		msg    string
	}{
		{"not found", ErrNotFound("plano_not_found", "Plano não encontrado."), 404, "plano_not_found", "Plano não encontrado."},
		{"invalid state", ErrInvalidState("mensalidade_ja_paga", "Mensalidade já está paga."), 400, "mensalidade_ja_paga", "Mensalidade já está paga."},
		{"conflict", ErrConflict("cpf_duplicado", "Já existe cliente com este CPF."), 409, "cpf_duplicado", "Já existe cliente com este CPF."},
		{"wrapped", fmt.Errorf("tx: %w", ErrConflict("mensalidade_duplicada", "Já existe.")), 409, "mensalidade_duplicada", "Já existe."},
		{"no message", BusinessError{Kind: KindValidation, Code: "invalid_request"}, 400, "invalid_request", "invalid_request"},
		{"store failure", errors.New("connection refused"), 500, "store_failure", "connection refused"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			Respond(c, tc.err)

			assert.Equal(t, tc.status, w.Code)
			var body HTTPError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.code, body.Code)
			assert.Equal(t, tc.msg, body.Message)
		})
	}
}
