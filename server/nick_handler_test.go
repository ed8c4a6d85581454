package server

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveNickHandlerSuccess(t *testing.T) {
	env := newTestEnv(t)
	registerAna(t, env)

	req := httptest.NewRequest(http.MethodPost, "/save-nick", strings.NewReader(`{"user_id":1,"nick":"anita"}`))
	rr := httptest.NewRecorder()
	env.handler.SaveNickHandler(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Nick guardado con éxito", decodeBody(t, rr)["message"])
}

func TestSaveNickHandlerMissingFields(t *testing.T) {
	env := newTestEnv(t)

	for _, body := range []string{`{}`, `{"user_id":1}`, `{"nick":"anita"}`, `{"user_id":0,"nick":"anita"}`} {
		req := httptest.NewRequest(http.MethodPost, "/save-nick", strings.NewReader(body))
		rr := httptest.NewRecorder()
		env.handler.SaveNickHandler(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code, "body %s", body)
		assert.Equal(t, "user_id y nick son requeridos", decodeBody(t, rr)["error"])
	}
}

func TestSaveNickHandlerUnknownUser(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/save-nick", strings.NewReader(`{"user_id":99,"nick":"ghost"}`))
	rr := httptest.NewRecorder()
	env.handler.SaveNickHandler(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Usuario no encontrado", decodeBody(t, rr)["error"])
}

func TestSaveNickHandlerStorageFault(t *testing.T) {
	env := newTestEnv(t)
	registerAna(t, env)
	env.nicks.createErr = errors.New("connection reset")

	req := httptest.NewRequest(http.MethodPost, "/save-nick", strings.NewReader(`{"user_id":1,"nick":"anita"}`))
	rr := httptest.NewRecorder()
	env.handler.SaveNickHandler(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, decodeBody(t, rr)["error"], "Error al guardar el nick")
}

func getNick(t *testing.T, env *testEnv, userID string) *httptest.ResponseRecorder {
	t.Helper()
	router := NewRouter(env.handler, env.cfg)
	req := httptest.NewRequest(http.MethodGet, "/get-nick/"+userID, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestGetNickHandlerNoNickYet(t *testing.T) {
	env := newTestEnv(t)
	registerAna(t, env)

	rr := getNick(t, env, "1")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Nil(t, decodeBody(t, rr)["nick"])
}

func TestGetNickHandlerIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	registerAna(t, env)

	first := getNick(t, env, "1")
	second := getNick(t, env, "1")
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestGetNickHandlerFirstNickWins(t *testing.T) {
	env := newTestEnv(t)
	registerAna(t, env)

	for _, nick := range []string{"anita", "ana2"} {
		req := httptest.NewRequest(http.MethodPost, "/save-nick", strings.NewReader(`{"user_id":1,"nick":"`+nick+`"}`))
		rr := httptest.NewRecorder()
		env.handler.SaveNickHandler(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)
	}

	rr := getNick(t, env, "1")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "anita", decodeBody(t, rr)["nick"])
}

// Full scenario: register, login with the DNI-derived password, save a nick,
// read it back.
func TestRegisterLoginSaveNickGetNickScenario(t *testing.T) {
	env := newTestEnv(t)
	router := NewRouter(env.handler, env.cfg)

	do := func(method, path, body string) *httptest.ResponseRecorder {
		var reader *strings.Reader
		if body == "" {
			reader = strings.NewReader("")
		} else {
			reader = strings.NewReader(body)
		}
		req := httptest.NewRequest(method, path, reader)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		return rr
	}

	rr := do(http.MethodPost, "/register", `{"nombres":"Ana","apellidos":"Lopez","email":"ana@x.com","dni":"12345678"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = do(http.MethodPost, "/login", `{"email":"ana@x.com","password":"12345678"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, float64(1), decodeBody(t, rr)["userId"])

	rr = do(http.MethodPost, "/save-nick", `{"user_id":1,"nick":"anita"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = do(http.MethodGet, "/get-nick/1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "anita", decodeBody(t, rr)["nick"])
}
