package helpers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"blogger/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON_NoEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusCreated, map[string]int{"blogId": 3})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"blogId":3}`, rec.Body.String())
}

func TestError_Kinds(t *testing.T) {
	cases := []struct {
		err    error
		status int
		body   string
	}{
		{apperr.NotFound("Blog not found"), 404, `{"error":"Blog not found"}`},
		{apperr.Validation("Missing required fields", "The following fields are required: title", "title"), 400,
			`{"error":"Missing required fields","details":"The following fields are required: title","fields":["title"]}`},
		{apperr.Duplicate("Duplicate entry", "x"), 409, `{"error":"Duplicate entry","details":"x"}`},
		{apperr.FromDB(errors.New("boom"), "Failed to create blog"), 500, `{"error":"Failed to create blog","details":"boom"}`},
		{errors.New("plain"), 500, `{"error":"Internal server error"}`},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		Error(rec, tc.err)
		assert.Equal(t, tc.status, rec.Code)
		assert.JSONEq(t, tc.body, rec.Body.String())
	}
}

func TestMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	Message(rec, http.StatusOK, "Blog deleted successfully")

	var body MessageBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Blog deleted successfully", body.Message)
}

func TestDecodeJSON(t *testing.T) {
	var dst struct{ Name string }
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"Name":"x"}`))
	require.NoError(t, DecodeJSON(r, &dst))
	assert.Equal(t, "x", dst.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
	err := DecodeJSON(r, &dst)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}
