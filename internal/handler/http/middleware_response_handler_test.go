package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter(t *testing.T) {
	tests := []struct {
		name         string
		explicitCode int // 0 means WriteHeader is not called explicitly
		writes       []string
		wantStatus   int
		wantSize     int
	}{
		{name: "nothing written", wantStatus: 0, wantSize: 0},
		{name: "implicit 200", writes: []string{"OK"}, wantStatus: http.StatusOK, wantSize: 2},
		{name: "sizes accumulate", writes: []string{"foo", "bar", "baz"}, wantStatus: http.StatusOK, wantSize: 9},
		{name: "explicit 404 then write", explicitCode: http.StatusNotFound, writes: []string{`{"detail":"Note not found"}`}, wantStatus: http.StatusNotFound, wantSize: 27},
		{name: "empty write still sets status", writes: []string{""}, wantStatus: http.StatusOK, wantSize: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := &responseWriter{ResponseWriter: rr}

			if tt.explicitCode != 0 {
				w.WriteHeader(tt.explicitCode)
			}
			for _, data := range tt.writes {
				_, err := w.Write([]byte(data))
				require.NoError(t, err)
			}

			assert.Equal(t, tt.wantStatus, w.status)
			assert.Equal(t, tt.wantSize, w.size)
			assert.Equal(t, tt.wantSize, rr.Body.Len())
		})
	}
}

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestResponseWriter_StatusOrOK(t *testing.T) {
	w := &responseWriter{ResponseWriter: httptest.NewRecorder()}
	assert.Equal(t, http.StatusOK, w.statusOrOK())

	w.WriteHeader(http.StatusTeapot)
	assert.Equal(t, http.StatusTeapot, w.statusOrOK())
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	assert.Same(t, rr, w.Unwrap())
	assert.NoError(t, http.NewResponseController(w).Flush())
}
