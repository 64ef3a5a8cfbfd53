// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The todos-backend Authors

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithLogging_EmitsOneLinePerRequest(t *testing.T) {
	var logs bytes.Buffer
	zl := zerolog.New(&logs)

	handler := newTestHandler(nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	})

	request := httptest.NewRequest(http.MethodGet, "/health?verbose=1", nil)
	request = request.WithContext(zl.WithContext(request.Context()))
	recorder := httptest.NewRecorder()

	handler.withLogging(next).ServeHTTP(recorder, request)

	require.Equal(t, http.StatusTeapot, recorder.Code)

	logged := logs.String()
	assert.Contains(t, logged, `"uri":"/health?verbose=1"`)
	assert.Contains(t, logged, `"method":"GET"`)
	assert.Contains(t, logged, `"status":418`)
	assert.Contains(t, logged, `"size":15`)
	assert.Contains(t, logged, `"duration":`)
}

func TestResponseWriter_DefaultsTo200OnImplicitWrite(t *testing.T) {
	var logs bytes.Buffer
	zl := zerolog.New(&logs)

	handler := newTestHandler(nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// no explicit WriteHeader; net/http sends 200
		w.Write([]byte("ok"))
	})

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request = request.WithContext(zl.WithContext(request.Context()))
	recorder := httptest.NewRecorder()

	handler.withLogging(next).ServeHTTP(recorder, request)

	assert.Contains(t, logs.String(), `"status":200`)
	assert.Contains(t, logs.String(), `"size":2`)
}
