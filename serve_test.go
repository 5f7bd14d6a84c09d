package main

import (
	"bytes"
	"errors"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notecal/config"
)

func TestServePage(t *testing.T) {
	h := &calendarHandler{cfg: config.Default(), now: fixedNow}
	rec := httptest.NewRecorder()
	routes(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Equal(t, 48, strings.Count(body, `<tr class="line">`))
	assert.Contains(t, body, `<td class="day today">1</td>`)
}

func TestServeText(t *testing.T) {
	h := &calendarHandler{cfg: &config.Config{WeeksBefore: 0, WeeksAfter: 0}, now: fixedNow}
	rec := httptest.NewRecorder()
	routes(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/calendar.txt", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Février 2024   26 27 28 29│ 1  2  3")
	assert.NotContains(t, rec.Body.String(), "\x1b[")
}

func TestServeFavicon(t *testing.T) {
	h := &calendarHandler{cfg: config.Default(), now: fixedNow}
	rec := httptest.NewRecorder()
	routes(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/favicon.png", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	img, err := png.Decode(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
}

func TestServeBuildFailure(t *testing.T) {
	h := &calendarHandler{cfg: &config.Config{WeeksBefore: -2, WeeksAfter: 1}, now: fixedNow}
	rec := httptest.NewRecorder()
	routes(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "<table")
}

func TestServeUnknownPath(t *testing.T) {
	h := &calendarHandler{cfg: config.Default(), now: fixedNow}
	rec := httptest.NewRecorder()
	routes(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

type brokenWriter struct {
	header http.Header
	writes int
}

func (w *brokenWriter) Header() http.Header {
	if w.header == nil {
		w.header = make(http.Header)
	}
	return w.header
}

func (w *brokenWriter) Write(p []byte) (int, error) {
	w.writes++
	return 0, errors.New("connection reset")
}

func (w *brokenWriter) WriteHeader(int) {}

func TestWriteBodyToleratesClientGone(t *testing.T) {
	w := &brokenWriter{}
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	assert.NotPanics(t, func() {
		writeBody(w, req, bytes.NewBufferString("<html></html>"))
	})
	assert.Equal(t, 1, w.writes)
}

func TestServePageThroughBrokenConnection(t *testing.T) {
	h := &calendarHandler{cfg: config.Default(), now: fixedNow}
	w := &brokenWriter{}

	assert.NotPanics(t, func() {
		routes(h).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
}
