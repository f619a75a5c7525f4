package commands

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"StuffKeeper/internal/config"
)

// withTempConfig переопределяет пользовательские каталоги на время теста,
// чтобы токен создавался в temp.
func withTempConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	return dir
}

// captureOut подменяет Out буфером до конца теста.
func captureOut(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := Out
	Out = &buf
	t.Cleanup(func() { Out = prev })
	return &buf
}

type recorded struct {
	method, path, query, auth string
	body                     []byte
}

// fakeServer отвечает status/body на любой запрос и запоминает последний запрос.
func fakeServer(t *testing.T, status int, body string) (*config.Config, *recorded) {
	t.Helper()
	rec := &recorded{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.query = r.URL.RawQuery
		rec.auth = r.Header.Get("Authorization")
		buf := new(bytes.Buffer)
		_, _ = buf.ReadFrom(r.Body)
		rec.body = buf.Bytes()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	return &config.Config{ServerURL: ts.URL}, rec
}
