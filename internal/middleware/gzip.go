package middleware

import (
	"compress/gzip"
	"net/http"
	"strings"
)

// gzipWriter откладывает заголовки до первой записи тела: ответ без тела
// уходит как есть, без Content-Encoding.
type gzipWriter struct {
	http.ResponseWriter
	gz     *gzip.Writer
	status int
}

func (w *gzipWriter) WriteHeader(statusCode int) {
	if w.status == 0 {
		w.status = statusCode
	}
}

func (w *gzipWriter) Write(b []byte) (int, error) {
	if w.gz == nil {
		if w.status == 0 {
			w.status = http.StatusOK
		}
		// длина меняется после сжатия
		w.Header().Del("Content-Length")
		w.Header().Set("Content-Encoding", "gzip")
		w.ResponseWriter.WriteHeader(w.status)
		gz, err := gzip.NewWriterLevel(w.ResponseWriter, gzip.BestSpeed)
		if err != nil {
			return 0, err
		}
		w.gz = gz
	}
	return w.gz.Write(b)
}

// Close дописывает gzip-поток или отправляет отложенный статус пустого ответа.
func (w *gzipWriter) Close() error {
	if w.gz != nil {
		return w.gz.Close()
	}
	if w.status != 0 {
		w.ResponseWriter.WriteHeader(w.status)
	}
	return nil
}

// WithGzip сжимает ответ, если клиент принимает gzip.
func WithGzip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Add("Vary", "Accept-Encoding")
		gw := &gzipWriter{ResponseWriter: w}
		defer func() {
			if err := gw.Close(); err != nil {
				sugar.Warnw("gzip close failed", "uri", r.RequestURI, "error", err)
			}
		}()
		next.ServeHTTP(gw, r)
	})
}
