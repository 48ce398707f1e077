package store

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/summitops/regdesk/internal/core"
)

func TestHTTP_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/passports/janedoe_04021990.jpg" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write([]byte("jpeg-bytes"))
	}))
	defer srv.Close()

	s := NewHTTP(5 * time.Second)
	obj, err := s.Fetch(context.Background(), srv.URL+"/passports/janedoe_04021990.jpg")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	defer obj.Close()

	if obj.ContentType != "image/jpeg" {
		t.Errorf("ContentType = %q, want %q", obj.ContentType, "image/jpeg")
	}
	if obj.Name != "janedoe_04021990.jpg" {
		t.Errorf("Name = %q, want %q", obj.Name, "janedoe_04021990.jpg")
	}
	body, err := io.ReadAll(obj.Body)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if string(body) != "jpeg-bytes" {
		t.Errorf("Body = %q, want %q", body, "jpeg-bytes")
	}
}

func TestHTTP_Fetch_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	s := NewHTTP(5 * time.Second)
	_, err := s.Fetch(context.Background(), srv.URL+"/missing.pdf")
	if !errors.Is(err, core.ErrNotFound) {
		t.Errorf("Fetch() error = %v, want ErrNotFound", err)
	}
}

func TestHTTP_Fetch_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := NewHTTP(5 * time.Second)
	_, err := s.Fetch(context.Background(), srv.URL+"/broken.pdf")
	if !errors.Is(err, core.ErrUpstream) {
		t.Errorf("Fetch() error = %v, want ErrUpstream", err)
	}
}

func TestHTTP_Fetch_NonURLReference(t *testing.T) {
	s := NewHTTP(5 * time.Second)

	tests := []string{
		"not a url",
		"ftp://example.com/file.pdf",
		"passports/janedoe.jpg",
		"",
	}
	for _, ref := range tests {
		if _, err := s.Fetch(context.Background(), ref); !errors.Is(err, core.ErrNotFound) {
			t.Errorf("Fetch(%q) error = %v, want ErrNotFound", ref, err)
		}
	}
}

func TestHTTP_Fetch_HostDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // connection refused from here on

	s := NewHTTP(1 * time.Second)
	_, err := s.Fetch(context.Background(), srv.URL+"/file.pdf")
	if !errors.Is(err, core.ErrUpstream) {
		t.Errorf("Fetch() error = %v, want ErrUpstream", err)
	}
}

func TestHTTP_Search_Unsupported(t *testing.T) {
	s := NewHTTP(5 * time.Second)

	_, err := s.Search(context.Background(), core.FetchQuery{Folder: "passports", Filename: "x.jpg"})
	if !errors.Is(err, core.ErrNotFound) {
		t.Errorf("Search() error = %v, want ErrNotFound", err)
	}
}

func TestContentTypeFor(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		path   string
		want   string
	}{
		{"stored type kept", "image/jpeg", "/x.bin", "image/jpeg"},
		{"octet-stream falls back to extension", "application/octet-stream", "/scan.pdf", "application/pdf"},
		{"binary falls back to extension", "binary/octet-stream", "/photo.jpg", "image/jpeg"},
		{"no information at all", "", "/mystery", "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := contentTypeFor(tt.stored, tt.path)
			if got != tt.want {
				t.Errorf("contentTypeFor(%q, %q) = %q, want %q", tt.stored, tt.path, got, tt.want)
			}
		})
	}
}
