package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestIsRemote 测试远程地址判断
func TestIsRemote(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"https://example.com/data/articles.json", true},
		{"HTTP://example.com/a.json", true},
		{"data/articles.json", false},
		{"/abs/path.json", false},
		{"ftp://example.com/a.json", false},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			if got := IsRemote(tt.src); got != tt.want {
				t.Errorf("IsRemote(%q) = %v, want %v", tt.src, got, tt.want)
			}
		})
	}
}

// TestDownload 测试下载成功和非 200 状态
func TestDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"articles":[]}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	data, err := Download(ctx, srv.URL+"/articles.json", nil)
	if err != nil {
		t.Fatalf("Download() error = %v", err)
	}
	if data.String() != `{"articles":[]}` {
		t.Errorf("Download() = %q", data.String())
	}

	_, err = Download(ctx, srv.URL+"/missing.json", srv.Client())
	if err == nil {
		t.Fatal("Download() should fail on 404")
	}
	if !strings.Contains(err.Error(), "HTTP 404") {
		t.Errorf("Download() error = %v, want HTTP 404", err)
	}
}

// TestRead_File 测试读取本地文件
func TestRead_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "about.json")
	if err := os.WriteFile(path, []byte(`{"pageTitle":"Về chúng tôi"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	var v struct {
		PageTitle string `json:"pageTitle"`
	}
	if err := JSON(context.Background(), path, nil, &v); err != nil {
		t.Fatalf("JSON() error = %v", err)
	}
	if v.PageTitle != "Về chúng tôi" {
		t.Errorf("PageTitle = %q", v.PageTitle)
	}

	if _, err := Read(context.Background(), filepath.Join(dir, "nope.json"), nil); err == nil {
		t.Error("Read() should fail for missing file")
	}
}

// TestJSON_Invalid 测试无效 JSON
func TestJSON_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{not json`), 0o644); err != nil {
		t.Fatal(err)
	}
	var v map[string]any
	err := JSON(context.Background(), path, nil, &v)
	if err == nil || !strings.HasPrefix(err.Error(), "decode ") {
		t.Errorf("JSON() error = %v, want decode error", err)
	}
}

// TestRead_CanceledContext 测试已取消的 context
func TestRead_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Read(ctx, "whatever.json", nil); err == nil {
		t.Error("Read() should fail with canceled context")
	}
}
