package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// DefaultTimeout HTTP 请求默认超时
const DefaultTimeout = 10 * time.Second

// IsRemote 检查 src 是否为 http(s) URL
func IsRemote(src string) bool {
	lower := strings.ToLower(src)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Download 下载文档，只尝试一次
func Download(ctx context.Context, url string, client *http.Client) (*bytes.Buffer, error) {
	if client == nil {
		client = &http.Client{
			Timeout: DefaultTimeout,
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", url, err)
	}

	return &buf, nil
}

// Read 读取本地文件或下载远程文档
func Read(ctx context.Context, src string, client *http.Client) (*bytes.Buffer, error) {
	if IsRemote(src) {
		return Download(ctx, src, client)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return nil, err
	}
	return bytes.NewBuffer(data), nil
}

// JSON 读取 src 并解码到 v
func JSON(ctx context.Context, src string, client *http.Client, v any) error {
	data, err := Read(ctx, src, client)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data.Bytes(), v); err != nil {
		return fmt.Errorf("decode %s: %w", src, err)
	}
	return nil
}
