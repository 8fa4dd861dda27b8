package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sync"

	"golang.org/x/sync/errgroup"
)

const uploadPath = "/upload/single"

// File is one pending upload: a display name and its content.
type File struct {
	Name   string
	Reader io.Reader
}

// UploadResult reports a batch outcome. URLs holds every successful hosted
// URL; a failed file costs nothing but its own slot.
type UploadResult struct {
	URLs     []string
	Uploaded int
	Failed   int
}

type UploadStore struct {
	client *Client
}

// Upload sends one file as multipart form data and returns its hosted URL.
func (s *UploadStore) Upload(ctx context.Context, name string, r io.Reader) (string, error) {
	sess, ok := s.client.session.Resolve()
	if !ok {
		return "", ErrAuthRequired
	}
	if err := s.client.throttle(ctx, uploadPath); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", name)
	if err != nil {
		return "", fmt.Errorf("build multipart form: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.client.baseURL+uploadPath, &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+sess.Token)

	res, err := s.client.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrUploadFailed, name, err)
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		return "", fmt.Errorf("%w: %s: http %d", ErrUploadFailed, name, res.StatusCode)
	}

	var out struct {
		FileURL string `json:"fileUrl"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil || out.FileURL == "" {
		return "", fmt.Errorf("%w: %s: no fileUrl in response", ErrUploadFailed, name)
	}
	return out.FileURL, nil
}

// UploadAll fans the batch out concurrently and joins on all of it. A failed
// file is dropped from the result, never aborting its siblings; the counts
// tell the caller how the batch went. URL order follows completion order,
// which callers must not rely on.
func (s *UploadStore) UploadAll(ctx context.Context, files []File) (*UploadResult, error) {
	var (
		mu     sync.Mutex
		result UploadResult
	)

	g := new(errgroup.Group)
	for _, f := range files {
		f := f
		g.Go(func() error {
			url, err := s.Upload(ctx, f.Name, f.Reader)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				s.client.logger.Warnw("file upload failed", "file", f.Name, "error", err)
				result.Failed++
				return nil
			}
			result.URLs = append(result.URLs, url)
			result.Uploaded++
			return nil
		})
	}
	_ = g.Wait() // workers record their own failures

	return &result, nil
}
