// Package fixtures loads the static JSON documents the app is served from.
package fixtures

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"strings"

	"district-server/api"
	"district-server/util"
)

// Source decodes a named fixture document into dst.
type Source interface {
	Load(ctx context.Context, name string, dst any) error
	String() string
}

// FSSource reads fixtures from a file system (the embedded resources or a directory).
type FSSource struct {
	fsys  fs.FS
	label string
}

// NewFSSource creates a Source over fsys; label is used in logs only.
func NewFSSource(fsys fs.FS, label string) *FSSource {
	return &FSSource{fsys: fsys, label: label}
}

func (s *FSSource) Load(ctx context.Context, name string, dst any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return util.ReadJSONFromFS(s.fsys, name, dst)
}

func (s *FSSource) String() string {
	return "fs:" + s.label
}

// RemoteSource fetches fixtures published under a base URL.
type RemoteSource struct {
	*api.HTTPClient
}

// NewRemoteSource creates a Source backed by the shared HTTP client.
func NewRemoteSource(httpClient *api.HTTPClient) *RemoteSource {
	return &RemoteSource{HTTPClient: httpClient}
}

func (s *RemoteSource) Load(ctx context.Context, name string, dst any) error {
	raw, err := s.GetRaw(ctx, "/"+strings.TrimPrefix(name, "/"))
	if err != nil {
		return fmt.Errorf("failed to fetch fixture %q: %w", name, err)
	}
	if err := util.DecodeJSON(bytes.NewReader(raw), dst); err != nil {
		return fmt.Errorf("fixture %q: %w", name, err)
	}
	return nil
}

func (s *RemoteSource) String() string {
	return "remote:" + s.BaseURL
}
