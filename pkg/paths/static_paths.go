package paths

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"

	"github.com/macropower/pathkit/pkg/patherrors"
	"github.com/macropower/pathkit/pkg/pathutil"
)

// PathEncoder converts logical keys to path-safe names and back.
type PathEncoder interface {
	Encode(key string) string
	Decode(name string) (string, error)
}

// Base64PathEncoder encodes keys with URL-safe base64, making arbitrary keys
// usable as file names.
type Base64PathEncoder struct{}

// NewBase64PathEncoder creates a [Base64PathEncoder].
func NewBase64PathEncoder() *Base64PathEncoder {
	return &Base64PathEncoder{}
}

func (e *Base64PathEncoder) Encode(key string) string {
	return base64.URLEncoding.EncodeToString([]byte(key))
}

func (e *Base64PathEncoder) Decode(name string) (string, error) {
	data, err := base64.URLEncoding.DecodeString(name)
	if err != nil {
		return "", fmt.Errorf("decode path name: %w", err)
	}

	return string(data), nil
}

// StaticTempPaths derives stable paths under a root directory by encoding
// each key into a file name. The same key always yields the same path, both
// within and across processes.
type StaticTempPaths struct {
	enc  PathEncoder
	root string
}

// NewStaticTempPaths creates a [StaticTempPaths] rooted at root, creating the
// root directory if needed.
func NewStaticTempPaths(root string, enc PathEncoder) (*StaticTempPaths, error) {
	err := os.MkdirAll(root, 0o700)
	if err != nil {
		return nil, fmt.Errorf("create root %q: %w", root, patherrors.FromOS(err))
	}

	return &StaticTempPaths{
		root: root,
		enc:  enc,
	}, nil
}

func (p *StaticTempPaths) keyToPath(key string) string {
	return pathutil.Clean(p.root + "/" + p.enc.Encode(key))
}

// Add is a no-op, since paths are fully derived from keys.
func (p *StaticTempPaths) Add(_, _ string) {}

// GetPath returns the path derived from key.
func (p *StaticTempPaths) GetPath(key string) (string, error) {
	return p.keyToPath(key), nil
}

// GetKey recovers the key that derives path.
func (p *StaticTempPaths) GetKey(path string) (string, error) {
	key, err := p.enc.Decode(pathutil.Base(path))
	if err != nil {
		return "", fmt.Errorf("get key for %q: %w", path, err)
	}

	return key, nil
}

// GetPathIfExists returns the path derived from key if it exists on disk, or
// "" otherwise.
func (p *StaticTempPaths) GetPathIfExists(key string) string {
	path := p.keyToPath(key)
	if Exists(path, true) {
		return path
	}

	return ""
}

// GetPaths returns the key-to-path map for every decodable entry currently
// under the root directory.
func (p *StaticTempPaths) GetPaths() map[string]string {
	out := map[string]string{}

	entries, err := os.ReadDir(p.root)
	if err != nil {
		slog.Error("read temp path root",
			slog.String("root", p.root),
			slog.Any("err", patherrors.FromOS(err)),
		)

		return out
	}

	for _, entry := range entries {
		key, err := p.enc.Decode(entry.Name())
		if err != nil {
			slog.Debug("skip undecodable entry",
				slog.String("name", entry.Name()),
				slog.Any("err", err),
			)

			continue
		}

		out[key] = pathutil.Clean(p.root + "/" + entry.Name())
	}

	return out
}
