// Copyright 2017-2018 The Argo Authors
// Modifications Copyright 2024-2025 Jacob Colvin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package paths

import (
	"fmt"
	"maps"
	"sync"

	"github.com/google/uuid"

	"github.com/macropower/pathkit/pkg/pathutil"
)

// TempPaths maps logical keys to temporary path locations.
type TempPaths interface {
	Add(key, value string)
	GetPath(key string) (string, error)
	GetPathIfExists(key string) string
	GetPaths() map[string]string
}

// RandomizedTempPaths generates and memoizes random paths under a root
// directory, each mapped to a caller-supplied key. It is safe for concurrent
// use.
type RandomizedTempPaths struct {
	paths map[string]string
	root  string
	mu    sync.RWMutex
}

// NewRandomizedTempPaths creates a [RandomizedTempPaths] rooted at root.
func NewRandomizedTempPaths(root string) *RandomizedTempPaths {
	return &RandomizedTempPaths{
		root:  root,
		paths: map[string]string{},
	}
}

// Add records an explicit path for key, overriding generation.
func (p *RandomizedTempPaths) Add(key, value string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.paths[key] = value
}

// GetPath returns the path for key, generating and memoizing a random one on
// first use.
func (p *RandomizedTempPaths) GetPath(key string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if val, ok := p.paths[key]; ok {
		return val, nil
	}

	uniqueID, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate uuid: %w", err)
	}

	path := pathutil.Clean(p.root + "/" + uniqueID.String())
	p.paths[key] = path

	return path, nil
}

// GetPathIfExists returns the path previously recorded for key, or "" when
// none exists.
func (p *RandomizedTempPaths) GetPathIfExists(key string) string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.paths[key]
}

// GetPaths returns a copy of the key-to-path map.
func (p *RandomizedTempPaths) GetPaths() map[string]string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make(map[string]string, len(p.paths))
	maps.Copy(out, p.paths)

	return out
}
