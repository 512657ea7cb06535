// Copyright (c) 2017 Intel Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package metadata

import (
	"github.com/pkg/errors"

	"github.com/intelsdi-x/gauss/pkg/conf"
)

// Predefined kinds of metadata.
// This selector allows to group metadata by their common characteristics.
// For instance TypeFlags can be added to parameters passed to gauss,
// TypeEnviron for environment variables and TypePlatform for recorded
// platform characteristics like number of CPUs and so on. TypeSelection
// and TypeMapping group the outcome summaries of an experiment run.
// Note that a kind is just a string and each experiment can define its
// own personalized kinds of metadata.
const (
	TypeEmpty     = ""
	TypeFlags     = "flags"
	TypeEnviron   = "environ"
	TypePlatform  = "platform"
	TypeSelection = "selection"
	TypeMapping   = "mapping"
)

// Metadata interface defines methods which must be supported by DB backend
type Metadata interface {
	// Record stores a key and value and associates with the experiment id.
	Record(key string, value string, kind string) error
	// RecordMap stores a key and value map and associates with the experiment id.
	RecordMap(metadata map[string]string, kind string) error
	// GetByKind retrieves single metadata kind from the database.
	// Returns error if no kind or too many groups found.
	GetByKind(kind string) (map[string]string, error)
	// Clear deletes all metadata entries associated with the current experiment id.
	Clear() error
}

// NewDefault initialize metadata object which is configured via the
// metadata_db flag or environment variable.
func NewDefault(experimentID string) (Metadata, error) {
	switch conf.DefaultMetadataDB.Value() {
	case "none":
		return NewNoop(), nil
	case "cassandra":
		return NewCassandra(experimentID, DefaultCassandraConfig())
	case "influxdb":
		return NewInfluxDB(experimentID, DefaultInfluxDBConfig())
	}

	return nil, errors.Errorf("unsupported database for metadata: %s", conf.DefaultMetadataDB.Value())
}

// Noop discards every record. It backs experiments which run without
// any metadata database configured.
type Noop struct{}

// NewNoop returns a Metadata implementation which stores nothing.
func NewNoop() Metadata {
	return Noop{}
}

// Record discards the given key and value.
func (Noop) Record(key, value, kind string) error {
	return nil
}

// RecordMap discards the given map.
func (Noop) RecordMap(metadata map[string]string, kind string) error {
	return nil
}

// GetByKind always fails as nothing is ever stored.
func (Noop) GetByKind(kind string) (map[string]string, error) {
	return nil, errors.New("no metadata backend configured")
}

// Clear does nothing.
func (Noop) Clear() error {
	return nil
}
