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
	"testing"

	"github.com/nu7hatch/gouuid"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/intelsdi-x/gauss/pkg/metadata"
)

// Requires a Cassandra instance reachable under the cassandra_address flag
// (127.0.0.1 by default).
func TestCassandraMetadata(t *testing.T) {
	testMetadata := map[string]map[string]string{
		metadata.TypeFlags:   {"log": "error", "parallelism": "4"},
		metadata.TypeEnviron: {"GAUSS_LOG": "error"},
		metadata.TypeSelection: {
			"y1_ideal":                 "y42",
			"y1_sum_squared_deviation": "33.71",
			"y1_max_absolute_deviation": "0.49",
		},
		metadata.TypeMapping: {"test_points": "100", "mapped_points": "87", "dropped_points": "13"},
	}

	Convey("While using the Cassandra metadata backend", t, func() {
		id, err := uuid.NewV4()
		So(err, ShouldBeNil)

		cassandraMetadata, err := metadata.NewCassandra(id.String(), metadata.DefaultCassandraConfig())
		So(err, ShouldBeNil)
		Reset(func() {
			So(cassandraMetadata.Clear(), ShouldBeNil)
		})

		Convey("A single recorded pair is retrievable by its kind", func() {
			So(cassandraMetadata.Record("host", "node17", metadata.TypeEmpty), ShouldBeNil)

			retrieved, err := cassandraMetadata.GetByKind(metadata.TypeEmpty)
			So(err, ShouldBeNil)
			So(retrieved, ShouldResemble, map[string]string{"host": "node17"})
		})

		Convey("Maps of every experiment kind are stored and retrieved intact", func() {
			for kind, expected := range testMetadata {
				So(cassandraMetadata.RecordMap(expected, kind), ShouldBeNil)
			}

			for kind, expected := range testMetadata {
				retrieved, err := cassandraMetadata.GetByKind(kind)
				So(err, ShouldBeNil)
				So(retrieved, ShouldResemble, expected)
			}
		})

		Convey("Retrieving an unknown kind yields an error", func() {
			retrieved, err := cassandraMetadata.GetByKind("abcd")
			So(err, ShouldNotBeNil)
			So(retrieved, ShouldHaveLength, 0)
		})

		Convey("Clear removes everything recorded for the experiment", func() {
			So(cassandraMetadata.Record("host", "node17", metadata.TypeEmpty), ShouldBeNil)
			So(cassandraMetadata.Clear(), ShouldBeNil)

			retrieved, err := cassandraMetadata.GetByKind(metadata.TypeEmpty)
			So(err, ShouldNotBeNil)
			So(retrieved, ShouldHaveLength, 0)
		})
	})
}
