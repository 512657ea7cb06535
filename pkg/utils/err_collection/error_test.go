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

package errcollection

import (
	"testing"

	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
)

func TestErrorCollection(t *testing.T) {
	Convey("While using ErrorCollection", t, func() {
		var collection ErrorCollection

		Convey("Without any error added it should return nil", func() {
			So(collection.GetErrIfAny(), ShouldBeNil)
		})

		Convey("Nil errors should be ignored", func() {
			collection.Add(nil)
			So(collection.GetErrIfAny(), ShouldBeNil)
		})

		Convey("With one error added it should return it unchanged in message", func() {
			collection.Add(errors.New("foo"))

			err := collection.GetErrIfAny()
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldEqual, "foo")
		})

		Convey("With many errors added it should join messages with delimiter", func() {
			collection.Add(errors.New("foo"))
			collection.Add(errors.New("bar"))

			err := collection.GetErrIfAny()
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldEqual, "foo; bar")
		})
	})
}
