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
	"bufio"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	// CPUModelNameKey defines a key in the platform metrics map
	CPUModelNameKey = "cpu_model"
	// KernelVersionKey defines a key in the platform metrics map
	KernelVersionKey = "kernel_version"
	// OSKey defines a key in the platform metrics map
	OSKey = "os"
	// ArchKey defines a key in the platform metrics map
	ArchKey = "arch"
	// CPUCountKey defines a key in the platform metrics map
	CPUCountKey = "cpus"
	// GoMaxProcsKey defines a key in the platform metrics map
	GoMaxProcsKey = "gomaxprocs"
	// GoVersionKey defines a key in the platform metrics map
	GoVersionKey = "go_version"
)

// GetPlatformMetrics returns map of strings with platform metrics.
// If a metric could not be retrieved the value for the key is an empty string.
func GetPlatformMetrics() (platformMetrics map[string]string) {
	platformMetrics = make(map[string]string)

	item, err := CPUModelName()
	if err != nil {
		logrus.Warnf("GetPlatformMetrics: failed to get %s metric, skipping: %s", CPUModelNameKey, err.Error())
	}
	platformMetrics[CPUModelNameKey] = item

	item, err = KernelVersion()
	if err != nil {
		logrus.Warnf("GetPlatformMetrics: failed to get %s metric, skipping: %s", KernelVersionKey, err.Error())
	}
	platformMetrics[KernelVersionKey] = item

	platformMetrics[OSKey] = runtime.GOOS
	platformMetrics[ArchKey] = runtime.GOARCH
	platformMetrics[CPUCountKey] = strconv.Itoa(runtime.NumCPU())
	platformMetrics[GoMaxProcsKey] = strconv.Itoa(runtime.GOMAXPROCS(0))
	platformMetrics[GoVersionKey] = runtime.Version()

	return platformMetrics
}

// CPUModelName reads /proc/cpuinfo and returns the 'model name' line.
// Note that it returns only the first occurrence of the model since mixed
// cpu models in > 2 CPUs are not supported.
func CPUModelName() (string, error) {
	file, err := os.Open("/proc/cpuinfo")
	if err != nil {
		return "", errors.Wrap(err, "cannot open /proc/cpuinfo file")
	}
	defer file.Close()

	procScanner := bufio.NewScanner(file)

	for procScanner.Scan() {
		line := procScanner.Text()
		chunks := strings.SplitN(line, ":", 2)
		if len(chunks) < 2 {
			continue
		}
		key := strings.TrimSpace(chunks[0])
		value := strings.TrimSpace(chunks[1])
		if key == "model name" {
			return value, nil
		}
	}
	// Return error from scanner or newly created one.
	err = procScanner.Err()
	if err == nil {
		err = errors.New("did not find phrase 'model name' in /proc/cpuinfo")
	}
	return "", err
}

// KernelVersion returns kernel version as stated in /proc/version.
func KernelVersion() (string, error) {
	return readContents("/proc/version")
}

func readContents(name string) (string, error) {
	content, err := os.ReadFile(name)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", name)
	}
	return strings.TrimSpace(string(content)), nil
}
