// Copyright 2026 The gVisor Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package linuxerr

import (
	goerrors "errors"
	"testing"

	"golang.org/x/sys/unix"

	"github.com/hostbridge/hostbridge/pkg/errors"
)

func TestErrorFromUnix(t *testing.T) {
	if err := ErrorFromUnix(0); err != nil {
		t.Errorf("ErrorFromUnix(0) = %v, want nil", err)
	}
	if err := ErrorFromUnix(unix.EINVAL); err != EINVAL {
		t.Errorf("ErrorFromUnix(EINVAL) = %v, want %v", err, EINVAL)
	}
	err := ErrorFromUnix(unix.EPERM)
	if err == nil {
		t.Fatalf("ErrorFromUnix(EPERM) = nil")
	}
	if !goerrors.Is(err, unix.EPERM) {
		t.Errorf("errors.Is(%v, EPERM) = false, want true", err)
	}
}

func TestEquals(t *testing.T) {
	for _, tc := range []struct {
		name string
		e    *errors.Error
		err  error
		want bool
	}{
		{"same", EINVAL, EINVAL, true},
		{"unix", EINVAL, unix.EINVAL, true},
		{"different", EINVAL, unix.EFAULT, false},
		{"nil", noError, nil, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := Equals(tc.e, tc.err); got != tc.want {
				t.Errorf("Equals(%v, %v) = %t, want %t", tc.e, tc.err, got, tc.want)
			}
		})
	}
}
