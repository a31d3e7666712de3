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

// Package linuxerr contains the syscall error codes used by the bridge
// layer, exported as error interface pointers. Their Errno method returns a
// value that compares equal to the matching unix.Errno.
package linuxerr

import (
	"golang.org/x/sys/unix"

	"github.com/hostbridge/hostbridge/pkg/errors"
)

var (
	noError *errors.Error = nil

	EFAULT       = errors.New(unix.EFAULT, "bad address")
	EINVAL       = errors.New(unix.EINVAL, "invalid argument")
	ERANGE       = errors.New(unix.ERANGE, "math result not representable")
	ENAMETOOLONG = errors.New(unix.ENAMETOOLONG, "file name too long")
	ENOBUFS      = errors.New(unix.ENOBUFS, "no buffer space available")
	EAFNOSUPPORT = errors.New(unix.EAFNOSUPPORT, "address family not supported by protocol")
	ENOSYS       = errors.New(unix.ENOSYS, "invalid system call number")
)

var errorMap = map[unix.Errno]*errors.Error{
	unix.EFAULT:       EFAULT,
	unix.EINVAL:       EINVAL,
	unix.ERANGE:       ERANGE,
	unix.ENAMETOOLONG: ENAMETOOLONG,
	unix.ENOBUFS:      ENOBUFS,
	unix.EAFNOSUPPORT: EAFNOSUPPORT,
	unix.ENOSYS:       ENOSYS,
}

// ErrorFromUnix returns a linuxerr from a unix.Errno. Errnos this package
// does not name are wrapped in a fresh *errors.Error.
func ErrorFromUnix(err unix.Errno) error {
	if err == unix.Errno(0) {
		return nil
	}
	if e, ok := errorMap[err]; ok {
		return e
	}
	return errors.New(err, err.Error())
}

// ToError converts a linuxerr to an error type.
func ToError(err *errors.Error) error {
	if err == noError {
		return nil
	}
	return err
}

// ToUnix converts a linuxerr to a unix.Errno.
func ToUnix(e *errors.Error) unix.Errno {
	var unixErr unix.Errno
	if e != noError {
		unixErr = e.Errno()
	}
	return unixErr
}

// Equals compares a linuxerr to a given error.
func Equals(e *errors.Error, err error) bool {
	var unixErr unix.Errno
	if e != noError {
		unixErr = e.Errno()
	}
	if err == nil {
		err = noError
	}
	return e == err || unixErr == err
}
