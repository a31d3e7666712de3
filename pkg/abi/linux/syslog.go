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

package linux

// Options for openlog(3).
const (
	LOG_PID    = 0x01
	LOG_CONS   = 0x02
	LOG_ODELAY = 0x04
	LOG_NDELAY = 0x08
	LOG_NOWAIT = 0x10
	LOG_PERROR = 0x20
)

// Facilities for openlog(3) and syslog(3). Facilities occupy the bits above
// LOG_PRIMASK.
const (
	LOG_KERN     = 0 << 3
	LOG_USER     = 1 << 3
	LOG_MAIL     = 2 << 3
	LOG_DAEMON   = 3 << 3
	LOG_AUTH     = 4 << 3
	LOG_SYSLOG   = 5 << 3
	LOG_LPR      = 6 << 3
	LOG_NEWS     = 7 << 3
	LOG_UUCP     = 8 << 3
	LOG_CRON     = 9 << 3
	LOG_AUTHPRIV = 10 << 3
	LOG_FTP      = 11 << 3
	LOG_LOCAL0   = 16 << 3
	LOG_LOCAL1   = 17 << 3
	LOG_LOCAL2   = 18 << 3
	LOG_LOCAL3   = 19 << 3
	LOG_LOCAL4   = 20 << 3
	LOG_LOCAL5   = 21 << 3
	LOG_LOCAL6   = 22 << 3
	LOG_LOCAL7   = 23 << 3

	LOG_FACMASK = 0x03f8
)

// Levels for syslog(3).
const (
	LOG_EMERG   = 0
	LOG_ALERT   = 1
	LOG_CRIT    = 2
	LOG_ERR     = 3
	LOG_WARNING = 4
	LOG_NOTICE  = 5
	LOG_INFO    = 6
	LOG_DEBUG   = 7

	LOG_PRIMASK = 0x07
)
