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

//go:build linux && (amd64 || arm64)
// +build linux
// +build amd64 arm64

package bridge

import (
	"github.com/hostbridge/hostbridge/pkg/abi/bridge"
	"github.com/hostbridge/hostbridge/pkg/abi/linux"
)

// UnknownSysLogPriority is returned by the priority converters for a
// priority whose facility is not recognized. It shares its value with
// LOG_EMERG given without a facility.
const UnknownSysLogPriority = 0

var sysLogOptions = flagTable{
	{bridge.LOG_PID, linux.LOG_PID},
	{bridge.LOG_CONS, linux.LOG_CONS},
	{bridge.LOG_ODELAY, linux.LOG_ODELAY},
	{bridge.LOG_NDELAY, linux.LOG_NDELAY},
	{bridge.LOG_NOWAIT, linux.LOG_NOWAIT},
	{bridge.LOG_PERROR, linux.LOG_PERROR},
}

// FromBridgeSysLogOption converts bridge openlog options.
func FromBridgeSysLogOption(opts int) int {
	return sysLogOptions.fromBridge(opts)
}

// ToBridgeSysLogOption converts host openlog options.
func ToBridgeSysLogOption(opts int) int {
	return sysLogOptions.toBridgeValue(opts)
}

// LOG_KERN is not in the table: on both sides zero means no facility.
var sysLogFacilities = newEnumTable(
	[2]int{bridge.LOG_USER, linux.LOG_USER},
	[2]int{bridge.LOG_MAIL, linux.LOG_MAIL},
	[2]int{bridge.LOG_DAEMON, linux.LOG_DAEMON},
	[2]int{bridge.LOG_AUTH, linux.LOG_AUTH},
	[2]int{bridge.LOG_SYSLOG, linux.LOG_SYSLOG},
	[2]int{bridge.LOG_LPR, linux.LOG_LPR},
	[2]int{bridge.LOG_NEWS, linux.LOG_NEWS},
	[2]int{bridge.LOG_UUCP, linux.LOG_UUCP},
	[2]int{bridge.LOG_CRON, linux.LOG_CRON},
	[2]int{bridge.LOG_AUTHPRIV, linux.LOG_AUTHPRIV},
	[2]int{bridge.LOG_FTP, linux.LOG_FTP},
	[2]int{bridge.LOG_LOCAL0, linux.LOG_LOCAL0},
	[2]int{bridge.LOG_LOCAL1, linux.LOG_LOCAL1},
	[2]int{bridge.LOG_LOCAL2, linux.LOG_LOCAL2},
	[2]int{bridge.LOG_LOCAL3, linux.LOG_LOCAL3},
	[2]int{bridge.LOG_LOCAL4, linux.LOG_LOCAL4},
	[2]int{bridge.LOG_LOCAL5, linux.LOG_LOCAL5},
	[2]int{bridge.LOG_LOCAL6, linux.LOG_LOCAL6},
	[2]int{bridge.LOG_LOCAL7, linux.LOG_LOCAL7},
)

var sysLogLevels = newEnumTable(
	[2]int{bridge.LOG_EMERG, linux.LOG_EMERG},
	[2]int{bridge.LOG_ALERT, linux.LOG_ALERT},
	[2]int{bridge.LOG_CRIT, linux.LOG_CRIT},
	[2]int{bridge.LOG_ERR, linux.LOG_ERR},
	[2]int{bridge.LOG_WARNING, linux.LOG_WARNING},
	[2]int{bridge.LOG_NOTICE, linux.LOG_NOTICE},
	[2]int{bridge.LOG_INFO, linux.LOG_INFO},
	[2]int{bridge.LOG_DEBUG, linux.LOG_DEBUG},
)

// FromBridgeSysLogFacility converts a bridge facility. It returns 0 for an
// unrecognized facility.
func FromBridgeSysLogFacility(facility int) int {
	return sysLogFacilities.fromBridge(facility, 0)
}

// ToBridgeSysLogFacility converts a host facility. It returns 0 for an
// unrecognized facility, including LOG_KERN.
func ToBridgeSysLogFacility(facility int) int {
	return sysLogFacilities.toBridgeValue(facility, 0)
}

// FromBridgeSysLogPriority converts a bridge priority, the or of a level and
// an optional facility. It returns UnknownSysLogPriority if the priority
// holds a facility that is not recognized or bits outside both fields.
func FromBridgeSysLogPriority(priority int) int {
	if priority&^(bridge.LOG_PRIMASK|bridge.LOG_FACMASK) != 0 {
		return UnknownSysLogPriority
	}
	level := sysLogLevels.fromBridge(priority&bridge.LOG_PRIMASK, 0)
	facility := priority & bridge.LOG_FACMASK
	if facility == 0 {
		return level
	}
	hostFacility := FromBridgeSysLogFacility(facility)
	if hostFacility == 0 {
		return UnknownSysLogPriority
	}
	return hostFacility | level
}

// ToBridgeSysLogPriority converts a host priority. It returns
// UnknownSysLogPriority if the priority holds a facility that is not
// recognized or bits outside both fields.
func ToBridgeSysLogPriority(priority int) int {
	if priority&^(linux.LOG_PRIMASK|linux.LOG_FACMASK) != 0 {
		return UnknownSysLogPriority
	}
	level := sysLogLevels.toBridgeValue(priority&linux.LOG_PRIMASK, 0)
	facility := priority & linux.LOG_FACMASK
	if facility == 0 {
		return level
	}
	bridgeFacility := ToBridgeSysLogFacility(facility)
	if bridgeFacility == 0 {
		return UnknownSysLogPriority
	}
	return bridgeFacility | level
}
