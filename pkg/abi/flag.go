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

// Package abi describes the naming of ABI values shared by the bridge and
// host packages.
package abi

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// A Flag is a mapping from a single bit to a name.
type Flag struct {
	Flag uint64
	Name string
}

// FlagSet is a slice of bit-flags and their name.
//
// The order of a FlagSet is significant: it is the canonical order in which
// bits are visited.
type FlagSet []Flag

// Parse returns a pretty version of val, using the flag names for known flags.
// Unknown flags remain numeric.
func (s FlagSet) Parse(val uint64) string {
	var flags []string

	for _, f := range s {
		if val&f.Flag == f.Flag {
			flags = append(flags, f.Name)
			val &^= f.Flag
		}
	}

	if val != 0 {
		flags = append(flags, "0x"+strings.ToLower(fmt.Sprintf("%x", val)))
	}

	if len(flags) == 0 {
		// Prefer 0 to an empty string.
		return "0x0"
	}

	return strings.Join(flags, "|")
}

// Mask returns the union of every flag in s.
func (s FlagSet) Mask() uint64 {
	var m uint64
	for _, f := range s {
		m |= f.Flag
	}
	return m
}

// ValueSet is a map of syscall values to their name. Parse will use the name
// or the value if unknown.
//
// Negative values are stored as their two's complement, i.e. uint64(int64(v)).
type ValueSet map[uint64]string

// Parse returns the name of the value associated with `val`. Unknown values
// are converted to hex.
func (s ValueSet) Parse(val uint64) string {
	if v, ok := s[val]; ok {
		return v
	}
	return fmt.Sprintf("%#x", val)
}

// ParseName returns the flag value associated with 'name'. Returns false
// if no value is found.
func (s ValueSet) ParseName(name string) (uint64, bool) {
	for k, v := range s {
		if v == name {
			return k, true
		}
	}
	return math.MaxUint64, false
}

// Values returns the values of s as signed integers in ascending order.
func (s ValueSet) Values() []int64 {
	vals := make([]int64, 0, len(s))
	for k := range s {
		vals = append(vals, int64(k))
	}
	sort.Slice(vals, func(i, j int) bool { return vals[i] < vals[j] })
	return vals
}

// SignedValueSet builds a ValueSet from a map keyed by signed values, for
// value spaces that include negative numbers.
func SignedValueSet(m map[int64]string) ValueSet {
	s := make(ValueSet, len(m))
	for k, v := range m {
		s[uint64(k)] = v
	}
	return s
}

// Without returns a copy of s that does not contain v.
func (s ValueSet) Without(v int64) ValueSet {
	out := make(ValueSet, len(s))
	for k, name := range s {
		if k != uint64(v) {
			out[k] = name
		}
	}
	return out
}
