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

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/sys/unix"
	"gopkg.in/yaml.v3"

	"github.com/hostbridge/hostbridge/pkg/abi/bridge"
	"github.com/hostbridge/hostbridge/pkg/abi/linux"
	hostbridge "github.com/hostbridge/hostbridge/pkg/bridge"
)

func mustConcept(t *testing.T, name string) hostbridge.Concept {
	t.Helper()
	c, ok := hostbridge.LookupConcept(name)
	if !ok {
		t.Fatalf("concept %q not registered", name)
	}
	return c
}

func TestWriteOutput(t *testing.T) {
	rows := []TableRow{{Name: "A", Bridge: 1, Host: 2}}
	text := func(w io.Writer) error {
		_, err := fmt.Fprintln(w, "NAME\tVALUE")
		return err
	}

	var buf bytes.Buffer
	if err := writeOutput(&buf, "json", rows, text); err != nil {
		t.Fatalf("json: %v", err)
	}
	var fromJSON []TableRow
	if err := json.Unmarshal(buf.Bytes(), &fromJSON); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if diff := cmp.Diff(rows, fromJSON); diff != "" {
		t.Errorf("json mismatch (-want +got):\n%s", diff)
	}

	buf.Reset()
	if err := writeOutput(&buf, "yaml", rows, text); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	var fromYAML []TableRow
	if err := yaml.Unmarshal(buf.Bytes(), &fromYAML); err != nil {
		t.Fatalf("yaml.Unmarshal: %v", err)
	}
	if diff := cmp.Diff(rows, fromYAML); diff != "" {
		t.Errorf("yaml mismatch (-want +got):\n%s", diff)
	}

	buf.Reset()
	if err := writeOutput(&buf, "text", rows, text); err != nil {
		t.Fatalf("text: %v", err)
	}
	if got, want := buf.String(), "NAME  VALUE\n"; got != want {
		t.Errorf("text = %q, want %q", got, want)
	}

	if err := writeOutput(&buf, "xml", rows, text); err == nil {
		t.Errorf("xml output succeeded")
	}
}

func TestConceptInfos(t *testing.T) {
	infos := conceptInfos()
	if len(infos) != len(hostbridge.Concepts()) {
		t.Fatalf("got %d infos, want %d", len(infos), len(hostbridge.Concepts()))
	}
	for _, i := range infos {
		if i.Name != "rusage/target" {
			continue
		}
		want := ConceptInfo{
			Name:              "rusage/target",
			Kind:              "enum",
			Values:            len(bridge.RUsageTargets),
			FromBridgeUnknown: hostbridge.UnknownHostRUsageTarget,
			ToBridgeUnknown:   bridge.RUSAGE_UNKNOWN,
		}
		if diff := cmp.Diff(want, i); diff != "" {
			t.Errorf("rusage/target mismatch (-want +got):\n%s", diff)
		}
		return
	}
	t.Errorf("rusage/target missing from %v", infos)
}

func TestTableRows(t *testing.T) {
	rows := tableRows(mustConcept(t, "signal/mask-action"))
	want := []TableRow{
		{Name: "SIG_SETMASK", Bridge: bridge.SIG_SETMASK, Host: linux.SIG_SETMASK},
		{Name: "SIG_BLOCK", Bridge: bridge.SIG_BLOCK, Host: linux.SIG_BLOCK},
		{Name: "SIG_UNBLOCK", Bridge: bridge.SIG_UNBLOCK, Host: linux.SIG_UNBLOCK},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}

	var buf bytes.Buffer
	if err := printTable(&buf, "text", mustConcept(t, "signal/mask-action"), rows); err != nil {
		t.Fatalf("printTable: %v", err)
	}
	if !strings.Contains(buf.String(), "SIG_UNBLOCK") {
		t.Errorf("text table %q lacks SIG_UNBLOCK", buf.String())
	}
}

func TestTranslate(t *testing.T) {
	for _, tc := range []struct {
		concept string
		to      string
		arg     string
		want    Translation
	}{
		{
			concept: "signal",
			to:      "host",
			arg:     "SIGUSR1",
			want:    Translation{Input: bridge.SIGUSR1, Output: int(unix.SIGUSR1), Name: "SIGUSR1"},
		},
		{
			concept: "signal",
			to:      "bridge",
			arg:     "10",
			want:    Translation{Input: 10, Output: bridge.SIGUSR1, Name: "SIGUSR1"},
		},
		{
			concept: "signal",
			to:      "host",
			arg:     "0x7fff",
			want:    Translation{Input: 0x7fff, Output: -1, Name: "0x7fff", Unknown: true},
		},
		{
			concept: "rusage/target",
			to:      "host",
			arg:     "RUSAGE_CHILDREN",
			want:    Translation{Input: bridge.RUSAGE_CHILDREN, Output: unix.RUSAGE_CHILDREN, Name: "RUSAGE_CHILDREN"},
		},
		{
			concept: "rusage/target",
			to:      "host",
			arg:     "99",
			want:    Translation{Input: 99, Output: -1, Name: "0x63", Unknown: true},
		},
		{
			concept: "netdb/ai-errors",
			to:      "bridge",
			arg:     "-1000",
			want:    Translation{Input: -1000, Output: bridge.EAI_UNKNOWN, Name: bridge.AddressInfoErrors.Parse(bridge.EAI_UNKNOWN), Unknown: true},
		},
		{
			concept: "poll/events",
			to:      "host",
			arg:     "POLLIN|POLLOUT",
			want:    Translation{Input: bridge.POLLIN | bridge.POLLOUT, Output: unix.POLLIN | unix.POLLOUT, Name: "POLLIN|POLLOUT"},
		},
		{
			concept: "poll/events",
			to:      "host",
			arg:     "0x10000001",
			want:    Translation{Input: 0x10000001, Output: unix.POLLIN, Name: "POLLIN|0x10000000", Dropped: 0x10000000},
		},
	} {
		t.Run(tc.concept+"/"+tc.arg, func(t *testing.T) {
			got, err := translate(mustConcept(t, tc.concept), tc.to, tc.arg)
			if err != nil {
				t.Fatalf("translate failed: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("translation mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTranslateErrors(t *testing.T) {
	c := mustConcept(t, "signal")
	for _, tc := range []struct {
		to  string
		arg string
	}{
		{"host", "SIGNOPE"},
		{"bridge", "SIGUSR1"},
		{"sideways", "1"},
	} {
		if _, err := translate(c, tc.to, tc.arg); err == nil {
			t.Errorf("translate(%q, %q) succeeded", tc.to, tc.arg)
		}
	}
	if _, err := translate(mustConcept(t, "poll/events"), "host", "POLLIN|POLLNOPE"); err == nil {
		t.Errorf("translate with an unknown flag name succeeded")
	}
}

func TestRunChecks(t *testing.T) {
	for _, workers := range []int{1, 8} {
		results, err := runChecks(context.Background(), workers)
		if err != nil {
			t.Fatalf("runChecks(%d) failed: %v", workers, err)
		}
		if got, want := len(results), len(hostbridge.Concepts())+len(structChecks); got != want {
			t.Errorf("runChecks(%d) returned %d results, want %d", workers, got, want)
		}
		for _, r := range results {
			if r.Error != "" {
				t.Errorf("check %s failed: %s", r.Name, r.Error)
			}
		}
	}
}

func TestRunChecksCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := runChecks(ctx, 1); err == nil {
		t.Errorf("runChecks with a cancelled context succeeded")
	}
}

func TestStructCheckDetectsFailures(t *testing.T) {
	mutating := structCheck{
		name:   "mutating",
		sample: &bridge.Timespec{Sec: 1},
		roundTrip: func(v any) any {
			ts := v.(*bridge.Timespec)
			ts.Sec++
			return ts
		},
	}
	if err := mutating.run(); err == nil || !strings.Contains(err.Error(), "modified its source") {
		t.Errorf("mutating check: got %v, want source modification error", err)
	}

	lossy := structCheck{
		name:      "lossy",
		sample:    &bridge.Timespec{Sec: 1, Nsec: 2},
		roundTrip: func(any) any { return &bridge.Timespec{Sec: 1} },
	}
	if err := lossy.run(); err == nil || !strings.Contains(err.Error(), "round trip") {
		t.Errorf("lossy check: got %v, want round trip error", err)
	}
}

func TestManifest(t *testing.T) {
	m := buildManifest()
	if m.Version != bridge.ABIVersion {
		t.Errorf("Version = %d, want %d", m.Version, bridge.ABIVersion)
	}
	if len(m.Types) != len(bridge.Types()) {
		t.Errorf("got %d types, want %d", len(m.Types), len(bridge.Types()))
	}
	for _, tl := range m.Types {
		if tl.Name == "Stat" && tl.Size != bridge.SizeOfStat {
			t.Errorf("Stat size = %d, want %d", tl.Size, bridge.SizeOfStat)
		}
	}
	for _, c := range m.Concepts {
		if c.Name == "signal" && c.Values["SIGKILL"] != bridge.SIGKILL {
			t.Errorf("signal SIGKILL = %d, want %d", c.Values["SIGKILL"], bridge.SIGKILL)
		}
	}

	var first, second bytes.Buffer
	if err := writeManifest(&first, "cbor", m); err != nil {
		t.Fatalf("cbor: %v", err)
	}
	if err := writeManifest(&second, "cbor", buildManifest()); err != nil {
		t.Fatalf("cbor: %v", err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Errorf("cbor manifest is not deterministic")
	}
	var decoded Manifest
	if err := cbor.Unmarshal(first.Bytes(), &decoded); err != nil {
		t.Fatalf("cbor.Unmarshal: %v", err)
	}
	if diff := cmp.Diff(m, &decoded); diff != "" {
		t.Errorf("cbor round trip mismatch (-want +got):\n%s", diff)
	}

	if err := writeManifest(io.Discard, "toml", m); err == nil {
		t.Errorf("toml manifest succeeded")
	}
}

func TestHostStat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file")
	if err := os.WriteFile(path, []byte("hello"), 0640); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	link := filepath.Join(dir, "link")
	if err := os.Symlink(path, link); err != nil {
		t.Fatalf("Symlink: %v", err)
	}

	res, err := hostStat(link, false /* noFollow */, true /* wire */)
	if err != nil {
		t.Fatalf("hostStat: %v", err)
	}
	if res.Stat.Size != 5 || res.Stat.Mode&unix.S_IFMT != unix.S_IFREG {
		t.Errorf("stat = %+v, want a 5 byte regular file", res.Stat)
	}
	if got, want := len(res.Wire), 2*bridge.SizeOfStat; got != want {
		t.Errorf("wire length = %d, want %d", got, want)
	}

	res, err = hostStat(link, true /* noFollow */, false /* wire */)
	if err != nil {
		t.Fatalf("hostStat: %v", err)
	}
	if res.Stat.Mode&unix.S_IFMT != unix.S_IFLNK {
		t.Errorf("lstat mode = %#o, want a symlink", res.Stat.Mode)
	}
	if res.Wire != "" {
		t.Errorf("wire = %q, want none", res.Wire)
	}

	if _, err := hostStat(filepath.Join(dir, "missing"), false, false); err == nil {
		t.Errorf("hostStat of a missing file succeeded")
	}
}

func TestHostUname(t *testing.T) {
	res, err := hostUname(true /* wire */)
	if err != nil {
		t.Fatalf("hostUname: %v", err)
	}
	if res.Sysname != "Linux" {
		t.Errorf("Sysname = %q, want Linux", res.Sysname)
	}
	if got, want := len(res.Wire), 2*6*bridge.UtsNameLength; got != want {
		t.Errorf("wire length = %d, want %d", got, want)
	}
}
