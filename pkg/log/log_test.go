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

package log

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

type testWriter struct {
	lines []string
	fail  bool
}

func (w *testWriter) Write(bytes []byte) (int, error) {
	if w.fail {
		return 0, fmt.Errorf("simulated failure")
	}
	w.lines = append(w.lines, string(bytes))
	return len(bytes), nil
}

func TestDropMessages(t *testing.T) {
	tw := &testWriter{}
	w := Writer{Next: tw}
	if _, err := w.Write([]byte("line 1\n")); err != nil {
		t.Fatalf("Write failed, err: %v", err)
	}

	tw.fail = true
	if _, err := w.Write([]byte("error\n")); err == nil {
		t.Fatalf("Write should have failed")
	}
	if _, err := w.Write([]byte("error\n")); err == nil {
		t.Fatalf("Write should have failed")
	}

	tw.fail = false
	if _, err := w.Write([]byte("line 2\n")); err != nil {
		t.Fatalf("Write failed, err: %v", err)
	}

	expected := []string{
		"line 1\n",
		"line 2\n",
		"\n*** Dropped 2 log messages ***\n",
	}
	if diff := cmp.Diff(expected, tw.lines); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestWriterAppendsNewline(t *testing.T) {
	tw := &testWriter{}
	w := Writer{Next: tw}
	if _, err := w.Write([]byte("no newline")); err != nil {
		t.Fatalf("Write failed, err: %v", err)
	}
	if diff := cmp.Diff([]string{"no newline", "\n"}, tw.lines); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestBasicLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := &BasicLogger{Level: Info, Emitter: &Writer{Next: &buf}}

	l.Debugf("debug %d", 1)
	l.Infof("info %d", 2)
	l.Warningf("warning %d", 3)
	if got, want := buf.String(), "info 2\nwarning 3\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	l.SetLevel(Debug)
	if !l.IsLogging(Debug) {
		t.Errorf("IsLogging(Debug) = false after SetLevel(Debug)")
	}
}

func TestMultiEmitter(t *testing.T) {
	var a, b bytes.Buffer
	m := &MultiEmitter{&Writer{Next: &a}, &Writer{Next: &b}}
	m.Emit(0, Info, time.Now(), "hello %s", "world")
	if a.String() != "hello world\n" || b.String() != "hello world\n" {
		t.Errorf("got %q and %q, want both %q", a.String(), b.String(), "hello world\n")
	}
}

func TestGoogleEmitter(t *testing.T) {
	var buf bytes.Buffer
	ts := time.Date(2026, time.May, 3, 4, 5, 6, 7000, time.UTC)
	GoogleEmitter{&Writer{Next: &buf}}.Emit(0, Warning, ts, "x=%d", 7)
	got := buf.String()
	if !strings.HasPrefix(got, "W0503 04:05:06.000007 ") {
		t.Errorf("bad header in %q", got)
	}
	if !strings.Contains(got, "log_test.go:") || !strings.HasSuffix(got, "] x=7\n") {
		t.Errorf("bad caller or message in %q", got)
	}
}

func TestEmitterForFormat(t *testing.T) {
	w := &Writer{Next: &bytes.Buffer{}}
	for _, format := range []string{"text", "json", "json-k8s"} {
		if _, err := EmitterForFormat(format, w); err != nil {
			t.Errorf("EmitterForFormat(%q) failed: %v", format, err)
		}
	}
	if _, err := EmitterForFormat("xml", w); err == nil {
		t.Errorf("EmitterForFormat(xml) succeeded")
	}
}

func TestRateLimitedLogger(t *testing.T) {
	var buf bytes.Buffer
	l := &BasicLogger{Level: Debug, Emitter: &Writer{Next: &buf}}
	rl := RateLimitedLogger(l, time.Hour)
	rl.Infof("first")
	rl.Infof("second")
	rl.Infof("third")
	if got, want := buf.String(), "first\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if n, ok := rl.(*rateLimitedLogger).allow(); ok || n != 0 {
		t.Errorf("allow() = %d, %t, want 0, false", n, ok)
	}
	if got, want := suffix(3), " (3 similar messages suppressed)"; got != want {
		t.Errorf("suffix(3) = %q, want %q", got, want)
	}
}

func TestOpenFile(t *testing.T) {
	dir := t.TempDir()
	opts := PatternOpts{Command: "stat", Start: time.Date(2026, time.January, 2, 3, 4, 5, 0, time.UTC)}
	f, err := OpenFile(filepath.Join(dir, "sub", "bridgectl.%COMMAND%.%TIMESTAMP%.log"), os.O_CREATE|os.O_WRONLY, opts)
	if err != nil {
		t.Fatalf("OpenFile failed: %v", err)
	}
	defer f.Close()
	if got, want := filepath.Base(f.Name()), "bridgectl.stat.20260102-030405.000000.log"; got != want {
		t.Errorf("file name = %q, want %q", got, want)
	}

	if f, err := OpenFile("", os.O_RDONLY, opts); f != nil || err != nil {
		t.Errorf("OpenFile(\"\") = %v, %v, want nil, nil", f, err)
	}
}
