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

// Package cmd holds implementations of the bridgectl commands.
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/hostbridge/hostbridge/bridgectl/config"
	"github.com/hostbridge/hostbridge/pkg/log"
)

// ErrorLogger is where error messages should be written to. These messages
// are consumed by the caller that invoked bridgectl, in addition to stderr.
var ErrorLogger io.Writer

// Fatalf logs to stderr and ErrorLogger, then exits with status 128.
func Fatalf(format string, args ...any) {
	log.Log().WarningfAtDepth(1, format, args...)
	msg := fmt.Sprintf(format, args...)
	if ErrorLogger != nil {
		fmt.Fprintf(ErrorLogger, "bridgectl: %s\n", msg)
	}
	fmt.Fprintf(os.Stderr, "bridgectl: %s\n", msg)
	// Return an error that is unlikely to be used by the application.
	os.Exit(128)
}

// configFrom extracts the configuration passed by the command dispatcher.
func configFrom(args []any) *config.Config {
	if len(args) == 0 {
		Fatalf("internal error: missing configuration")
	}
	conf, ok := args[0].(*config.Config)
	if !ok {
		Fatalf("internal error: unexpected argument %T", args[0])
	}
	return conf
}

// writeOutput prints v in the requested format. Text output is produced by
// text, which writes to a tabwriter that is flushed afterwards.
func writeOutput(w io.Writer, format string, v any, text func(w io.Writer) error) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
		if err := text(tw); err != nil {
			return err
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
