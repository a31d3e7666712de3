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

// Package cli is the main entrypoint for bridgectl.
package cli

import (
	"context"
	"flag"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/google/subcommands"

	"github.com/hostbridge/hostbridge/bridgectl/cmd"
	"github.com/hostbridge/hostbridge/bridgectl/config"
	"github.com/hostbridge/hostbridge/pkg/abi/bridge"
	"github.com/hostbridge/hostbridge/pkg/log"
)

// Main is the main entrypoint.
func Main() {
	// Register all commands.
	forEachCmd(subcommands.Register)

	// Register with the main command line.
	config.RegisterFlags(flag.CommandLine)

	// All subcommands must be registered before flag parsing.
	flag.Parse()

	// Create a new Config from the flags.
	conf, err := config.NewFromFlags(flag.CommandLine)
	if err != nil {
		cmd.Fatalf("%v", err)
	}

	subcommand := flag.CommandLine.Arg(0)

	// Without a log file only warnings reach stderr, so that they do not
	// mix with command output.
	var logOut io.Writer = os.Stderr
	log.SetLevel(log.Warning)
	if conf.LogFilename != "" {
		// O_APPEND so that several invocations can share one file.
		f, err := log.OpenFile(conf.LogFilename, os.O_WRONLY|os.O_CREATE|os.O_APPEND, log.PatternOpts{Command: subcommand, Start: time.Now()})
		if err != nil {
			cmd.Fatalf("%v", err)
		}
		logOut = f
		cmd.ErrorLogger = f
		log.SetLevel(log.Info)
	}
	if conf.Debug {
		log.SetLevel(log.Debug)
	}

	e, err := log.EmitterForFormat(conf.LogFormat, &log.Writer{Next: logOut})
	if err != nil {
		cmd.Fatalf("%v", err)
	}
	log.SetTarget(e)

	const delimString = `**************** bridgectl ****************`
	log.Infof(delimString)
	log.Infof("ABI version %d, %s, %s/%s, PID %d", bridge.ABIVersion, runtime.Version(), runtime.GOOS, runtime.GOARCH, os.Getpid())
	log.Infof("Args: %v", os.Args)
	conf.Log()
	log.Infof(delimString)

	// Call the subcommand and pass in the configuration.
	status := subcommands.Execute(context.Background(), conf)
	if status != subcommands.ExitSuccess {
		log.Warningf("Failure to execute command, err: %v", status)
	}
	os.Exit(int(status))
}

// forEachCmd invokes the passed callback for each command supported by
// bridgectl.
func forEachCmd(cb func(cmd subcommands.Command, group string)) {
	cb(subcommands.HelpCommand(), "")
	cb(subcommands.FlagsCommand(), "")
	cb(subcommands.CommandsCommand(), "")

	// Inspection of the translation tables.
	const tablesGroup = "tables"
	cb(new(cmd.Concepts), tablesGroup)
	cb(new(cmd.Table), tablesGroup)
	cb(new(cmd.Translate), tablesGroup)
	cb(new(cmd.Check), tablesGroup)
	cb(new(cmd.ABI), tablesGroup)

	// Host calls returned through the bridge.
	const hostGroup = "host"
	cb(new(cmd.Uname), hostGroup)
	cb(new(cmd.Stat), hostGroup)
}
