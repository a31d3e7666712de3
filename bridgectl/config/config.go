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

// Package config provides basic infrastructure to set configuration settings
// for bridgectl. Each setting that can be changed from the command line must
// be registered in RegisterFlags and tagged with the flag name in Config.
// Settings may also be loaded from a TOML file named by -config; flags given
// explicitly on the command line take precedence over the file.
package config

import (
	"flag"
	"fmt"
	"reflect"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/hostbridge/hostbridge/pkg/log"
)

// Config holds configuration that is shared by every bridgectl command.
type Config struct {
	// Debug indicates that debug logging should be enabled.
	Debug bool `flag:"debug" toml:"debug"`

	// LogFilename is the filename to log to, if not empty. The variables
	// %COMMAND%, %TIMESTAMP% and %PID% are expanded.
	LogFilename string `flag:"log" toml:"log"`

	// LogFormat is the log format: text, json or json-k8s.
	LogFormat string `flag:"log-format" toml:"log_format"`

	// Output is the format commands print their results in: text, json or
	// yaml.
	Output string `flag:"output" toml:"output"`

	// CheckWorkers bounds the number of concepts checked in parallel.
	CheckWorkers int `flag:"check-workers" toml:"check_workers"`

	// File is the TOML file the configuration was read from, if any.
	File string `flag:"config" toml:"-"`
}

// RegisterFlags registers flags used to populate Config.
func RegisterFlags(flagSet *flag.FlagSet) {
	flagSet.Bool("debug", false, "enable debug logging.")
	flagSet.String("log", "", "file path where internal debug information is written, default is stderr. The following variables are available: %TIMESTAMP%, %COMMAND%, %PID%.")
	flagSet.String("log-format", "text", "log format: text (default), json, or json-k8s.")
	flagSet.String("output", "text", "output format: text (default), json, or yaml.")
	flagSet.Int("check-workers", 4, "number of concepts verified concurrently by the check command.")
	flagSet.String("config", "", "path to a TOML file with settings. Flags given on the command line override it.")
}

// NewFromFlags creates a new Config with values coming from command line
// flags, overlaid by the configuration file if one is named.
func NewFromFlags(flagSet *flag.FlagSet) (*Config, error) {
	conf := &Config{}

	obj := reflect.ValueOf(conf).Elem()
	st := obj.Type()
	for i := 0; i < st.NumField(); i++ {
		f := st.Field(i)
		name, ok := f.Tag.Lookup("flag")
		if !ok {
			// No flag set for this field.
			continue
		}
		fl := flagSet.Lookup(name)
		if fl == nil {
			panic(fmt.Sprintf("Flag %q not found", name))
		}
		x := reflect.ValueOf(fl.Value.(flag.Getter).Get())
		obj.Field(i).Set(x)
	}

	if conf.File != "" {
		explicit := make(map[string]bool)
		flagSet.Visit(func(fl *flag.Flag) { explicit[fl.Name] = true })
		if err := conf.loadFile(conf.File, explicit); err != nil {
			return nil, err
		}
	}

	if err := conf.validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// loadFile overlays the settings defined in the TOML file at path, except for
// those whose flag is in skip.
func (c *Config) loadFile(path string, skip map[string]bool) error {
	var fromFile Config
	md, err := toml.DecodeFile(path, &fromFile)
	if err != nil {
		return fmt.Errorf("error loading config file %q: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("config file %q: unknown keys %v", path, undecoded)
	}

	dst := reflect.ValueOf(c).Elem()
	src := reflect.ValueOf(&fromFile).Elem()
	st := dst.Type()
	for i := 0; i < st.NumField(); i++ {
		f := st.Field(i)
		key, ok := f.Tag.Lookup("toml")
		if !ok || !md.IsDefined(key) || skip[f.Tag.Get("flag")] {
			continue
		}
		dst.Field(i).Set(src.Field(i))
	}
	return nil
}

func (c *Config) validate() error {
	switch c.LogFormat {
	case "text", "json", "json-k8s":
	default:
		return fmt.Errorf("invalid log format %q, must be 'text', 'json', or 'json-k8s'", c.LogFormat)
	}
	switch c.Output {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("invalid output format %q, must be 'text', 'json', or 'yaml'", c.Output)
	}
	if c.CheckWorkers < 1 {
		return fmt.Errorf("check-workers must be at least 1, got %d", c.CheckWorkers)
	}
	return nil
}

// ToFlags returns a slice of flags that correspond to the given Config.
// Flags equal to their default value are omitted.
func (c *Config) ToFlags() []string {
	var rv []string

	// Construct a temporary set for default plumbing.
	flagSet := flag.NewFlagSet("tmp", flag.ContinueOnError)
	RegisterFlags(flagSet)

	obj := reflect.ValueOf(c).Elem()
	st := obj.Type()
	for i := 0; i < st.NumField(); i++ {
		name, ok := st.Field(i).Tag.Lookup("flag")
		if !ok {
			continue
		}
		val := getVal(obj.Field(i))

		fl := flagSet.Lookup(name)
		if fl == nil {
			panic(fmt.Sprintf("Flag %q not found", name))
		}
		if val == fl.DefValue {
			continue
		}
		rv = append(rv, fmt.Sprintf("--%s=%s", fl.Name, val))
	}
	return rv
}

// Log logs important aspects of the configuration to the given log function.
func (c *Config) Log() {
	log.Infof("Config:")
	for _, f := range c.ToFlags() {
		log.Infof("\t%s", f)
	}
}

func getVal(field reflect.Value) string {
	switch field.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(field.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(field.Int(), 10)
	case reflect.String:
		return field.String()
	default:
		panic("unknown type " + field.Kind().String())
	}
}
