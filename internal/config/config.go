/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package config holds globally available configuration variables which are
// either set by defaults, read from a config file or set by command line
// options.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/corvidchess/core/internal/util"
)

// globally available config values.
var (
	// ConfFile holds the path to the used config file (relative to the
	// working directory).
	ConfFile = "./config.toml"

	// LogLevel defines the general log level - can be overwritten by cmd
	// line options or the config file.
	LogLevel = 5

	// EngineLogLevel defines the engine-facade log level.
	EngineLogLevel = 5

	// Settings is the global configuration read in from file.
	Settings conf

	initialized = false
)

type conf struct {
	Log    logConfiguration
	Engine engineConfiguration
}

type logConfiguration struct {
	LogLevel       int
	EngineLogLevel int
}

// engineConfiguration holds the tunables for internal/engine.Engine: the
// transposition table size, in megabytes, the engine is built with.
type engineConfiguration struct {
	TTSizeMB int
}

var defaultEngineConfig = engineConfiguration{
	TTSizeMB: 64,
}

// Setup reads the configuration file and applies its settings, falling back
// to defaults for anything missing or when the file cannot be found.
func Setup() {
	if initialized {
		return
	}

	Settings.Engine = defaultEngineConfig

	path, _ := util.ResolveFile(ConfFile)
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("Config file not found. Using defaults. (", err, ")")
	}

	setupLogLvl()
	initialized = true
}

func setupLogLvl() {
	if Settings.Log.LogLevel != 0 {
		LogLevel = Settings.Log.LogLevel
	}
	if Settings.Log.EngineLogLevel != 0 {
		EngineLogLevel = Settings.Log.EngineLogLevel
	}
}

// String prints out the current configuration settings and values, using
// reflection to read the Engine section's fields.
func (settings *conf) String() string {
	var c strings.Builder
	c.WriteString("Engine Config:\n")
	s := reflect.ValueOf(&settings.Engine).Elem()
	typeOfT := s.Type()
	for i := 0; i < s.NumField(); i++ {
		f := s.Field(i)
		c.WriteString(fmt.Sprintf("%-2d: %-22s %-6s = %v\n", i, typeOfT.Field(i).Name, f.Type(), f.Interface()))
	}
	return c.String()
}
