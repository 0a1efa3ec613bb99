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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupFallsBackToDefaultsWhenFileMissing(t *testing.T) {
	initialized = false
	Settings = conf{}
	ConfFile = "./does-not-exist.toml"

	Setup()

	assert.Equal(t, 64, Settings.Engine.TTSizeMB)
}

func TestSetupReadsTomlFile(t *testing.T) {
	initialized = false
	Settings = conf{}

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	contents := "[Engine]\nTTSizeMB = 128\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	ConfFile = path

	Setup()

	assert.Equal(t, 128, Settings.Engine.TTSizeMB)
}

func TestConfString(t *testing.T) {
	Settings.Engine.TTSizeMB = 32
	s := Settings.String()
	assert.Contains(t, s, "TTSizeMB")
}
