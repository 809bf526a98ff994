// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/venued/configuration"
)

const sampleConfiguration = `
local M = {}

M.data_directory = "."

M.database = {
    name = "custody.leveldb",
}

M.logging = {
    size = 2048,
    count = 5,
    levels = {
        DEFAULT = "info",
    },
}

return M
`

func writeConfigurationFile(t *testing.T, content string) string {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "venued.conf")
	err := os.WriteFile(fileName, []byte(content), 0600)
	if nil != err {
		t.Fatalf("write configuration error: %s", err)
	}
	return fileName
}

func TestGetConfiguration(t *testing.T) {
	fileName := writeConfigurationFile(t, sampleConfiguration)
	dir := filepath.Dir(fileName)

	options, err := configuration.GetConfiguration(fileName)
	assert.Nil(t, err, "configuration error")

	// relative items are resolved against the data directory
	assert.Equal(t, filepath.Join(dir, "venued.pid"), options.PidFile, "wrong pid file")
	assert.Equal(t, filepath.Join(dir, "data"), options.Database.Directory, "wrong database directory")
	assert.Equal(t, filepath.Join(dir, "data", "custody.leveldb"), options.Database.Name, "wrong database name")

	// overridden logging values with untouched defaults
	assert.Equal(t, 2048, options.Logging.Size, "wrong log size")
	assert.Equal(t, 5, options.Logging.Count, "wrong log count")
	assert.Equal(t, "info", options.Logging.Levels["DEFAULT"], "wrong log level")

	// directories are created
	info, err := os.Stat(options.Database.Directory)
	assert.Nil(t, err, "database directory missing")
	assert.True(t, info.IsDir(), "database directory is not a directory")
}

func TestGetConfigurationMissingFile(t *testing.T) {
	_, err := configuration.GetConfiguration("/nonexistent/venued.conf")
	assert.NotNil(t, err, "expected an error for a missing file")
}

func TestGetConfigurationRejectsPathAsDatabaseName(t *testing.T) {
	fileName := writeConfigurationFile(t, `
local M = {}
M.data_directory = "."
M.database = {
    name = "sub/dir/custody.leveldb",
}
return M
`)

	_, err := configuration.GetConfiguration(fileName)
	assert.NotNil(t, err, "expected an error for a path database name")
}

func TestParseConfigurationFileArgTable(t *testing.T) {
	// the Lua environment exposes the configuration file name as arg[0]
	fileName := writeConfigurationFile(t, `
local M = {}
M.data_directory = arg[0]
return M
`)

	type plain struct {
		DataDirectory string `gluamapper:"data_directory"`
	}
	var p plain
	err := configuration.ParseConfigurationFile(fileName, &p)
	assert.Nil(t, err, "parse error")
	assert.Equal(t, fileName, p.DataDirectory, "arg[0] not set")
}
