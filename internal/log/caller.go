// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

type callerSettings struct {
	file *bool
	line *bool
	funC *bool
}

func mergeBool(dst **bool, src *bool) {
	if *dst != nil || src == nil {
		return
	}
	value := *src
	*dst = &value
}

// mergeWith sets each unset field from the other settings.
func (c *callerSettings) mergeWith(other callerSettings) {
	mergeBool(&c.file, other.file)
	mergeBool(&c.line, other.line)
	mergeBool(&c.funC, other.funC)
}

func (c *callerSettings) setDefaults() {
	disabled := false
	c.mergeWith(callerSettings{file: &disabled, line: &disabled, funC: &disabled})
}

func (c callerSettings) enabled() bool {
	return *c.file || *c.line || *c.funC
}

// callerDepth skips getCallerString, the log method and its
// formatting helper.
const callerDepth = 3

func getCallerString(settings callerSettings) string {
	if !settings.enabled() {
		return ""
	}

	pc, file, line, ok := runtime.Caller(callerDepth)
	if !ok {
		return "error"
	}

	fields := make([]string, 0, 3)
	if *settings.file {
		fields = append(fields, filepath.Base(file))
	}
	if *settings.line {
		fields = append(fields, "L"+strconv.Itoa(line))
	}
	if *settings.funC {
		if details := runtime.FuncForPC(pc); details != nil {
			fields = append(fields, strings.TrimLeft(filepath.Ext(details.Name()), "."))
		}
	}
	return strings.Join(fields, ":")
}
