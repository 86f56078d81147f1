// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"reflect"

	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/avltree/fault"
)

// ParseConfigurationFile - read and execute a Lua file and assign
// the results to a configuration structure
//
// fields already set in config are kept unless the file overrides them
func ParseConfigurationFile(fileName string, config interface{}) error {
	if err := checkStructPointer(config); nil != err {
		return err
	}
	if _, err := os.Stat(fileName); nil != err {
		return fault.ErrNotFoundConfigFile
	}

	L := newState(fileName)
	defer L.Close()

	// execute configuration
	if err := L.DoFile(fileName); nil != err {
		return err
	}
	return mapResult(L, config)
}

// ParseConfigurationString - as ParseConfigurationFile but the Lua
// source is supplied directly
func ParseConfigurationString(source string, config interface{}) error {
	if err := checkStructPointer(config); nil != err {
		return err
	}

	L := newState("")
	defer L.Close()

	if err := L.DoString(source); nil != err {
		return err
	}
	return mapResult(L, config)
}

// state with the standard libraries and the global "arg" table
// arg[0] = config file
func newState(fileName string) *lua.LState {
	L := lua.NewState()
	L.OpenLibs()

	arg := &lua.LTable{}
	arg.Insert(0, lua.LString(fileName))
	L.SetGlobal("arg", arg)
	return L
}

// map the table left on the top of the stack onto config
func mapResult(L *lua.LState, config interface{}) error {
	table, ok := L.Get(L.GetTop()).(*lua.LTable)
	if !ok {
		return fault.ErrInvalidStructPointer
	}

	mapperOption := gluamapper.Option{
		NameFunc: func(s string) string {
			return s
		},
		TagName: "gluamapper",
	}
	mapper := gluamapper.Mapper{Option: mapperOption}
	return mapper.Map(table, config)
}

// since interface{} is untyped, have to verify type compatibility at run-time
func checkStructPointer(config interface{}) error {
	rv := reflect.ValueOf(config)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fault.ErrInvalidStructPointer
	}
	if rv.Elem().Kind() != reflect.Struct {
		return fault.ErrInvalidStructPointer
	}
	return nil
}
