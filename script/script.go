// This file is part of Sixtyfive.
//
// Sixtyfive is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Sixtyfive is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Sixtyfive.  If not, see <https://www.gnu.org/licenses/>.

package script

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/sixtyfive/hardware"
	"github.com/jetsetilly/sixtyfive/logger"
	"github.com/jetsetilly/sixtyfive/program"
	lua "github.com/yuin/gopher-lua"
)

// Script is a Lua environment bound to a Machine.
type Script struct {
	m      *hardware.Machine
	output io.Writer
	state  *lua.LState
}

// NewScript is the preferred method of initialisation for the Script type.
// Output from the Lua print() function is written to output. The Close()
// function should be called when the script is no longer required.
func NewScript(m *hardware.Machine, output io.Writer) *Script {
	scr := &Script{
		m:      m,
		output: output,
		state:  lua.NewState(),
	}

	for name, fn := range map[string]lua.LGFunction{
		"load":  scr.load,
		"run":   scr.run,
		"step":  scr.step,
		"reset": scr.reset,
		"reg":   scr.reg,
		"flag":  scr.flag,
		"pc":    scr.pc,
		"peek":  scr.peek,
		"poke":  scr.poke,
		"log":   scr.log,
		"print": scr.print,
	} {
		scr.state.SetGlobal(name, scr.state.NewFunction(fn))
	}

	return scr
}

// Close the Lua environment.
func (scr *Script) Close() {
	scr.state.Close()
}

// RunFile runs the Lua script in the named file.
func (scr *Script) RunFile(filename string) error {
	if err := scr.state.DoFile(filename); err != nil {
		return fmt.Errorf("script: %w", err)
	}
	return nil
}

// RunString runs Lua source code.
func (scr *Script) RunString(source string) error {
	if err := scr.state.DoString(source); err != nil {
		return fmt.Errorf("script: %w", err)
	}
	return nil
}

func (scr *Script) load(L *lua.LState) int {
	p, err := program.ParseHex(L.CheckString(1))
	if err != nil {
		L.RaiseError("%v", err)
		return 0
	}
	scr.m.Load(p)
	return 0
}

func (scr *Script) run(L *lua.LState) int {
	if err := scr.m.Interpreter.Interpret(scr.m.CPU); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) step(L *lua.LState) int {
	r, err := scr.m.Step()
	if err != nil {
		L.RaiseError("%v", err)
		return 0
	}
	L.Push(lua.LString(r.String()))
	L.Push(lua.LBool(r.Halted))
	return 2
}

func (scr *Script) reset(L *lua.LState) int {
	scr.m.Reset()
	return 0
}

func (scr *Script) reg(L *lua.LState) int {
	mc := scr.m.CPU
	switch strings.ToUpper(L.CheckString(1)) {
	case "A":
		L.Push(lua.LNumber(mc.A.Value()))
	case "X":
		L.Push(lua.LNumber(mc.X.Value()))
	case "Y":
		L.Push(lua.LNumber(mc.Y.Value()))
	case "PC":
		L.Push(lua.LNumber(mc.PC.Address()))
	case "SR":
		L.Push(lua.LNumber(mc.Status.Value()))
	default:
		L.ArgError(1, "unknown register")
		return 0
	}
	return 1
}

func (scr *Script) flag(L *lua.LState) int {
	sr := scr.m.CPU.Status
	var v bool
	switch strings.ToUpper(L.CheckString(1)) {
	case "N", "S":
		v = sr.Sign
	case "V":
		v = sr.Overflow
	case "B":
		v = sr.Break
	case "D":
		v = sr.DecimalMode
	case "I":
		v = sr.InterruptDisable
	case "Z":
		v = sr.Zero
	case "C":
		v = sr.Carry
	default:
		L.ArgError(1, "unknown flag")
		return 0
	}
	L.Push(lua.LBool(v))
	return 1
}

func (scr *Script) pc(L *lua.LState) int {
	L.Push(lua.LNumber(scr.m.CPU.PC.Address()))
	return 1
}

func checkAddress(L *lua.LState, n int) uint16 {
	a := L.CheckInt(n)
	if a < 0 || a > 0xffff {
		L.ArgError(n, "address out of range")
	}
	return uint16(a)
}

func (scr *Script) peek(L *lua.LState) int {
	v, err := scr.m.Bus.Read(checkAddress(L, 1))
	if err != nil {
		L.RaiseError("%v", err)
		return 0
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (scr *Script) poke(L *lua.LState) int {
	address := checkAddress(L, 1)
	v := L.CheckInt(2)
	if v < 0 || v > 0xff {
		L.ArgError(2, "value out of range")
		return 0
	}
	if err := scr.m.Bus.Write(address, uint8(v)); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) log(L *lua.LState) int {
	logger.Log(logger.Allow, L.CheckString(1), L.CheckString(2))
	return 0
}

func (scr *Script) print(L *lua.LState) int {
	s := make([]string, L.GetTop())
	for i := range s {
		s[i] = L.ToStringMeta(L.Get(i + 1)).String()
	}
	fmt.Fprintln(scr.output, strings.Join(s, "\t"))
	return 0
}
