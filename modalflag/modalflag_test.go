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

package modalflag_test

import (
	"testing"

	"github.com/jetsetilly/sixtyfive/modalflag"
	"github.com/jetsetilly/sixtyfive/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
	test.ExpectEquality(t, len(md.RemainingArgs()), 0)
}

func TestFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-test", "-val", "10", "1", "2"})
	testFlag := md.AddBool("test", false, "test flag")
	val := md.AddInt("val", 0, "value")

	test.ExpectFailure(t, *testFlag)

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, *testFlag)
	test.ExpectEquality(t, *val, 10)
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(0), "1")
	test.ExpectEquality(t, md.GetArg(1), "2")
	test.ExpectEquality(t, md.GetArg(2), "")

	var visited []string
	md.Visit(func(name string) {
		visited = append(visited, name)
	})
	test.DemandEquality(t, len(visited), 2)
	test.ExpectEquality(t, visited[0], "test")
	test.ExpectEquality(t, visited[1], "val")
}

func TestUnknownFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-unknown"})
	p, err := md.Parse()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, p, modalflag.ParseError)
}

func TestModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-log", "step", "-hex", "a9 05", "program.bin"})
	log := md.AddBool("log", false, "echo log")
	md.AddSubModes("RUN", "STEP", "SCRIPT")

	p, err := md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, *log)
	test.ExpectEquality(t, md.Mode(), "STEP")

	md.NewMode()
	hex := md.AddString("hex", "", "program as hex")
	p, err = md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, *hex, "a9 05")
	test.ExpectEquality(t, md.GetArg(0), "program.bin")
	test.ExpectEquality(t, md.Path(), "STEP")
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"program.bin"})
	md.AddSubModes("run", "step")

	_, err := md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")
	test.ExpectEquality(t, md.GetArg(0), "program.bin")
}

func TestHelp(t *testing.T) {
	w := &test.CompareWriter{}

	md := modalflag.Modes{Output: w}
	md.NewArgs([]string{"-help"})
	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, w.Compare("Usage:\n  no flags\n"))

	w.Clear()
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")
	md.AddSubModes("A", "B")
	p, _ = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, w.Compare("Usage:\n"+
		"  -test\n"+
		"    \ttest flag (default true)\n"+
		"\n"+
		"  modes: A, B (default A)\n"), w.String())
}

func TestHelpForMode(t *testing.T) {
	w := &test.CompareWriter{}

	md := modalflag.Modes{Output: w}
	md.NewArgs([]string{"SCRIPT", "-help"})
	md.AddSubModes("RUN", "SCRIPT")
	_, err := md.Parse()
	test.DemandSuccess(t, err)

	md.NewMode()
	md.AdditionalHelp("script file required")
	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, w.Compare("Usage of SCRIPT mode:\n  no flags\n\nscript file required\n"), w.String())
}
