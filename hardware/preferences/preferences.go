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

// Package preferences contains the preferences for the emulated hardware.
package preferences

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/sixtyfive/prefs"
)

type pref interface {
	fmt.Stringer
	Set(prefs.Value) error
	Reset() error
}

// Preferences for the emulated hardware.
type Preferences struct {
	// randomise CPU registers on reset
	RandomState prefs.Bool

	// log every executed instruction
	Trace prefs.Bool

	// log writes to ROM. ROM writes are always ignored but they are often
	// a sign of a fault in the program being run
	LogROMWrites prefs.Bool

	keys  []string
	index map[string]pref
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are set to their defaults and then to any value
// found in the top group of the prefs command line stack.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{
		index: make(map[string]pref),
	}
	p.add("hardware.randomstate", &p.RandomState)
	p.add("hardware.trace", &p.Trace)
	p.add("hardware.logromwrites", &p.LogROMWrites)

	p.SetDefaults()

	for _, k := range p.keys {
		if ok, v := prefs.GetCommandLinePref(k); ok {
			if err := p.index[k].Set(v); err != nil {
				return nil, fmt.Errorf("preferences: %s: %w", k, err)
			}
		}
	}

	return p, nil
}

func (p *Preferences) add(key string, v pref) {
	p.keys = append(p.keys, key)
	p.index[key] = v
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	_ = p.RandomState.Set(false)
	_ = p.Trace.Set(false)
	_ = p.LogROMWrites.Set(true)
}

// Set the named preference with a value. Returns an error if the name is
// not recognised or the value cannot be used for the preference.
func (p *Preferences) Set(key string, v prefs.Value) error {
	pr, ok := p.index[key]
	if !ok {
		return fmt.Errorf("preferences: unknown preference %q", key)
	}
	return pr.Set(v)
}

func (p *Preferences) String() string {
	s := strings.Builder{}
	for _, k := range p.keys {
		s.WriteString(fmt.Sprintf("%s :: %s\n", k, p.index[k]))
	}
	return s.String()
}

// AllowLogging implements the logger.Permission interface. Used for trace
// logging of executed instructions.
func (p *Preferences) AllowLogging() bool {
	return p.Trace.Get().(bool)
}

// ROMWrites returns a logger.Permission for ROM write logging.
func (p *Preferences) ROMWrites() romWrites {
	return romWrites{p: p}
}

type romWrites struct {
	p *Preferences
}

// AllowLogging implements the logger.Permission interface.
func (r romWrites) AllowLogging() bool {
	return r.p.LogROMWrites.Get().(bool)
}
