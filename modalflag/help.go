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

package modalflag

import (
	"fmt"
	"strings"
)

func (md *Modes) writeHelp() {
	if md.Output == nil {
		return
	}

	s := &strings.Builder{}

	if md.Mode() != "" {
		s.WriteString(fmt.Sprintf("Usage of %s mode:\n", md.Path()))
	} else {
		s.WriteString("Usage:\n")
	}

	var defaults strings.Builder
	md.flags.SetOutput(&defaults)
	md.flags.PrintDefaults()
	s.WriteString(defaults.String())

	if len(md.subModes) > 0 {
		if defaults.Len() > 0 {
			s.WriteString("\n")
		}
		s.WriteString(fmt.Sprintf("  modes: %s (default %s)\n", strings.Join(md.subModes, ", "), md.subModes[0]))
	}

	if defaults.Len() == 0 && len(md.subModes) == 0 {
		s.WriteString("  no flags\n")
	}

	if md.help != "" {
		s.WriteString("\n")
		s.WriteString(md.help)
		s.WriteString("\n")
	}

	md.Output.Write([]byte(s.String()))
}
