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

// Package statsview offers a local HTTP server showing runtime statistics of
// the running emulation. Underlying functionality is provided by
// "github.com/go-echarts/statsview".
//
// The server is only available when the program is built with the statsview
// build tag:
//
//	go build -tags statsview
//
// Without the tag, Available() returns false and Launch() does nothing other
// than say so. After launch, graphs are viewable at:
//
//	localhost:12600/debug/statsview
//
// and the standard Go pprof statistics at:
//
//	localhost:12600/debug/pprof/
package statsview

// DefaultAddress is the address used by Launch() if the address argument is
// empty.
const DefaultAddress = "localhost:12600"

const url = "/debug/statsview"
