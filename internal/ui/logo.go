// ProjectWizard - CLAUDE.md Project Setup Wizard
// Copyright (C) 2026 Cloud Exit B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package ui

import (
	"fmt"
	"io"
)

// Banner writes the application banner to w.
func Banner(w io.Writer) {
	fmt.Fprint(w, Cyan)
	fmt.Fprintln(w, ` ___         _         _ __      ___                _ `)
	fmt.Fprintln(w, `| _ \_ _ ___(_)___ __| |\ \    / (_)_____ _ _ _ __| |`)
	fmt.Fprintln(w, `|  _/ '_/ _ \ / -_) _|  _\ \/\/ /| |_ / _  | '_/ _  |`)
	fmt.Fprintln(w, `|_| |_| \___/ \___\__|\__|\_/\_/ |_/__\__,_|_| \__,_|`)
	fmt.Fprintln(w, `          |__/                                        `)
	fmt.Fprint(w, NC)
	fmt.Fprintf(w, "%sCLAUDE.md project setup wizard%s\n", Dim, NC)
}
