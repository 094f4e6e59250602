// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.
//
// *** NOTE: all historical versions of this file, as found in any
// git repository, are also covered by the licence, even when this
// notice is not present ***

// Package logger is the central log for the emulation. Entries are made up of
// a tag and a detail string. The tag is normally the name of the component
// making the entry.
//
//	logger.Logf(logger.Allow, "cartridge", "switching to bank %d", bank)
//
// Consecutive entries with the same tag and detail are folded into a single
// entry with a repeat count.
//
// Whether an entry is made at all depends on the Permission argument. The
// Allow value should be used when there is no reason to restrict logging.
package logger
