// This file is part of Gopher6809.
//
// Gopher6809 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6809 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6809.  If not, see <https://www.gnu.org/licenses/>.

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() and ExpectInequality() functions are generic and can
// compare any comparable type. The ExpectSuccess() and ExpectFailure()
// functions test for the success/failure value of a bool or error type.
//
// The Demand*() functions are the same as the Expect*() functions except that
// a failure is fatal to the test.
//
// CompareWriter and CappedWriter are io.Writer implementations that are
// useful for testing output.
package test
