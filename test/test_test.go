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

package test_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jetsetilly/gopher6809/test"
)

func TestExpectations(t *testing.T) {
	test.ExpectSuccess(t, true)
	test.ExpectFailure(t, false)
	test.ExpectSuccess(t, nil)

	var err error
	test.ExpectSuccess(t, err)
	err = errors.New("test")
	test.ExpectFailure(t, err)

	test.ExpectEquality(t, 10, 10)
	test.ExpectInequality(t, "foo", "bar")
	test.ExpectApproximate(t, 1.0, 1.05, 0.1)
}

func TestCappedWriter(t *testing.T) {
	_, err := test.NewCappedWriter(0)
	test.ExpectFailure(t, err)

	c, err := test.NewCappedWriter(10)
	test.DemandSuccess(t, err)

	fmt.Fprintf(c, "hello world")
	test.ExpectEquality(t, c.String(), "hello worl")

	c.Reset()
	fmt.Fprintf(c, "hello")
	fmt.Fprintf(c, " wor")
	fmt.Fprintf(c, "ld")
	test.ExpectEquality(t, c.String(), "hello worl")
}

func TestCompareWriter(t *testing.T) {
	w := &test.CompareWriter{}
	fmt.Fprintf(w, "a%d", 1)
	test.ExpectSuccess(t, w.Compare("a1"))
	w.Clear()
	test.ExpectSuccess(t, w.Compare(""))
}
