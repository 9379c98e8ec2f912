// This file is part of PrimeHack.
//
// PrimeHack is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// PrimeHack is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with PrimeHack.  If not, see <https://www.gnu.org/licenses/>.

package game_test

import (
	"testing"

	"github.com/primehack/primehack/game"
	"github.com/primehack/primehack/memory"
	"github.com/primehack/primehack/test"
)

func withID(id string, rev uint8) *memory.RAM {
	ram := memory.NewRAM(false)
	memory.WriteString(ram, game.IDAddress, id)
	ram.Write8(game.RevisionAddress, rev)
	return ram
}

func TestDetectGCN(t *testing.T) {
	var d game.Detector

	g, r := d.Detect(withID("GM8E01", 0))
	test.ExpectEquality(t, g, game.Prime1GCN)
	test.ExpectEquality(t, r, game.NTSCU)

	g, _ = d.Detect(withID("GM8E01", 1))
	test.ExpectEquality(t, g, game.Prime1GCNR1)

	g, _ = d.Detect(withID("GM8E01", 2))
	test.ExpectEquality(t, g, game.Prime1GCNR2)

	// revision is only meaningful for NTSC-U
	g, r = d.Detect(withID("GM8P01", 2))
	test.ExpectEquality(t, g, game.Prime1GCN)
	test.ExpectEquality(t, r, game.PAL)

	g, r = d.Detect(withID("G2MJ01", 0))
	test.ExpectEquality(t, g, game.Prime2GCN)
	test.ExpectEquality(t, r, game.NTSCJ)
}

func TestDetectWii(t *testing.T) {
	var d game.Detector

	g, r := d.Detect(withID("RM3P01", 0))
	test.ExpectEquality(t, g, game.Prime3Standalone)
	test.ExpectEquality(t, r, game.PAL)

	g, r = d.Detect(withID("R3ME01", 0))
	test.ExpectEquality(t, g, game.Menu)
	test.ExpectEquality(t, r, game.NTSCU)

	ram := withID("R3ME01", 0)
	ram.Write32(0x80500000, 0xcafebabe)
	d.Signatures = []game.Signature{
		{Address: 0x80400000, Word: 0xcafebabe, Game: game.Prime1},
		{Address: 0x80500000, Word: 0xcafebabe, Game: game.Prime3},
	}
	g, _ = d.Detect(ram)
	test.ExpectEquality(t, g, game.Prime3)
}

func TestDetectInvalid(t *testing.T) {
	var d game.Detector

	g, r := d.Detect(memory.NewRAM(false))
	test.ExpectEquality(t, g, game.InvalidGame)
	test.ExpectEquality(t, r, game.InvalidRegion)

	g, _ = d.Detect(withID("GALE01", 0))
	test.ExpectEquality(t, g, game.InvalidGame)

	g, _ = d.Detect(withID("GM8X01", 0))
	test.ExpectEquality(t, g, game.InvalidGame)
}

func TestForce(t *testing.T) {
	var d game.Detector
	d.Force(game.Prime2)

	g, r := d.Detect(withID("R3MP01", 0))
	test.ExpectEquality(t, g, game.Prime2)
	test.ExpectEquality(t, r, game.PAL)

	// forcing doesn't create a game from nothing
	g, _ = d.Detect(memory.NewRAM(false))
	test.ExpectEquality(t, g, game.InvalidGame)

	d.Force(game.InvalidGame)
	g, _ = d.Detect(withID("R3MP01", 0))
	test.ExpectEquality(t, g, game.Menu)
}

func TestStrings(t *testing.T) {
	test.ExpectEquality(t, game.Prime1GCNR2.String(), "PRIME_1_GCN_R2")
	test.ExpectEquality(t, game.NTSCJ.String(), "NTSC_J")

	g, err := game.ParseGame("PRIME_3_STANDALONE")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, g, game.Prime3Standalone)

	_, err = game.ParseGame("INVALID_GAME")
	test.ExpectFailure(t, err)

	r, err := game.ParseRegion("PAL")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, game.PAL)

	test.ExpectEquality(t, len(game.Games()), 11)
	test.ExpectSuccess(t, game.Prime2GCN.GCN())
	test.ExpectFailure(t, game.Prime2.GCN())
}
