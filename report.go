//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package cascade implements building blocks for Cascade-style key
// reconciliation experiments: fixed-size binary keys, reordered key
// views, and diagnostic reports over them.
package cascade

import (
	"io"
	"strconv"

	"github.com/markkurossi/tabulate"

	"github.com/markkurossi/cascade/key"
	"github.com/markkurossi/cascade/shuffle"
)

// Report renders the full position mapping of s as a table: the
// shuffle position, the key position it maps to, and the bit value.
func Report(w io.Writer, s *shuffle.Shuffle) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Shuffle").SetAlign(tabulate.MR)
	tab.Header("Key").SetAlign(tabulate.MR)
	tab.Header("Bit").SetAlign(tabulate.MR)

	for i := 0; i < s.Size(); i++ {
		row := tab.Row()
		row.Column(strconv.Itoa(i))

		ki, _ := s.KeyIndex(i)
		row.Column(strconv.Itoa(ki))

		bit, err := s.Bit(i)
		if err != nil {
			row.Column("?")
		} else {
			row.Column(strconv.Itoa(bit))
		}
	}
	tab.Print(w)
}

// DiffReport renders the positions at which the equal-size keys a
// and b differ, with a total count.
func DiffReport(w io.Writer, a, b *key.Key) error {
	if a == nil || b == nil {
		return key.ErrNilKey
	}
	total, err := a.Difference(b)
	if err != nil {
		return err
	}

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Pos").SetAlign(tabulate.MR)
	tab.Header("A").SetAlign(tabulate.MR)
	tab.Header("B").SetAlign(tabulate.MR)

	for i := 0; i < a.Size(); i++ {
		abit, _ := a.Bit(i)
		bbit, _ := b.Bit(i)
		if abit == bbit {
			continue
		}
		row := tab.Row()
		row.Column(strconv.Itoa(i))
		row.Column(strconv.Itoa(abit))
		row.Column(strconv.Itoa(bbit))
	}

	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column("")
	row.Column(strconv.Itoa(total)).SetFormat(tabulate.FmtBold)

	tab.Print(w)
	return nil
}
