//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package cascade

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/markkurossi/cascade/key"
	"github.com/markkurossi/cascade/shuffle"
)

func TestReport(t *testing.T) {
	k, err := key.Parse("1011")
	if err != nil {
		t.Fatalf("key.Parse: %v", err)
	}
	s, err := shuffle.New(k, shuffle.Identity)
	if err != nil {
		t.Fatalf("shuffle.New: %v", err)
	}

	var buf bytes.Buffer
	Report(&buf, s)
	out := buf.String()

	for _, header := range []string{"Shuffle", "Key", "Bit"} {
		if !strings.Contains(out, header) {
			t.Errorf("report is missing header %q:\n%s", header, out)
		}
	}
	for _, pos := range []string{"0", "1", "2", "3"} {
		if !strings.Contains(out, pos) {
			t.Errorf("report is missing position %s:\n%s", pos, out)
		}
	}
	if strings.Contains(out, "?") {
		t.Errorf("report has unresolved bits:\n%s", out)
	}
}

func TestDiffReport(t *testing.T) {
	a, err := key.Parse("111111111111")
	if err != nil {
		t.Fatalf("key.Parse: %v", err)
	}
	b := a.Clone()
	if err := b.FlipBit(0); err != nil {
		t.Fatalf("FlipBit: %v", err)
	}
	if err := b.FlipBit(11); err != nil {
		t.Fatalf("FlipBit: %v", err)
	}

	var buf bytes.Buffer
	if err := DiffReport(&buf, a, b); err != nil {
		t.Fatalf("DiffReport: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "Total") {
		t.Errorf("diff report is missing the total row:\n%s", out)
	}
	if !strings.Contains(out, "11") {
		t.Errorf("diff report is missing position 11:\n%s", out)
	}
	if !strings.Contains(out, "2") {
		t.Errorf("diff report is missing the difference count:\n%s", out)
	}
}

func TestDiffReportErrors(t *testing.T) {
	a, err := key.Parse("1011")
	if err != nil {
		t.Fatalf("key.Parse: %v", err)
	}
	short, err := key.Parse("10")
	if err != nil {
		t.Fatalf("key.Parse: %v", err)
	}

	var buf bytes.Buffer
	if err := DiffReport(&buf, a, short); !errors.Is(err, key.ErrSizeMismatch) {
		t.Errorf("mismatched sizes accepted: %v", err)
	}
	if err := DiffReport(&buf, a, nil); !errors.Is(err, key.ErrNilKey) {
		t.Errorf("nil key accepted: %v", err)
	}
	if err := DiffReport(&buf, nil, a); !errors.Is(err, key.ErrNilKey) {
		t.Errorf("nil key accepted: %v", err)
	}
}
