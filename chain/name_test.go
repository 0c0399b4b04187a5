// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "testing"

func TestExpiryTag(t *testing.T) {
	t.Parallel()

	tt := []struct {
		expiry uint64
		tag    string
	}{
		{1672099200, "27DEC2022"}, // 2022-12-27 00:00:00 UTC
		{1680307200, "1APR2023"},  // single-digit day, no padding
		{86400, "2JAN1970"},
	}
	for i, tv := range tt {
		if tag := ExpiryTag(tv.expiry); tag != tv.tag {
			t.Fatalf("#%d: expected %q, got %q", i, tv.tag, tag)
		}
	}
}

func TestInstrumentNaming(t *testing.T) {
	t.Parallel()

	if n := InstrumentName(PrincipalPrefix, "Wrapped Ether", 1672099200); n != "PT Wrapped Ether 27DEC2022" {
		t.Fatalf("unexpected name %q", n)
	}
	if s := InstrumentSymbol(PrincipalPrefix, "WETH", 1672099200); s != "PT-WETH-27DEC2022" {
		t.Fatalf("unexpected symbol %q", s)
	}
	if s := InstrumentSymbol(YieldPrefix, "WETH", 1672099200); s != "YT-WETH-27DEC2022" {
		t.Fatalf("unexpected symbol %q", s)
	}
}
