// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"
	"strings"
	"time"
)

const (
	PrincipalPrefix = "PT"
	YieldPrefix     = "YT"
)

// ExpiryTag renders an expiry timestamp as an uppercase date tag,
// e.g. 27DEC2022 (UTC).
func ExpiryTag(expiry uint64) string {
	t := time.Unix(int64(expiry), 0).UTC()
	return strings.ToUpper(t.Format("2Jan2006"))
}

// InstrumentName composes a deployed instrument's human-readable name,
// e.g. "PT Wrapped Ether 27DEC2022".
func InstrumentName(prefix string, base string, expiry uint64) string {
	return fmt.Sprintf("%s %s %s", prefix, base, ExpiryTag(expiry))
}

// InstrumentSymbol composes a deployed instrument's ticker,
// e.g. "PT-WETH-27DEC2022".
func InstrumentSymbol(prefix string, base string, expiry uint64) string {
	return fmt.Sprintf("%s-%s-%s", prefix, base, ExpiryTag(expiry))
}
