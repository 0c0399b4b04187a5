// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package version holds the daemon build version.
package version

import "github.com/ava-labs/avalanchego/version"

var Version = version.NewDefaultVersion(0, 1, 0)
