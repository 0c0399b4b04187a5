// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"encoding/binary"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
)

// Operation types recorded in the activity log.
const (
	CreateYieldContract = "createYieldContract"
	RegisterAsset       = "registerAsset"
	SetExpiryDivisor    = "setExpiryDivisor"
	SetInterestFeeRate  = "setInterestFeeRate"
	SetTreasury         = "setTreasury"
)

// Activity is the change notification emitted by a committed
// operation. Addresses are hex strings so the record marshals the same
// way over the wire and at rest.
type Activity struct {
	Tmstmp         int64  `serialize:"true" json:"timestamp"`
	TxID           ids.ID `serialize:"true" json:"txId"`
	Typ            string `serialize:"true" json:"type"`
	Sender         string `serialize:"true" json:"sender"`
	Underlying     string `serialize:"true" json:"underlying,omitempty"`
	Expiry         uint64 `serialize:"true" json:"expiry,omitempty"`
	PrincipalToken string `serialize:"true" json:"principalToken,omitempty"`
	YieldToken     string `serialize:"true" json:"yieldToken,omitempty"`
	Value          uint64 `serialize:"true" json:"value,omitempty"`
	To             string `serialize:"true" json:"to,omitempty"`
}

func activityKey(index uint64) []byte {
	b := make([]byte, 2+8)
	b[0] = activityPrefix
	b[1] = ByteDelimiter
	binary.BigEndian.PutUint64(b[2:], index)
	return b
}

func getActivityCount(db database.Database) (uint64, error) {
	v, err := db.Get(activityCountKey)
	if err == database.ErrNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(v), nil
}

// PutActivity appends [a] to the activity log.
func PutActivity(db database.Database, a *Activity) error {
	count, err := getActivityCount(db)
	if err != nil {
		return err
	}
	v, err := Marshal(a)
	if err != nil {
		return err
	}
	if err := db.Put(activityKey(count), v); err != nil {
		return err
	}
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, count+1)
	return db.Put(activityCountKey, b)
}

// GetRecentActivity returns up to [limit] of the most recent activity
// records, newest first.
func GetRecentActivity(db database.Database, limit uint64) ([]*Activity, error) {
	count, err := getActivityCount(db)
	if err != nil {
		return nil, err
	}
	if limit > count {
		limit = count
	}
	activity := make([]*Activity, 0, limit)
	for i := uint64(0); i < limit; i++ {
		v, err := db.Get(activityKey(count - 1 - i))
		if err != nil {
			return nil, err
		}
		var a Activity
		if _, err := Unmarshal(v, &a); err != nil {
			return nil, err
		}
		activity = append(activity, &a)
	}
	return activity, nil
}
