// Package testdata holds fixture declarations for the go/types adapter.
package testdata

import (
	"math/big"
	"time"

	"github.com/descry/descry/gotypes/testdata/remote"
)

// Status has constant members, so it classifies as an enum.
type Status int

const (
	StatusActive Status = iota
	StatusInactive
)

// UserID is a defined string type without constant members.
type UserID string

// Promise mimics a deferred-value wrapper; its rendered name matches the
// resolver's wrapper substrings.
type Promise[T any] struct {
	value T
}

// User exercises every classification branch the adapter supports.
type User struct {
	ID        UserID
	Name      string
	Age       int
	Active    bool
	Balance   big.Int
	CreatedAt time.Time
	Tags      []string
	Matrix    [][]float64
	Nickname  *string
	Enabled   *bool
	Status    Status
	Profile   remote.Profile
	Updates   chan string
	Result    Promise[string]
	Extra     any
	Settings  map[string]string

	internal int
}

// Empty has no exported fields but is still a declaration.
type Empty struct {
	hidden bool
}
