package domain

import "strings"

// Channel is one of the four destinations for harvested units
type Channel string

const (
	ChannelSold   Channel = "sold"
	ChannelJarred Channel = "jarred"
	ChannelKegged Channel = "kegged"
	ChannelAged   Channel = "aged"
)

// Channels lists every channel in display order
var Channels = []Channel{ChannelSold, ChannelJarred, ChannelKegged, ChannelAged}

// ParseChannel converts a wire value to a Channel
func ParseChannel(s string) (Channel, bool) {
	switch ch := Channel(strings.ToLower(strings.TrimSpace(s))); ch {
	case ChannelSold, ChannelJarred, ChannelKegged, ChannelAged:
		return ch, true
	}
	return "", false
}

// Allocation is the number of harvested units sent to each channel
type Allocation struct {
	Sold   int `json:"sold"`
	Jarred int `json:"jarred"`
	Kegged int `json:"kegged"`
	Aged   int `json:"aged"`
}

// Quantity returns the units allocated to ch
func (a Allocation) Quantity(ch Channel) int {
	switch ch {
	case ChannelSold:
		return a.Sold
	case ChannelJarred:
		return a.Jarred
	case ChannelKegged:
		return a.Kegged
	case ChannelAged:
		return a.Aged
	}
	return 0
}

// With returns a copy of the allocation with ch set to qty
func (a Allocation) With(ch Channel, qty int) Allocation {
	switch ch {
	case ChannelSold:
		a.Sold = qty
	case ChannelJarred:
		a.Jarred = qty
	case ChannelKegged:
		a.Kegged = qty
	case ChannelAged:
		a.Aged = qty
	}
	return a
}

// Total is the sum over all channels
func (a Allocation) Total() int {
	return a.Sold + a.Jarred + a.Kegged + a.Aged
}

// AllocationRow is one crop line of a session
type AllocationRow struct {
	ID        string `json:"id"`
	CropName  string `json:"crop_name"`
	SeedCount int    `json:"seed_count"`
	Allocation
}

// IsActive reports whether the row takes part in pricing and capacity checks
func (r AllocationRow) IsActive() bool {
	return r.CropName != "" && r.SeedCount > 0
}
