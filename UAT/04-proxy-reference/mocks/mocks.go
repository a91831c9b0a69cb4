// Package mocks holds function mocks shared by the tests of several packages.
package mocks

import "time"

//go:generate jgmock time.Sleep

// RecordSleeps makes MockSleep append every duration it is called with to durations.
func RecordSleeps(durations *[]time.Duration) {
	MockSleep_.Func = func(d time.Duration) {
		*durations = append(*durations, d)
	}
}
