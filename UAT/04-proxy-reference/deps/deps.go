// Package deps holds proxies shared by the tests of several packages. A test connects its
// mock to a proxy for as long as it runs, and tests of other packages wait their turn.
package deps

import "time"

//go:generate jgmock --proxy time.Sleep

// Sleeper is the signature of time.Sleep and of the Sleep proxy.
type Sleeper = func(time.Duration)
