// Package greeter demonstrates mocking an interface dependency.
package greeter

import (
	"context"
	"fmt"
)

// ID identifies a user.
type ID int

// UserNames looks up and forgets user names.
type UserNames interface {
	FindByID(ctx context.Context, id ID) (string, error)
	Forget(id ID)
	Count() int
}

// Greet greets the user with the given id, or a stranger when the lookup fails.
func Greet(ctx context.Context, names UserNames, id ID) string {
	name, err := names.FindByID(ctx, id)
	if err != nil {
		return "Hello, stranger!"
	}

	return fmt.Sprintf("Hello, %s!", name)
}

// Prune forgets every id and returns how many names are left.
func Prune(names UserNames, ids ...ID) int {
	for _, id := range ids {
		names.Forget(id)
	}

	return names.Count()
}
