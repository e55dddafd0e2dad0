package cli

import (
	"context"
	"fmt"
	"log"
)

// AddAddress records one use of address for the logged in user.
func (a *App) AddAddress(ctx context.Context, address string) error {
	if err := a.client.AddAddress(ctx, a.userName, string(a.password), address); err != nil {
		log.Printf("Add address unsuccessful: %s", err.Error())
		return err
	}

	printlnFn("Recorded:", address)
	return nil
}

// Top prints the logged in user's addresses ranked by use. A zero limit
// leaves the choice to the server.
func (a *App) Top(ctx context.Context, limit int) error {
	addresses, err := a.client.TopAddresses(ctx, a.userName, limit)
	if err != nil {
		log.Printf("Top addresses unsuccessful: %s", err.Error())
		return err
	}

	if len(addresses) == 0 {
		printlnFn("No addresses yet")
		return nil
	}

	for i, addr := range addresses {
		printlnFn(fmt.Sprintf("%d. %s", i+1, addr))
	}
	return nil
}

// Ping reports whether the server answers.
func (a *App) Ping(ctx context.Context) error {
	if err := a.client.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		printlnFn("Server unavailable:", err.Error())
		return err
	}

	a.setMode(ModeOnline)
	printlnFn("OK")
	return nil
}
