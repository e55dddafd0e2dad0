package cli

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/dmitrijs2005/addrkeeper/internal/client/client"
	"github.com/dmitrijs2005/addrkeeper/internal/common"
)

// getSimpleText and getPassword are swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) promptCredentials() (string, []byte, error) {
	userName, err := getSimpleText(a.reader, "Enter user name", os.Stdout)
	if err != nil {
		return "", nil, err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return "", nil, err
	}

	return userName, password, nil
}

// Signup prompts for a user name and password and creates the account.
// It does not log the user in.
func (a *App) Signup(ctx context.Context) error {
	userName, password, err := a.promptCredentials()
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.client.Signup(ctx, userName, string(password)); err != nil {
		if errors.Is(err, client.ErrRejected) {
			log.Printf("Signup rejected: the name may be taken or a field is empty")
		} else {
			log.Printf("Signup unsuccessful: %s", err.Error())
		}
		return err
	}

	printlnFn("Success!")
	return nil
}

// Login prompts for credentials and checks them with the server. On success
// the credentials are kept in memory for later add commands.
func (a *App) Login(ctx context.Context) error {
	userName, password, err := a.promptCredentials()
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if err := a.client.Login(ctx, userName, string(password)); err != nil {
		common.WipeByteArray(password)
		if errors.Is(err, client.ErrUnavailable) {
			a.setMode(ModeOffline)
		}
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	common.WipeByteArray(a.password)
	a.userName = userName
	a.password = password
	a.setMode(ModeOnline)

	log.Printf("Login successful")
	return nil
}

// Logout forgets the stored credentials.
func (a *App) Logout(ctx context.Context) error {
	common.WipeByteArray(a.password)
	a.password = nil
	a.userName = ""
	return nil
}
