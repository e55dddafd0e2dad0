package cli

import (
	"bufio"
	"context"
	"io"
	"testing"
)

func stubInputs(t *testing.T, username string, password []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return username, nil }
	getPassword = func(_ io.Writer) ([]byte, error) { return append([]byte(nil), password...), nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func silence(t *testing.T) *[]string {
	t.Helper()
	var out []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		for _, v := range a {
			if s, ok := v.(string); ok {
				out = append(out, s)
			}
		}
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &out
}

type fakeClient struct {
	signupUser, signupPass string
	signupErr              error

	loginUser, loginPass string
	loginErr             error

	addUser, addPass, addAddr string
	addErr                    error

	topUser  string
	topLimit int
	top      []string
	topErr   error

	pingErr error
	closed  bool
}

func (f *fakeClient) Close() error { f.closed = true; return nil }

func (f *fakeClient) Signup(_ context.Context, u, p string) error {
	f.signupUser, f.signupPass = u, p
	return f.signupErr
}

func (f *fakeClient) Login(_ context.Context, u, p string) error {
	f.loginUser, f.loginPass = u, p
	return f.loginErr
}

func (f *fakeClient) AddAddress(_ context.Context, u, p, addr string) error {
	f.addUser, f.addPass, f.addAddr = u, p, addr
	return f.addErr
}

func (f *fakeClient) TopAddresses(_ context.Context, u string, limit int) ([]string, error) {
	f.topUser, f.topLimit = u, limit
	return f.top, f.topErr
}

func (f *fakeClient) Ping(context.Context) error { return f.pingErr }
