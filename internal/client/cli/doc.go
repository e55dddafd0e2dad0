// Package cli implements the interactive addrkeeper client.
//
// Without positional arguments the CLI starts a REPL; otherwise the
// arguments are executed as a single command line, for example
//
//	cli -a 127.0.0.1:50051 signup
//	cli add 1 Main St
//
// Commands
//
//	help               show available commands
//	signup | register  create an account
//	login              authenticate and remember the credentials
//	logout             forget the credentials
//	add <address>      record one use of an address
//	top [n]            list the most used addresses
//	ping               check server reachability
//	exit | quit        leave the program
//
// add and top act on behalf of the logged in user. In one-shot mode the
// CLI logs in first when one of them is given.
package cli
