package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	s := ""
	if identity := a.session.Identity(); identity != nil {
		s = identity.Name
		if identity.IsAdmin() {
			s += " admin"
		}
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root runs the REPL against stdin until the user exits.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to the storefront CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
