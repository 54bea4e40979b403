package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

// getStatus renders the prompt decoration: the logged-in username (if any)
// plus the active theme.
func (a *App) getStatus() string {
	st := a.store.State()

	s := ""
	if st.User != nil {
		s = st.User.Username + " "
	}
	s = s + string(st.Theme)
	return fmt.Sprintf("(%s)", s)
}

// Root runs the interactive loop until the user exits.
func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to SportsLink CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	runREPL(ctx, a, a.getStatus, scanner)
}
