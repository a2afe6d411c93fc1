package cli

import (
	"context"
	"fmt"
)

// Run выполняет команду. Ошибку печатает вызывающий (main),
// он же решает код выхода.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "start":
		return c.runStart(ctx)
	case "score":
		return c.runScore(ctx, args)
	case "finalize":
		return c.runFinalize(ctx, args)
	case "games":
		return c.runGames(ctx, args)
	case "sync":
		return c.runSync(ctx)
	default:
		PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}
