package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hrsvr",
		Short: "hrsvr - attendance and leave backend",
		Long: `hrsvr - attendance and leave backend.

Configuration is read from the process environment and an optional .env file:
- Server: APP_PORT, APP_ENV, LOG_LEVEL, ALLOWED_ORIGINS
- Database: DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME, DB_SSL_MODE
- Auth: JWT_SECRET_KEY, JWT_ACCESS_EXPIRATION_TIME, ADMIN_EMPLOYEE_IDS
- Policy: STANDARD_CLOSE_TIME, DEFAULT_LEAVE_DAYS, RECENT_APPLICATION_DAYS, APP_TIMEZONE
`,
		SilenceUsage: true,
	}

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newMigrateCmd())
	cmd.AddCommand(newResetDBCmd())

	return cmd
}
