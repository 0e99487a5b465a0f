// Command seed creates the initial admin and regular user accounts,
// prompting for each password on the terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"syscall"

	"golang.org/x/term"

	"imagevault/internal/auth"
	"imagevault/internal/common"
	"imagevault/internal/config"
	"imagevault/internal/logging"
	"imagevault/internal/models"
	"imagevault/internal/repositories/repomanager"
	"imagevault/internal/services"
)

// readPassword is a seam for testing the prompt.
var readPassword = func() ([]byte, error) {
	return term.ReadPassword(int(syscall.Stdin))
}

type seedAccount struct {
	name  string
	email string
	role  models.Role
}

var seedAccounts = []seedAccount{
	{name: "Admin User", email: "admin@example.com", role: models.RoleAdmin},
	{name: "Regular User", email: "user@example.com", role: models.RoleUser},
}

func main() {
	if err := run(context.Background(), os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(ctx context.Context, out io.Writer) error {
	cfg := config.LoadConfig()
	if cfg.DatabaseDSN == "" {
		return errors.New("seeding requires a database DSN; the in-memory store is empty on every start")
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	repos, err := repomanager.NewPostgresRepositoryManager(ctx, cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("storage init error: %w", err)
	}
	defer repos.Close()

	if err := repos.RunMigrations(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	usersSvc := services.NewUserService(repos.Users(), auth.NewHasher(cfg.BcryptCost), logger)

	for _, acc := range seedAccounts {
		fmt.Fprintf(out, "Password for %s <%s>: ", acc.name, acc.email)
		password, err := readPassword()
		fmt.Fprintln(out)
		if err != nil {
			return fmt.Errorf("reading password: %w", err)
		}

		created, err := usersSvc.Create(ctx, services.CreateUserParams{
			Name:     acc.name,
			Email:    acc.email,
			Password: string(password),
			Role:     acc.role,
		})
		if err != nil {
			if errors.Is(err, common.ErrConflict) {
				fmt.Fprintf(out, "%s already exists, skipping\n", acc.email)
				continue
			}
			return fmt.Errorf("creating %s: %w", acc.email, err)
		}

		fmt.Fprintf(out, "created %s (id %d)\n", created.Email, created.ID)
	}

	return nil
}
