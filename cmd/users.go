package main

import (
	"fmt"
	"time"

	"blogger/internal/apperr"
	"blogger/internal/auth"
	"blogger/internal/db"
	"blogger/internal/repository"
	"blogger/internal/services"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

var checkUserCmd = &cobra.Command{
	Use:   "check-user [username]",
	Short: "Print a user's id, username, role and creation time",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username := "admin"
		if len(args) == 1 {
			username = args[0]
		}

		return withAuthService(cmd, func(svc *services.AuthService) error {
			u, err := svc.GetUser(cmd.Context(), username)
			if apperr.IsKind(err, apperr.KindNotFound) {
				cmd.Println("User not found")
				return nil
			}
			if err != nil {
				return err
			}
			cmd.Println("User found:")
			cmd.Printf("  id:         %d\n", u.ID)
			cmd.Printf("  username:   %s\n", u.Username)
			cmd.Printf("  role:       %s\n", u.Role)
			cmd.Printf("  created_at: %s\n", u.CreatedAt.Format(time.RFC3339))
			return nil
		})
	},
}

var createUserCmd = &cobra.Command{
	Use:   "create-user <username> <password>",
	Short: "Create a user that can log in",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		role, _ := cmd.Flags().GetString("role")
		hash, _ := cmd.Flags().GetBool("hash")

		return withAuthService(cmd, func(svc *services.AuthService) error {
			u, err := svc.CreateUser(cmd.Context(), args[0], args[1], role, hash)
			if err != nil {
				return err
			}
			cmd.Printf("created user %q (id %d, role %s)\n", u.Username, u.ID, u.Role)
			return nil
		})
	},
}

func init() {
	createUserCmd.Flags().String("role", "admin", "user role")
	createUserCmd.Flags().Bool("hash", true, "store a bcrypt hash instead of the plaintext password")
}

func withAuthService(cmd *cobra.Command, fn func(*services.AuthService) error) error {
	pool, err := db.NewPostgresConnection(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer pool.Close()
	return fn(newAuthService(pool))
}

func newAuthService(pool *pgxpool.Pool) *services.AuthService {
	return services.NewAuthService(repository.NewUserRepository(pool), auth.NewVerifier(cfg))
}
