package main

import (
	"context"
	"fmt"
	"time"

	"doctor-verification/cmd/bootstrap"
	"doctor-verification/config"
	"doctor-verification/internal/delivery/http/middleware"
	"doctor-verification/internal/infrastructure/database"
	"doctor-verification/internal/repository"
	"doctor-verification/pkg/jwt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "doctor-verification",
		Short:         "Doctor credential verification service",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP API",
			RunE:  runServe,
		},
		newMigrateCommand(),
		newTokenCommand(),
	)
	return root
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize application with all dependencies
	app, err := bootstrap.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	// Run the application
	app.Run()
	return nil
}

func newMigrateCommand() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}

	run := func(direction database.MigrateDirection) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			bootstrap.NewLogger(cfg.Log)
			return database.RunMigrations(cfg.DB, direction)
		}
	}

	migrateCmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE:  run(database.MigrateUp),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			RunE:  run(database.MigrateDown),
		},
	)
	return migrateCmd
}

// newTokenCommand issues an access token for an existing account and registers it
// in Redis the same way the auth service does. Intended for local development.
func newTokenCommand() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a development access token for an existing user",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			app, err := bootstrap.Connect(cfg)
			if err != nil {
				return err
			}
			defer app.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			user, err := repository.NewUserRepository().FindByEmail(ctx, app.DB, email)
			if err != nil {
				return fmt.Errorf("failed to find user: %w", err)
			}
			if user == nil {
				return fmt.Errorf("user %q not found", email)
			}

			jwtService := jwt.NewJWTService(cfg.JWT)
			token, tokenID, err := jwtService.GenerateAccessToken(user.ID, user.Email, user.RoleID)
			if err != nil {
				return fmt.Errorf("failed to sign token: %w", err)
			}

			key := middleware.AccessTokenKey(user.ID, tokenID)
			if err := app.RedisClient.Set(ctx, key, "1", jwtService.GetAccessExpiry()).Err(); err != nil {
				return fmt.Errorf("failed to register token: %w", err)
			}

			app.Log.WithFields(logrus.Fields{
				"user_id": user.ID,
				"role":    user.Role.RoleName,
			}).Info("Issued development access token")
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email of the account to issue a token for")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
