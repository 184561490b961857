// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/maxvyquincy9393/alliv-security/cmd/app/commands"
)

func main() {
	cmd := &cli.Command{
		Name:    "app",
		Usage:   "Security utility toolkit: field encryption, password hardening, signed tokens, and output sanitizing",
		Version: "1.0.0",
		Commands: []*cli.Command{
			{
				Name:  "generate-keys",
				Usage: "Generate a fresh set of application secrets",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunGenerateKeys(commands.DefaultIO())
				},
			},
			{
				Name:  "encrypt",
				Usage: "Encrypt a field value with the configured cipher",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "value",
						Aliases:  []string{"v"},
						Required: true,
						Usage:    "Plaintext value to encrypt",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunEncrypt(commands.DefaultIO(), cmd.String("value"))
				},
			},
			{
				Name:  "decrypt",
				Usage: "Decrypt a serialized envelope produced by the encrypt command",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "value",
						Aliases:  []string{"v"},
						Required: true,
						Usage:    "Serialized envelope to decrypt",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunDecrypt(commands.DefaultIO(), cmd.String("value"))
				},
			},
			{
				Name:  "hash-password",
				Usage: "Hash a password with the memory-hard hasher",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Required: true,
						Usage:    "Password to hash",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunHashPassword(commands.DefaultIO(), cmd.String("password"))
				},
			},
			{
				Name:  "verify-password",
				Usage: "Verify a password against a stored hash",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Required: true,
						Usage:    "Password to verify",
					},
					&cli.StringFlag{
						Name:     "hash",
						Required: true,
						Usage:    "Stored password hash",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunVerifyPassword(commands.DefaultIO(), cmd.String("password"), cmd.String("hash"))
				},
			},
			{
				Name:  "check-password",
				Usage: "Evaluate password strength",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Required: true,
						Usage:    "Password to evaluate",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunCheckPassword(commands.DefaultIO(), cmd.String("password"))
				},
			},
			{
				Name:  "generate-password",
				Usage: "Generate a random password",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "length",
						Aliases: []string{"l"},
						Value:   16,
						Usage:   "Password length (minimum 4)",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunGeneratePassword(commands.DefaultIO(), cmd.Int("length"))
				},
			},
			{
				Name:  "create-token",
				Usage: "Issue a compact signed token",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "claims",
						Aliases: []string{"c"},
						Usage:   "JSON object with custom claims",
					},
					&cli.DurationFlag{
						Name:    "expires-in",
						Aliases: []string{"e"},
						Usage:   "Token lifetime (defaults to the configured expiration)",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunCreateToken(
						commands.DefaultIO(),
						cmd.String("claims"),
						cmd.Duration("expires-in"),
					)
				},
			},
			{
				Name:  "verify-token",
				Usage: "Verify a compact signed token and print its claims",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "token",
						Aliases:  []string{"t"},
						Required: true,
						Usage:    "Token to verify",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunVerifyToken(commands.DefaultIO(), cmd.String("token"))
				},
			},
			{
				Name:  "secure-token",
				Usage: "Generate random bytes hex-encoded from the secure random source",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "length",
						Aliases: []string{"l"},
						Value:   32,
						Usage:   "Number of random bytes",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunSecureToken(commands.DefaultIO(), cmd.Int("length"))
				},
			},
			{
				Name:  "create-refresh-token",
				Usage: "Generate an opaque refresh token",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunCreateRefreshToken(commands.DefaultIO())
				},
			},
			{
				Name:  "sanitize",
				Usage: "Strip sensitive fields from a JSON document read from stdin",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:    "field",
						Aliases: []string{"f"},
						Usage:   "Extra field name to strip (repeatable)",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunSanitize(commands.DefaultIO(), cmd.StringSlice("field"))
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}
