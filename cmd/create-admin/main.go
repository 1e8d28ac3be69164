// Copyright (c) 2026 Champa Studio. All rights reserved.
// Author: dev@champa.studio

// Command create-admin seeds an administrator account.
//
// Registration through the API only ever produces client accounts, so the
// first (and any further) admin is created with this tool:
//
//	create-admin -email studio@champa.la -name "Studio Lead" -password '...'
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/champastudio/champa/internal/platform/config"
	pgstore "github.com/champastudio/champa/internal/platform/postgres"
	"github.com/champastudio/champa/internal/platform/sec"
	"github.com/champastudio/champa/internal/users/auth"
	"github.com/champastudio/champa/pkg/i18n"
	"github.com/champastudio/champa/pkg/uuid"
)

func main() {
	email := flag.String("email", "", "admin email address")
	name := flag.String("name", "Administrator", "display name")
	password := flag.String("password", "", "initial password (min 8 characters)")
	flag.Parse()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(slog.String("app", "champa"))

	if *email == "" || len(*password) < 8 {
		fmt.Fprintln(os.Stderr, "usage: create-admin -email <address> -password <min 8 chars> [-name <display name>]")
		os.Exit(2)
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	must(log, err, "load configuration")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer pool.Close()

	hash, err := sec.HashPassword(*password)
	must(log, err, "hash password")

	admin := &auth.User{
		ID:            uuid.New(),
		Email:         *email,
		PasswordHash:  hash,
		DisplayName:   *name,
		Role:          sec.RoleAdmin,
		PreferredLang: i18n.DefaultLang,
		Theme:         "light",
		IsVerified:    true,
	}

	must(log, auth.NewUserRepository(pool).Create(ctx, admin), "create admin account")

	log.Info("admin_account_created",
		slog.String("user_id", admin.ID),
		slog.String("email", admin.Email),
	)
}

func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
