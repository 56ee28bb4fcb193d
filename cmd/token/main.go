// Command token prints a signed API token for the configured JWT_SECRET.
//
//	token -id 42 -email tpo@college.edu -role admin -ttl 2h
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/juju/gnuflag"
	"github.com/sirupsen/logrus"

	"github.com/justsurfingit/placement-portal/internal/auth"
	"github.com/justsurfingit/placement-portal/internal/config"
)

func main() {
	var (
		id, email, role string
		ttl             time.Duration
	)
	fs := gnuflag.NewFlagSet("token", gnuflag.ExitOnError)
	fs.StringVar(&id, "id", "", "principal id")
	fs.StringVar(&email, "email", "", "principal email")
	fs.StringVar(&role, "role", "", "principal role, e.g. admin")
	fs.DurationVar(&ttl, "ttl", auth.DefaultExpiry, "token lifetime")
	if err := fs.Parse(true, os.Args[1:]); err != nil {
		logrus.WithError(err).Fatal("invalid arguments")
	}

	_ = config.LoadDotEnv()
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logrus.Fatal(config.ErrMissingJWTSecret)
	}
	issuer, err := auth.NewIssuer(secret, ttl)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create token issuer")
	}

	payload := map[string]any{}
	for key, value := range map[string]string{"id": id, "email": email, "role": role} {
		if value != "" {
			payload[key] = value
		}
	}
	token, err := issuer.GenerateToken(payload, ttl)
	if err != nil {
		logrus.WithError(err).Fatal("failed to generate token")
	}
	fmt.Println(token)
}
