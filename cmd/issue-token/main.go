// Command issue-token mints an access token for a user. It is used to
// bootstrap admin access and for local testing; production tokens come
// from the wallet login service.
//
// Usage:
//
//	issue-token --user=<uuid> [--role=admin] [--wallet=G...] [--ttl=1h]
//
// Requires AUTH_JWT_SECRET (and optionally AUTH_JWT_ISSUER) to be set.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/cotravel-backend/internal/adapter/soroban/xdr"
	"github.com/heartmarshall/cotravel-backend/internal/auth"
	"github.com/heartmarshall/cotravel-backend/internal/domain"
)

func main() {
	user := flag.String("user", "", "user ID (uuid) to issue the token for")
	role := flag.String("role", "user", "role claim: user or admin")
	wallet := flag.String("wallet", "", "Stellar account bound to the user")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	userID, err := uuid.Parse(*user)
	if err != nil || userID == uuid.Nil {
		fmt.Fprintln(os.Stderr, "Usage: issue-token --user=<uuid> [--role=admin] [--wallet=G...] [--ttl=1h]")
		os.Exit(1)
	}
	if !domain.UserRole(*role).IsValid() {
		log.Fatalf("unknown role %q", *role)
	}
	if *wallet != "" && !xdr.IsAccountAddress(*wallet) {
		log.Fatalf("wallet %q is not a Stellar account address", *wallet)
	}

	secret := os.Getenv("AUTH_JWT_SECRET")
	if len(secret) < 32 {
		log.Fatal("AUTH_JWT_SECRET must be set and at least 32 characters")
	}
	issuer := os.Getenv("AUTH_JWT_ISSUER")
	if issuer == "" {
		issuer = "cotravel"
	}

	token, err := auth.NewJWTManager(secret, issuer).Issue(auth.Identity{
		UserID: userID,
		Role:   domain.UserRole(*role),
		Wallet: *wallet,
	}, *ttl)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}

	fmt.Println(token)
}
