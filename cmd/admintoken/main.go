package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	jwtsvc "travelagent/internal/pkg/jwt"
)

// Mints an admin bearer token for the trip teardown endpoint.
func main() {
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	subject := flag.String("subject", "operator", "token subject")
	flag.Parse()

	_ = godotenv.Load()

	secret := os.Getenv("ADMIN_JWT_SECRET")
	if secret == "" {
		log.Fatal("ADMIN_JWT_SECRET is empty")
	}

	token, err := jwtsvc.New(secret, *ttl).GenerateToken(*subject, "admin")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(token)
}
