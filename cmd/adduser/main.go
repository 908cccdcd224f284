// Offline provisioning tool: inserts {username, hash(password, secret)} rows
// into the credential store. Run out-of-band; not part of the serving core.
package main

import (
	"bufio"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"golang.org/x/term"

	"github.com/vgen-labs/vgen-backend/internal/auth"
	"github.com/vgen-labs/vgen-backend/migrations"
)

func main() {
	_ = godotenv.Load()

	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		log.Fatal("SECRET_KEY is not set")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.Embed)
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("goose: %v", err)
	}
	if err := goose.Up(db, "."); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	reader := bufio.NewReader(os.Stdin)
	fmt.Print("Enter username: ")
	username, err := reader.ReadString('\n')
	if err != nil {
		log.Fatalf("failed to read username: %v", err)
	}
	username = strings.TrimSpace(username)

	var password string
	for {
		password = readPassword("Enter password: ")
		confirm := readPassword("Confirm password: ")
		if password == confirm {
			break
		}
		fmt.Println("Passwords do not match. Please try again.")
	}

	digest := auth.NewHasher(secret).Hash(password)

	if _, err := db.Exec(
		`INSERT INTO users (username, password) VALUES ($1, $2)`,
		username, digest,
	); err != nil {
		log.Fatalf("failed to add user: %v", err)
	}

	fmt.Println("User added successfully.")
}

func readPassword(prompt string) string {
	fmt.Print(prompt)
	b, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		log.Fatalf("failed to read password: %v", err)
	}
	return string(b)
}
