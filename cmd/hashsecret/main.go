// Command hashsecret reads an admin secret from stdin and prints its Argon2id
// hash, ready to be used as ADMIN_SECRET_HASH.
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/vaultpass/passgen/internal/crypto"
)

func main() {
	secret, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && secret == "" {
		slog.Error("reading secret from stdin", "error", err)
		os.Exit(1)
	}

	secret = strings.TrimRight(secret, "\r\n")
	if secret == "" {
		slog.Error("secret must not be empty")
		os.Exit(1)
	}

	hash, err := crypto.HashSecret(secret)
	if err != nil {
		slog.Error("hashing secret", "error", err)
		os.Exit(1)
	}

	fmt.Println(hash)
}
