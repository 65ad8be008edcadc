package crypto

import (
	"strings"
	"testing"
)

func TestHashSecret(t *testing.T) {
	hash, err := HashSecret("correct-horse-battery-staple")
	if err != nil {
		t.Fatalf("HashSecret() unexpected error: %v", err)
	}

	// $argon2id$v=19$m=65536,t=3,p=2$<salt>$<hash>
	parts := strings.Split(hash, "$")
	if len(parts) != 6 {
		t.Fatalf("HashSecret() expected 6 parts, got %d: %q", len(parts), hash)
	}
	if parts[1] != "argon2id" {
		t.Errorf("HashSecret() algorithm = %q, want %q", parts[1], "argon2id")
	}
	if parts[3] != "m=65536,t=3,p=2" {
		t.Errorf("HashSecret() params = %q, want %q", parts[3], "m=65536,t=3,p=2")
	}
}

func TestVerifySecret(t *testing.T) {
	hash, err := HashSecret("admin-secret")
	if err != nil {
		t.Fatalf("HashSecret() unexpected error: %v", err)
	}

	tests := []struct {
		name   string
		secret string
		want   bool
	}{
		{"correct secret", "admin-secret", true},
		{"wrong secret", "admin-secreT", false},
		{"empty secret", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := VerifySecret(tt.secret, hash)
			if err != nil {
				t.Fatalf("VerifySecret() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("VerifySecret() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHashSecretSaltDiffers(t *testing.T) {
	h1, err := HashSecret("same")
	if err != nil {
		t.Fatalf("HashSecret() unexpected error: %v", err)
	}
	h2, err := HashSecret("same")
	if err != nil {
		t.Fatalf("HashSecret() unexpected error: %v", err)
	}
	if h1 == h2 {
		t.Error("HashSecret() produced identical hashes for the same secret")
	}
}

func TestVerifySecretInvalidHash(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
		wantErr error
	}{
		{"garbage", "invalid-hash-format", ErrInvalidHashFormat},
		{"wrong algorithm", "$argon2i$v=19$m=65536,t=3,p=2$c2FsdA$a2V5", ErrInvalidHashFormat},
		{"wrong version", "$argon2id$v=16$m=65536,t=3,p=2$c2FsdA$a2V5", ErrIncompatibleVersion},
		{"bad params", "$argon2id$v=19$m=x$c2FsdA$a2V5", ErrInvalidHashFormat},
		{"bad salt", "$argon2id$v=19$m=65536,t=3,p=2$!!$a2V5", ErrInvalidHashFormat},
		{"empty key", "$argon2id$v=19$m=65536,t=3,p=2$c2FsdA$", ErrInvalidHashFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := VerifySecret("secret", tt.encoded)
			if err != tt.wantErr {
				t.Errorf("VerifySecret() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
