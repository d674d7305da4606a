package config

import (
	"fmt"
	"strings"
)

// SeedUser is an account created on first start when the user store is empty.
//
// Entries are written as "username:name:secret" or "username:name:secret:email".
// The secret is either a plaintext password or an existing bcrypt/argon2id
// hash; hashes are recognised by their "$" prefix.
type SeedUser struct {
	Username string
	Name     string
	Email    string
	Password string
	Hash     string
}

func ParseSeedUsers(entries []string) ([]SeedUser, error) {
	seeds := make([]SeedUser, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for i, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		seed, err := parseSeedUser(entry)
		if err != nil {
			return nil, fmt.Errorf("seed user #%d: %w", i, err)
		}
		if _, ok := seen[seed.Username]; ok {
			return nil, fmt.Errorf("seed user #%d: duplicate username %q", i, seed.Username)
		}
		seen[seed.Username] = struct{}{}
		seeds = append(seeds, seed)
	}
	return seeds, nil
}

func parseSeedUser(entry string) (SeedUser, error) {
	// Hashes contain "$" separated segments but never ":", so a plain split works.
	parts := strings.Split(entry, ":")
	if len(parts) != 3 && len(parts) != 4 {
		return SeedUser{}, fmt.Errorf("expected username:name:secret[:email], got %d fields", len(parts))
	}

	seed := SeedUser{
		Username: strings.TrimSpace(parts[0]),
		Name:     strings.TrimSpace(parts[1]),
	}
	if seed.Username == "" {
		return SeedUser{}, fmt.Errorf("empty username")
	}
	if seed.Name == "" {
		seed.Name = seed.Username
	}

	secret := parts[2]
	if secret == "" {
		return SeedUser{}, fmt.Errorf("empty secret for %q", seed.Username)
	}
	if strings.HasPrefix(secret, "$") {
		seed.Hash = secret
	} else {
		seed.Password = secret
	}

	if len(parts) == 4 {
		seed.Email = strings.TrimSpace(parts[3])
	}
	return seed, nil
}
