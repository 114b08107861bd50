package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/dangerclosesec/mubadara/internal/domain"
	"golang.org/x/crypto/argon2"
)

// argonParams are the argon2id cost settings encoded into every stored hash.
type argonParams struct {
	memory  uint32
	time    uint32
	threads uint8
	keyLen  uint32
	saltLen int
}

var defaultArgonParams = argonParams{
	memory:  64 * 1024,
	time:    1,
	threads: 4,
	keyLen:  32,
	saltLen: 16,
}

// PasswordHasher hashes account passwords with argon2id and checks login
// attempts against stored hashes.
type PasswordHasher struct {
	params argonParams
}

func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{params: defaultArgonParams}
}

// Hash returns the PHC-formatted hash of password:
// $argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>
func (p *PasswordHasher) Hash(password string) (string, error) {
	salt := make([]byte, p.params.saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, p.params.time, p.params.memory, p.params.threads, p.params.keyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		p.params.memory,
		p.params.time,
		p.params.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify returns nil when password matches encoded. A wrong password and an
// unreadable stored hash both yield domain.ErrInvalidCredentials so login
// never tells the two apart.
func (p *PasswordHasher) Verify(password, encoded string) error {
	params, salt, key, err := decodeHash(encoded)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidCredentials, err)
	}

	candidate := argon2.IDKey([]byte(password), salt, params.time, params.memory, params.threads, params.keyLen)
	if subtle.ConstantTimeCompare(key, candidate) != 1 {
		return domain.ErrInvalidCredentials
	}
	return nil
}

// NeedsRehash reports whether encoded was produced with other cost settings
// than the hasher's current ones.
func (p *PasswordHasher) NeedsRehash(encoded string) bool {
	params, _, _, err := decodeHash(encoded)
	if err != nil {
		return true
	}
	return params.memory != p.params.memory || params.time != p.params.time ||
		params.threads != p.params.threads || params.keyLen != p.params.keyLen
}

func decodeHash(encoded string) (argonParams, []byte, []byte, error) {
	var params argonParams

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return params, nil, nil, fmt.Errorf("malformed password hash")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return params, nil, nil, fmt.Errorf("reading hash version: %w", err)
	}
	if version != argon2.Version {
		return params, nil, nil, fmt.Errorf("unsupported argon2 version %d", version)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.memory, &params.time, &params.threads); err != nil {
		return params, nil, nil, fmt.Errorf("reading hash parameters: %w", err)
	}
	if params.memory == 0 || params.time == 0 || params.threads == 0 {
		return params, nil, nil, fmt.Errorf("zero cost parameter in hash")
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return params, nil, nil, fmt.Errorf("decoding salt: %w", err)
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return params, nil, nil, fmt.Errorf("decoding key: %w", err)
	}
	if len(key) == 0 {
		return params, nil, nil, fmt.Errorf("empty key in hash")
	}

	params.saltLen = len(salt)
	params.keyLen = uint32(len(key))
	return params, salt, key, nil
}
