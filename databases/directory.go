package databases

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"github.com/cybercell/cybercrime-portal-api/models"
)

// OfficerDirectory is the fixed login directory. Every entry shares the one
// configured portal password; there is no lockout, rate limit, or expiry.
type OfficerDirectory interface {
	Authenticate(ctx context.Context, email, password string) (*models.Identity, error)
	FindByEmail(ctx context.Context, email string) (*models.Identity, error)
	Count(ctx context.Context) int
}

type officerDirectory struct {
	entries    []models.Identity
	secretHash []byte
}

// NewOfficerDirectory seeds the directory and hashes the shared portal
// password once at startup
func NewOfficerDirectory(sharedPassword string) (OfficerDirectory, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(sharedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &officerDirectory{
		entries:    seedDirectory(),
		secretHash: hash,
	}, nil
}

// Authenticate matches the email against the directory and the password
// against the shared secret. Any mismatch yields the same
// ErrInvalidCredentials so callers cannot tell which field was wrong.
func (d *officerDirectory) Authenticate(ctx context.Context, email, password string) (*models.Identity, error) {
	emailHash := sha256.Sum256([]byte(email))

	var match *models.Identity
	for i := range d.entries {
		entryHash := sha256.Sum256([]byte(d.entries[i].Email))
		if subtle.ConstantTimeCompare(emailHash[:], entryHash[:]) == 1 {
			match = &d.entries[i]
		}
	}
	if match == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(d.secretHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	identity := *match
	return &identity, nil
}

func (d *officerDirectory) FindByEmail(ctx context.Context, email string) (*models.Identity, error) {
	for i := range d.entries {
		if d.entries[i].Email == email {
			identity := d.entries[i]
			return &identity, nil
		}
	}
	return nil, ErrNotFound
}

func (d *officerDirectory) Count(ctx context.Context) int {
	return len(d.entries)
}
