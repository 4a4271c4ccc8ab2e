package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// Minter issues cart session identifiers of the form "<uuid>.<sig>".
// The signature lets every cart endpoint reject identifiers the server
// never handed out without keeping any session state.
type Minter struct {
	secret []byte
}

func NewMinter(secret []byte) *Minter {
	return &Minter{secret: secret}
}

func (m *Minter) Mint() string {
	id := uuid.NewString()
	return id + "." + m.sign(id)
}

func (m *Minter) Verify(sessionID string) bool {
	i := strings.LastIndex(sessionID, ".")
	if i <= 0 || i == len(sessionID)-1 {
		return false
	}
	id, sig := sessionID[:i], sessionID[i+1:]
	if _, err := uuid.Parse(id); err != nil {
		return false
	}
	return hmac.Equal([]byte(sig), []byte(m.sign(id)))
}

func (m *Minter) sign(id string) string {
	mac := hmac.New(sha256.New, m.secret)
	mac.Write([]byte(id))
	return hex.EncodeToString(mac.Sum(nil))
}
