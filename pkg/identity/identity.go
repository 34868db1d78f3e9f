package identity

import (
	"math/rand"
	"time"
)

const charSet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Identity is the anonymous record handed out at sign-in. The ID is the only
// thing other users ever see.
type Identity struct {
	ID  string
	Bio string
}

func init() {
	rand.Seed(time.Now().UnixNano())
}

// NewAnonID issues a fresh opaque identifier, 8 lowercase base36 characters.
func NewAnonID() string {
	res := make([]byte, 8)
	for i := range res {
		res[i] = charSet[rand.Intn(len(charSet))]
	}

	return string(res)
}
