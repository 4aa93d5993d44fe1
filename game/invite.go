package game

import "math/rand"

const inviteCodeChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// InviteCodeLength is the fixed length of room invite codes.
const InviteCodeLength = 6

// NewInviteCode returns a random 6-character uppercase alphanumeric code.
// Uniqueness is enforced by the store, which retries on collision.
func NewInviteCode() string {
	b := make([]byte, InviteCodeLength)
	for i := range b {
		b[i] = inviteCodeChars[rand.Intn(len(inviteCodeChars))]
	}
	return string(b)
}
