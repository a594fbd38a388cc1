package util

import (
	"fmt"
	"math/rand"
	"strings"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// RandomInt generates a random integer between min and max
func RandomInt(min, max int64) int64 {
	return min + rand.Int63n(max-min+1)
}

// RandomFloat generates a random float between min and max
func RandomFloat(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}

// RandomString generates a random string of length n
func RandomString(n int) string {
	var sb strings.Builder
	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[rand.Intn(k)]
		sb.WriteByte(c)
	}

	return sb.String()
}

// RandomPhone generates a random 11-digit phone number
func RandomPhone() string {
	return fmt.Sprintf("1%010d", RandomInt(0, 9999999999))
}

// RandomRole generates a random supported role
func RandomRole() string {
	roles := []string{DonorRole, RecipientRole, VolunteerRole, AdminRole}
	return roles[rand.Intn(len(roles))]
}
