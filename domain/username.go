package domain

import (
	"fmt"
	"math/rand"
)

// The fixed word sets behind generated display names. Cosmetic only:
// collisions and low entropy are acceptable, usernames carry no identity.
var (
	usernameAdjectives = []string{"Happy", "Sunny", "Clever", "Swift", "Brave", "Calm", "Wise", "Kind"}
	usernameNouns      = []string{"Panda", "Tiger", "Eagle", "Dolphin", "Fox", "Wolf", "Bear", "Owl"}
)

// RandomUsername builds a default display name such as "SwiftOwl42".
func RandomUsername() string {
	adjective := usernameAdjectives[rand.Intn(len(usernameAdjectives))]
	noun := usernameNouns[rand.Intn(len(usernameNouns))]
	return fmt.Sprintf("%s%s%d", adjective, noun, rand.Intn(100))
}
