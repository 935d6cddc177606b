package ui

import "fmt"

// Hint formats the line shown when the player can use something in reach.
func Hint(key, verb, target string) string {
	if target == "" {
		return fmt.Sprintf("[%s] %s", key, verb)
	}
	return fmt.Sprintf("[%s] %s %s", key, verb, target)
}
