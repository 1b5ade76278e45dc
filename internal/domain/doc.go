// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/todo, domain/user).
// This root package holds sentinel errors, validation types, the request
// lifecycle Phase and the Failure payload carried by error actions.
package domain
