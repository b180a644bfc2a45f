// Package domain defines the engagement events recorded from tracking links.
package domain

// Kind is the type of engagement event.
type Kind string

const (
	KindOpen  Kind = "open"
	KindClick Kind = "click"
)
