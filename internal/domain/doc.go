// Package domain defines core data models and contracts shared across keyvault.
// It contains plain types (key identities, signatures) and interfaces only.
package domain
