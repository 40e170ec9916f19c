// Package domain defines the key and address models and the service contracts
// shared across the app. It contains plain types and interfaces only.
package domain
