// Package mock provides a test double for the embedding index.
package mock
