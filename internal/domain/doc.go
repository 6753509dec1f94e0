// Package domain defines the core business entities and their validation
// rules, independent of transport and persistence concerns.
package domain
