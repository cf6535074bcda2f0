// Package textutil provides small text helpers for deriving filesystem-safe
// output names from meet data.
package textutil
