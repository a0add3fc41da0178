// Package util holds small helpers shared by config and middleware.
package util
