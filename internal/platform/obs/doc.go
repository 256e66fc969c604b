// Package obs holds small observability helpers shared by the tool handlers.
package obs
