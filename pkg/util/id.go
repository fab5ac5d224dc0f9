package util

import gonanoid "github.com/matoous/go-nanoid/v2"

const idCharset = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewID returns a new random primary key for database records
func NewID() (string, error) {
	return gonanoid.Generate(idCharset, 24)
}
