// Package theme turns catalog records into Pidgin emoticon theme files.
package theme

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
)

var (
	// ErrDecode reports a unified token that is not hex or not a Unicode scalar value.
	ErrDecode = errors.New("unified decode error")
	// ErrIO reports a theme file that could not be written.
	ErrIO = errors.New("theme write error")
)

const tokenSeparator = "-"

// DecodeUnified converts a hyphen-joined hex codepoint sequence such as
// "1F468-1F3FB-200D-2695-FE0F" into the characters it names, in order.
func DecodeUnified(unified string) (string, error) {
	tokens := strings.Split(unified, tokenSeparator)

	var sb strings.Builder
	sb.Grow(len(tokens) * utf8.UTFMax)
	for i, tok := range tokens {
		r, err := decodeToken(tok)
		if err != nil {
			return "", fmt.Errorf("%w: %q token %d: %w", ErrDecode, unified, i, err)
		}
		log.Debug().Str("token", tok).Str("unified", unified).Msg("Decoded codepoint")
		sb.WriteRune(r)
	}
	return sb.String(), nil
}

func decodeToken(tok string) (rune, error) {
	if tok == "" {
		return 0, errors.New("empty token")
	}
	v, err := strconv.ParseUint(tok, 16, 32)
	if err != nil {
		return 0, err
	}
	r := rune(v)
	if v > utf8.MaxRune || !utf8.ValidRune(r) {
		return 0, fmt.Errorf("U+%X is not a Unicode scalar value", v)
	}
	return r, nil
}
