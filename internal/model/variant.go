package model

import (
	"fmt"
	"strings"
)

// Variant selects which flavor of the messenger runs.
type Variant string

const (
	// VariantAdmin ships the admin panel and an empty chat list.
	VariantAdmin Variant = "admin"
	// VariantSocial ships sample chats, stories and call buttons.
	VariantSocial Variant = "social"
)

// ParseVariant parses a variant name case-insensitively.
func ParseVariant(s string) (Variant, error) {
	switch Variant(strings.ToLower(strings.TrimSpace(s))) {
	case VariantAdmin:
		return VariantAdmin, nil
	case VariantSocial:
		return VariantSocial, nil
	}
	return "", fmt.Errorf("unknown variant %q (want admin or social)", s)
}
