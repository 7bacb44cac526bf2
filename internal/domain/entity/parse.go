package entity

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	MaxBusinessNameLength = 100
	MaxItemNameLength     = 50
	MaxCategoryNameLength = 50
	MaxSlugLength         = 50
	MinWhatsAppDigits     = 10
	MaxWhatsAppDigits     = 15
)

// MaxAmount is the largest value a numeric(12,2) money column holds.
var MaxAmount = decimal.RequireFromString("9999999999.99")

// reservedSlugs collide with static routes under /api/businesses.
var reservedSlugs = map[string]struct{}{
	"me": {},
}

var (
	slugPattern       = regexp.MustCompile(`^[a-z0-9-]+$`)
	slugStripPattern  = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpacePattern  = regexp.MustCompile(`\s+`)
	slugHyphenPattern = regexp.MustCompile(`-+`)
	digitsPattern     = regexp.MustCompile(`^[0-9]+$`)
)

// ParseBusinessName trims the name and enforces 1..100 characters.
func ParseBusinessName(raw string) (string, error) {
	return parseName("name", raw, MaxBusinessNameLength)
}

// ParseItemName validates a product or service name.
func ParseItemName(raw string) (string, error) {
	return parseName("name", raw, MaxItemNameLength)
}

// ParseCategoryName validates a category name.
func ParseCategoryName(raw string) (string, error) {
	return parseName("name", raw, MaxCategoryNameLength)
}

func parseName(field, raw string, maxLen int) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", newFieldError(field, "is required")
	}
	if utf8.RuneCountInString(name) > maxLen {
		return "", newFieldError(field, "must be at most "+strconv.Itoa(maxLen)+" characters")
	}

	return name, nil
}

// ParseSlug validates a caller-supplied storefront slug.
func ParseSlug(raw string) (string, error) {
	slug := strings.TrimSpace(raw)
	switch {
	case slug == "":
		return "", newFieldError("slug", "is required")
	case len(slug) > MaxSlugLength:
		return "", newFieldError("slug", "must be at most "+strconv.Itoa(MaxSlugLength)+" characters")
	case !slugPattern.MatchString(slug):
		return "", newFieldError("slug", "may only contain lowercase letters, digits and hyphens")
	}

	if _, reserved := reservedSlugs[slug]; reserved {
		return "", newFieldError("slug", "is reserved")
	}

	return slug, nil
}

// SlugFromName derives a slug from a business name: lowercase, punctuation
// dropped, whitespace runs turned into single hyphens, at most 50 characters.
func SlugFromName(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugStripPattern.ReplaceAllString(slug, "")
	slug = slugSpacePattern.ReplaceAllString(slug, "-")
	slug = slugHyphenPattern.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")

	if len(slug) > MaxSlugLength {
		slug = strings.TrimRight(slug[:MaxSlugLength], "-")
	}

	return slug
}

// ParseWhatsAppNumber strips spaces, dashes and a leading plus, then requires
// 10 to 15 digits.
func ParseWhatsAppNumber(raw string) (string, error) {
	number := strings.TrimSpace(raw)
	number = strings.TrimPrefix(number, "+")
	number = strings.NewReplacer(" ", "", "-", "").Replace(number)

	switch {
	case number == "":
		return "", newFieldError("whatsappNumber", "is required")
	case !digitsPattern.MatchString(number):
		return "", newFieldError("whatsappNumber", "must contain digits only")
	case len(number) < MinWhatsAppDigits || len(number) > MaxWhatsAppDigits:
		return "", newFieldError("whatsappNumber", "must be between 10 and 15 digits")
	}

	return number, nil
}

// ParsePrice converts a JSON number into a positive amount with two decimal places.
func ParsePrice(field string, value float64) (decimal.Decimal, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return decimal.Zero, newFieldError(field, "must be a number")
	}

	amount := decimal.NewFromFloat(value).Round(2)
	if !amount.IsPositive() {
		return decimal.Zero, newFieldError(field, "must be greater than 0")
	}
	if amount.GreaterThan(MaxAmount) {
		return decimal.Zero, newFieldError(field, "must not exceed "+MaxAmount.StringFixed(2))
	}

	return amount, nil
}

// ParseAmount is the non-negative variant of ParsePrice used for order totals.
func ParseAmount(field string, value float64) (decimal.Decimal, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return decimal.Zero, newFieldError(field, "must be a number")
	}

	amount := decimal.NewFromFloat(value).Round(2)
	if amount.IsNegative() {
		return decimal.Zero, newFieldError(field, "must not be negative")
	}
	if amount.GreaterThan(MaxAmount) {
		return decimal.Zero, newFieldError(field, "must not exceed "+MaxAmount.StringFixed(2))
	}

	return amount, nil
}

// OptionalText trims s and maps blank values to nil.
func OptionalText(s *string) *string {
	if s == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
