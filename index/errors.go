package index

import "fmt"

// errColorColorlessContradiction is returned verbatim by leaf evaluators
// as the node error string.
var errColorColorlessContradiction = fmt.Errorf("a card cannot be both colored and colorless")

// ColorColorlessContradictionError returns the error for a color value
// that names both "colorless" and a colored letter.
func ColorColorlessContradictionError() error { return errColorColorlessContradiction }

// ErrUnknownField formats the error message for an unrecognized field
// name.
func ErrUnknownField(raw string) error { return fmt.Errorf("unknown field %q", raw) }

// errInvalidRegex is the error message for an unparsable regex pattern;
// unlike the other errors here it carries no offending value.
var errInvalidRegex = fmt.Errorf("invalid regex")

// ErrInvalidRegex returns the error for an unparsable regex pattern.
func ErrInvalidRegex() error { return errInvalidRegex }

// ErrUnknownFormat formats the error message for an unrecognized
// format/legality name.
func ErrUnknownFormat(raw string) error { return fmt.Errorf("unknown format %q", raw) }

// ErrUnknownKeyword formats the error message for an unrecognized `is:`
// keyword.
func ErrUnknownKeyword(raw string) error { return fmt.Errorf("unknown keyword %q", raw) }

// ErrUnsupportedKeyword formats the error message for a reserved but
// unimplemented `is:` keyword.
func ErrUnsupportedKeyword(raw string) error { return fmt.Errorf("unsupported keyword %q", raw) }

// ErrPrintingNotLoaded is the error for a printing-only keyword or field
// used without a PrintingIndex.
func ErrPrintingNotLoaded() error { return fmt.Errorf("printing data not loaded") }

// ErrUnknownSet formats the error message for an unrecognized set code.
func ErrUnknownSet(raw string) error { return fmt.Errorf("unknown set %q", raw) }

// ErrUnknownRarity formats the error message for an unrecognized rarity.
func ErrUnknownRarity(raw string) error { return fmt.Errorf("unknown rarity %q", raw) }

// ErrInvalidPrice formats the error message for an unparsable price.
func ErrInvalidPrice(raw string) error { return fmt.Errorf("invalid price %q", raw) }

// ErrUnknownFrame formats the error message for an unrecognized frame.
func ErrUnknownFrame(raw string) error { return fmt.Errorf("unknown frame %q", raw) }

// ErrInvalidYear formats the error message for an unparsable year.
func ErrInvalidYear(raw string) error { return fmt.Errorf("invalid year %q", raw) }

// ErrInvalidDate formats the error message for an unresolvable date value.
func ErrInvalidDate(raw string) error {
	return fmt.Errorf("invalid date %q (expected YYYY-MM-DD, \"now\", or a set code)", raw)
}

// ErrUnknownPrintingField formats the error message for an unrecognized
// printing-domain field name.
func ErrUnknownPrintingField(raw string) error { return fmt.Errorf("unknown printing field %q", raw) }
