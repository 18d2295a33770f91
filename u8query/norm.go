package u8query

import (
	"errors"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrUnknownForm indicates a normalization form outside of NFC/NFD/NFKC/NFKD.
var ErrUnknownForm = errors.New("u8query: unknown normalization form")

// Form selects one of the four Unicode normalization forms.
type Form int

const (
	NFC Form = iota
	NFD
	NFKC
	NFKD
)

// String returns the conventional name of the form.
func (f Form) String() string {
	switch f {
	case NFC:
		return "NFC"
	case NFD:
		return "NFD"
	case NFKC:
		return "NFKC"
	case NFKD:
		return "NFKD"
	default:
		return "UNKNOWN"
	}
}

// ParseForm maps a form name (case-insensitive) onto a Form.
func ParseForm(s string) (Form, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NFC":
		return NFC, nil
	case "NFD":
		return NFD, nil
	case "NFKC":
		return NFKC, nil
	case "NFKD":
		return NFKD, nil
	}
	return 0, ErrUnknownForm
}

func (f Form) normalizer() (norm.Form, error) {
	switch f {
	case NFC:
		return norm.NFC, nil
	case NFD:
		return norm.NFD, nil
	case NFKC:
		return norm.NFKC, nil
	case NFKD:
		return norm.NFKD, nil
	}
	return norm.NFC, ErrUnknownForm
}

// Normalize brings s into normalization form f. The input must be valid
// UTF-8; normalization never changes the meaning of the text, only its
// code-point representation.
func Normalize(f Form, s string) (string, error) {
	n, err := f.normalizer()
	if err != nil {
		return "", err
	}
	return n.String(s), nil
}

// EquivalentNFC reports whether a and b are canonically equivalent, i.e.
// have the same NFC form. A composed "é" and "e" + combining acute decode
// to different code-point sequences but are equivalent under this test.
func EquivalentNFC(a, b string) bool {
	return norm.NFC.String(a) == norm.NFC.String(b)
}
