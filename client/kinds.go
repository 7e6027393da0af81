package client

import (
	"fmt"
	"sort"
	"strings"
)

// Kind identifies one of the Diffbot extraction APIs.
//
// The kind becomes the last path segment of the endpoint, e.g.
// "http://api.diffbot.com/v2/article".
type Kind string

const (
	// KindArticle extracts clean article text, title, author and media.
	KindArticle Kind = "article"

	// KindFrontpage extracts the list of items on a home or index page.
	// The frontpage endpoint has no field selection.
	KindFrontpage Kind = "frontpage"

	// KindProduct extracts product details from shopping pages.
	KindProduct Kind = "product"

	// KindImage extracts the primary images of a page.
	KindImage Kind = "image"

	// KindAnalyze classifies a page and runs the matching extraction API.
	// Also known as the classifier API.
	KindAnalyze Kind = "analyze"
)

// Capabilities describes which optional request parts an API kind accepts.
type Capabilities struct {
	// Fields reports whether the kind accepts the "fields" selector.
	Fields bool

	// Body reports whether the kind accepts POSTed page content.
	Body bool
}

// kindTable is the fixed set of supported kinds and what each accepts.
var kindTable = map[Kind]Capabilities{
	KindArticle:   {Fields: true, Body: true},
	KindFrontpage: {Fields: false, Body: true},
	KindProduct:   {Fields: true, Body: true},
	KindImage:     {Fields: true, Body: true},
	KindAnalyze:   {Fields: true, Body: true},
}

// Kinds returns every supported kind in lexicographic order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(kindTable))
	for k := range kindTable {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Lookup returns the capabilities of kind, or ErrInvalidKind if kind is
// not one of the supported APIs.
func Lookup(kind Kind) (Capabilities, error) {
	caps, ok := kindTable[kind]
	if !ok {
		return Capabilities{}, fmt.Errorf("%w: must be one of %s, not %q",
			ErrInvalidKind, kindList(), string(kind))
	}
	return caps, nil
}

// ParseKind converts a user supplied API name into a Kind.
//
// Matching is case-insensitive and "classify" is accepted as an alias for
// "analyze".
func ParseKind(name string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(name)))
	if k == "classify" {
		k = KindAnalyze
	}
	if _, err := Lookup(k); err != nil {
		return "", err
	}
	return k, nil
}

func kindList() string {
	kinds := Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return "(" + strings.Join(names, ", ") + ")"
}
