package constants

import "strings"

// DocumentType is the canonical classification of an uploaded document.
type DocumentType string

const (
	TypeInvoice       DocumentType = "invoice"
	TypeReceipt       DocumentType = "receipt"
	TypeIdentity      DocumentType = "identity_document"
	TypeContract      DocumentType = "contract"
	TypeBankStatement DocumentType = "bank_statement"
	TypeUnknown       DocumentType = "unknown"
)

// ScopeGlobal marks lexicon entries that apply to every document type.
const ScopeGlobal = "global"

var allDocumentTypes = []DocumentType{
	TypeInvoice,
	TypeReceipt,
	TypeIdentity,
	TypeContract,
	TypeBankStatement,
}

// DocumentTypes returns the classifiable types (excluding "unknown").
func DocumentTypes() []DocumentType {
	out := make([]DocumentType, len(allDocumentTypes))
	copy(out, allDocumentTypes)
	return out
}

// CanonicalType normalizes free-form input to a known DocumentType.
// Unrecognized input maps to TypeUnknown with ok=false.
func CanonicalType(input string) (DocumentType, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	for _, t := range allDocumentTypes {
		if normalized == string(t) {
			return t, true
		}
	}
	return TypeUnknown, false
}

// ScopeFor maps a document type to the lexicon scope corrections on it feed.
// Unknown types learn into the global scope.
func ScopeFor(t DocumentType) string {
	if t == "" || t == TypeUnknown {
		return ScopeGlobal
	}
	return string(t)
}
