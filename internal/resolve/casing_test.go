package resolve

import "testing"

func TestPreserveCase(t *testing.T) {
	tests := []struct {
		name      string
		original  string
		corrected string
		want      string
	}{
		{name: "all upper", original: "RECIEVED", corrected: "Received", want: "RECEIVED"},
		{name: "all lower", original: "recieved", corrected: "Received", want: "received"},
		{name: "title case", original: "Recieved", corrected: "received", want: "Received"},
		{name: "title with single char correction", original: "Ab", corrected: "x", want: "X"},
		{name: "mixed case kept verbatim", original: "ReCieVed", corrected: "Received", want: "Received"},
		{name: "digits kept verbatim", original: "1234", corrected: "12345", want: "12345"},
		{name: "upper with digits", original: "INV01CE", corrected: "Invoice", want: "INVOICE"},
		{name: "lower with punctuation", original: "recieved.", corrected: "Received.", want: "received."},
		{name: "empty original", original: "", corrected: "Received", want: "Received"},
		{name: "empty corrected", original: "RECIEVED", corrected: "", want: ""},
		{name: "single upper letter", original: "A", corrected: "bcd", want: "BCD"},
		{name: "unicode upper", original: "MÜNCHEN", corrected: "münchen", want: "MÜNCHEN"},
		{name: "unicode title", original: "Münch3n", corrected: "münchen", want: "München"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PreserveCase(tt.original, tt.corrected); got != tt.want {
				t.Errorf("PreserveCase(%q, %q) = %q, want %q", tt.original, tt.corrected, got, tt.want)
			}
		})
	}
}
