package classify

import (
	"io"
	"log/slog"
	"testing"

	"github.com/veridoc/ocr-review/constants"
)

func testClassifier() *Classifier {
	return NewClassifier(0, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestClassifier_Classify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want constants.DocumentType
	}{
		{
			name: "invoice",
			text: "Invoice Number: INV-2024-001. Amount due: $450. Due date: 12/31/2024. Total amount billed.",
			want: constants.TypeInvoice,
		},
		{
			name: "receipt",
			text: "RECEIPT Store #12. Total paid: $23.50. Cash. Change: $1.50. Thank you for your business.",
			want: constants.TypeReceipt,
		},
		{
			name: "identity document",
			text: "Passport Number: X1234567. Date of birth: 01/02/1990. Identification issued by the state. ID card holder.",
			want: constants.TypeIdentity,
		},
		{
			name: "contract",
			text: "This agreement between party A and party B sets the terms and conditions of the contract. Signature: ____",
			want: constants.TypeContract,
		},
		{
			name: "bank statement",
			text: "Bank statement for account number: 12-345. Beginning balance and ending balance with each transaction, deposit and withdrawal listed. Transaction history attached.",
			want: constants.TypeBankStatement,
		},
		{
			name: "unrelated text",
			text: "lorem ipsum dolor sit amet consectetur adipiscing elit",
			want: constants.TypeUnknown,
		},
	}

	c := testClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.text, true)
			if got.Type != tt.want {
				t.Errorf("Classify() type = %q (score %.3f), want %q", got.Type, got.Score, tt.want)
			}
		})
	}
}

func TestClassifier_Classify_EmptyText(t *testing.T) {
	c := testClassifier()

	got := c.Classify("   ", true)
	if got.Type != constants.TypeUnknown || got.Score != 0 {
		t.Errorf("Classify() = %+v, want unknown with zero score", got)
	}
}

func TestClassifier_Classify_BelowThresholdKeepsScore(t *testing.T) {
	c := testClassifier()

	// a lone keyword is nowhere near the threshold
	got := c.Classify("the invoice was mentioned once in passing", false)
	if got.Type != constants.TypeUnknown {
		t.Errorf("type = %q, want unknown", got.Type)
	}
	if got.Score <= 0 {
		t.Error("score should report the best near miss, got 0")
	}
	if got.Score >= DefaultThreshold {
		t.Errorf("score = %.3f, expected below threshold %v", got.Score, DefaultThreshold)
	}
}

func TestClassifier_Classify_RepeatedKeywordBonus(t *testing.T) {
	c := testClassifier()

	once := c.Classify("Invoice Number: INV-1. Amount due: $10. Due date: 1/1/2024.", false)
	twice := c.Classify("Invoice Number: INV-1. The invoice total: see invoice page. Amount due: $10. Due date: 1/1/2024.", false)

	if once.Type != constants.TypeInvoice || twice.Type != constants.TypeInvoice {
		t.Fatalf("types = %q, %q, want invoice for both", once.Type, twice.Type)
	}
	if twice.Score <= once.Score {
		t.Errorf("repeated keyword score %.3f not above single mention %.3f", twice.Score, once.Score)
	}
}

func TestClassifier_Classify_LayoutBonus(t *testing.T) {
	c := testClassifier()
	text := "Invoice Number: INV-1. Amount due: $10. Due date: 1/1/2024."

	without := c.Classify(text, false)
	with := c.Classify(text, true)

	if with.Score <= without.Score {
		t.Errorf("layout-backed score %.3f not above %.3f", with.Score, without.Score)
	}
}

func TestClassifier_Classify_ScoreCapped(t *testing.T) {
	c := testClassifier()

	// every keyword, every pattern, repeated mentions, layout present
	text := "Invoice invoice invoice invoice invoice invoice invoice number: INV-9. Bill. Amount due: $99." +
		" Total amount. Due date: 12/12/2024. Invoice Number: A1."
	got := c.Classify(text, true)

	if got.Score > 1.0 {
		t.Errorf("score = %.3f, must be capped at 1.0", got.Score)
	}
}

func TestClassifier_Classify_CustomThreshold(t *testing.T) {
	strict := NewClassifier(0.99, slog.New(slog.NewTextHandler(io.Discard, nil)))

	got := strict.Classify("Invoice Number: INV-1. Amount due: $10. Due date: 1/1/2024.", false)
	if got.Type != constants.TypeUnknown {
		t.Errorf("type = %q, want unknown under a strict threshold", got.Type)
	}
}
