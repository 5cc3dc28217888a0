package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/muurk/cardform/internal/card"
)

func TestMaskCardNumber(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"4242", "4242"},
		{"4242 4242 4242 4242", "•••• •••• •••• 4242"},
		{"4242 42", "•••• 42"},
	}
	for _, tt := range tests {
		if got := MaskCardNumber(tt.in); got != tt.want {
			t.Errorf("MaskCardNumber(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFieldChecklist(t *testing.T) {
	errs := card.ErrorSet{card.CVC: card.MsgBlank}
	c := NewFieldChecklist("Validating", errs)

	if len(c.Checks) != len(card.Fields()) {
		t.Fatalf("got %d checks, want %d", len(c.Checks), len(card.Fields()))
	}
	if c.Passed() != 4 {
		t.Errorf("Passed() = %d, want 4", c.Passed())
	}
	last := c.Checks[len(c.Checks)-1]
	if last.Status != CheckFailed || last.Message != card.MsgBlank {
		t.Errorf("cvc check = %+v", last)
	}

	out := c.Render()
	for _, want := range []string{"Validating", card.CVC.Label(), "(" + card.MsgBlank + ")", "[4/5]"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q", want)
		}
	}
}

func TestChecklistIgnoresOutOfRange(t *testing.T) {
	c := NewChecklist("", []string{"a"})
	c.Pass(0)
	c.Fail(2, "x")
	if c.Checks[0].Status != CheckPending {
		t.Errorf("status = %v, want pending", c.Checks[0].Status)
	}
	if c.Percent() != 0 {
		t.Errorf("Percent() = %v, want 0", c.Percent())
	}
}

func TestResultRender(t *testing.T) {
	ok := NewSuccessResult("Card confirmed.", Param{Key: "Holder", Value: "Jane Doe"}).SetWidth(80).Render()
	if !strings.Contains(ok, "SUCCESS") || !strings.Contains(ok, "Jane Doe") {
		t.Errorf("success box missing content:\n%s", ok)
	}

	fail := NewFailureResult("Card rejected", errors.New("2 errors"), []string{"CVC: Can't be blank"}).SetWidth(80).Render()
	for _, want := range []string{"FAILED", "Error: 2 errors", "Problems:", "CVC: Can't be blank"} {
		if !strings.Contains(fail, want) {
			t.Errorf("failure box missing %q", want)
		}
	}
}

func TestHeaderParamsInOrder(t *testing.T) {
	out := NewHeader("Card Check", "cardform check",
		Param{Key: "Holder", Value: "JANE"},
		Param{Key: "Expiry", Value: "09/27"},
	).SetWidth(80).Render()

	if !strings.Contains(out, "CARD CHECK") {
		t.Error("title not upper-cased")
	}
	if strings.Index(out, "JANE") > strings.Index(out, "09/27") {
		t.Error("params rendered out of order")
	}
}

func TestConfirm(t *testing.T) {
	var out bytes.Buffer
	if !Confirm(strings.NewReader("overwrite\n"), &out, "Overwrite", []string{"x"}, "overwrite") {
		t.Error("Confirm() = false for matching answer")
	}
	out.Reset()
	if Confirm(strings.NewReader("no\n"), &out, "Overwrite", nil, "overwrite") {
		t.Error("Confirm() = true for wrong answer")
	}
	if !strings.Contains(out.String(), "Operation cancelled.") {
		t.Error("missing cancellation notice")
	}
	if Confirm(strings.NewReader(""), &out, "Overwrite", nil, "overwrite") {
		t.Error("Confirm() = true on EOF")
	}
}
