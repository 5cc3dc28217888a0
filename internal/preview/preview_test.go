package preview

import (
	"strings"
	"testing"

	"github.com/muurk/cardform/internal/card"
)

func TestProjectNumber(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Empty shows placeholder", "", PlaceholderNumber},
		{"Spaces only shows placeholder", "   ", PlaceholderNumber},
		{"Grouped input", "4242 4242 4242 4242", "4242 4242 4242 4242"},
		{"Ungrouped input", "4242424242424242", "4242 4242 4242 4242"},
		{"Partial", "12345", "1234 5"},
		{"Exact chunk has no trailing space", "1234", "1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Project(Input{CardNumber: tt.in}).Number
			if got != tt.want {
				t.Errorf("Project(number=%q).Number = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestProjectExpiry(t *testing.T) {
	tests := []struct {
		month, year string
		want        string
	}{
		{"", "", "00/00"},
		{"1", "", "01/00"},
		{"12", "7", "12/07"},
		{"09", "27", "09/27"},
	}

	for _, tt := range tests {
		got := Project(Input{ExpiryMonth: tt.month, ExpiryYear: tt.year}).Expiry
		if got != tt.want {
			t.Errorf("Project(month=%q, year=%q).Expiry = %q, want %q", tt.month, tt.year, got, tt.want)
		}
	}
}

func TestProjectPlaceholders(t *testing.T) {
	m := Project(Input{})
	if m.Holder != PlaceholderHolder {
		t.Errorf("Holder = %q, want %q", m.Holder, PlaceholderHolder)
	}
	if m.CVC != PlaceholderCVC {
		t.Errorf("CVC = %q, want %q", m.CVC, PlaceholderCVC)
	}
	if m.Flipped {
		t.Error("Flipped = true for zero input")
	}

	m = Project(Input{CardHolder: "Jane Appleseed", CVC: "987", Flipped: true})
	// Case is left to the renderer.
	if m.Holder != "Jane Appleseed" {
		t.Errorf("Holder = %q, want raw value", m.Holder)
	}
	if m.CVC != "987" {
		t.Errorf("CVC = %q, want 987", m.CVC)
	}
	if !m.Flipped {
		t.Error("Flipped not passed through")
	}
}

func TestProjectWithCustomPlaceholder(t *testing.T) {
	if got := ProjectWith(Input{}, "A N OTHER").Holder; got != "A N OTHER" {
		t.Errorf("Holder = %q, want custom placeholder", got)
	}
	if got := ProjectWith(Input{}, "").Holder; got != PlaceholderHolder {
		t.Errorf("Holder = %q, want default placeholder", got)
	}
}

func TestFromFields(t *testing.T) {
	fields := card.FieldSet{
		CardNumber:  "4242 4242",
		CardHolder:  "Jane",
		ExpiryMonth: "3",
		ExpiryYear:  "27",
		CVC:         "12",
	}
	in := FromFields(fields, true)
	m := Project(in)

	if m.Number != "4242 4242" || m.Holder != "Jane" || m.Expiry != "03/27" || m.CVC != "12" || !m.Flipped {
		t.Errorf("Project(FromFields(...)) = %+v", m)
	}
}

func TestRenderFaces(t *testing.T) {
	m := Project(Input{CardNumber: "4242424242424242", CardHolder: "jane doe", ExpiryMonth: "9", ExpiryYear: "27", CVC: "321"})

	front := RenderFront(m)
	for _, want := range []string{"4242 4242 4242 4242", "JANE DOE", "09/27"} {
		if !strings.Contains(front, want) {
			t.Errorf("front face missing %q:\n%s", want, front)
		}
	}
	if strings.Contains(front, "321") {
		t.Error("front face shows the CVC")
	}

	back := RenderBack(m)
	if !strings.Contains(back, "321") {
		t.Errorf("back face missing CVC:\n%s", back)
	}

	if Render(m) != front {
		t.Error("Render(unflipped) did not draw the front")
	}
	m.Flipped = true
	if Render(m) != back {
		t.Error("Render(flipped) did not draw the back")
	}
}
