package scheme

import "testing"

func TestTextColorFor(t *testing.T) {
	tests := []struct {
		name       string
		background string
		want       string
	}{
		{name: "very light sidebar", background: "#F6F6F6", want: "#333333"},
		{name: "light sidebar", background: "#D0D8E8", want: "#000000"},
		{name: "mid sidebar", background: "#669BBC", want: "#FFFFFF"},
		{name: "very dark sidebar", background: "#003049", want: "#F5F5F5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TextColorFor(tt.background)
			if err != nil {
				t.Fatalf("TextColorFor(%s) error = %v", tt.background, err)
			}
			if got != tt.want {
				t.Errorf("TextColorFor(%s) = %s, want %s", tt.background, got, tt.want)
			}
		})
	}
}

func TestEnsureContrast(t *testing.T) {
	tests := []struct {
		name       string
		background string
		candidate  string
		want       string
	}{
		{name: "legible candidate kept", background: "#669BBC", candidate: "#003049", want: "#003049"},
		{name: "illegible candidate replaced", background: "#F6F6F6", candidate: "#FFFFFF", want: "#333333"},
		{name: "black on white kept", background: "#FFFFFF", candidate: "#000000", want: "#000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EnsureContrast(tt.background, tt.candidate)
			if err != nil {
				t.Fatalf("EnsureContrast(%s, %s) error = %v", tt.background, tt.candidate, err)
			}
			if got != tt.want {
				t.Errorf("EnsureContrast(%s, %s) = %s, want %s", tt.background, tt.candidate, got, tt.want)
			}
		})
	}

	if _, err := EnsureContrast("#F6F6F6", "not-a-colour"); err == nil {
		t.Error("EnsureContrast() accepted an invalid candidate")
	}
}

func TestHeadingIconColorFor(t *testing.T) {
	// The default theme does not clear AA against the default sidebar, so
	// the sidebar's text colour wins.
	got, err := HeadingIconColorFor("#0395DE", "#F6F6F6")
	if err != nil {
		t.Fatalf("HeadingIconColorFor() error = %v", err)
	}
	if got != "#333333" {
		t.Errorf("HeadingIconColorFor(#0395DE, #F6F6F6) = %s, want #333333", got)
	}

	// A dark theme on a mid sidebar clears AA and is kept.
	got, err = HeadingIconColorFor("#003049", "#669BBC")
	if err != nil {
		t.Fatalf("HeadingIconColorFor() error = %v", err)
	}
	if got != "#003049" {
		t.Errorf("HeadingIconColorFor(#003049, #669BBC) = %s, want #003049", got)
	}
}

func TestSidebarBoldColorFor(t *testing.T) {
	tests := []struct {
		name        string
		sidebarText string
		want        string
	}{
		{name: "dark text darkened further", sidebarText: "#333333", want: "#242424"},
		{name: "black stays black", sidebarText: "#000000", want: "#000000"},
		{name: "light text reused", sidebarText: "#FFFFFF", want: "#FFFFFF"},
		{name: "near-white reused", sidebarText: "#F5F5F5", want: "#F5F5F5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SidebarBoldColorFor(tt.sidebarText)
			if err != nil {
				t.Fatalf("SidebarBoldColorFor(%s) error = %v", tt.sidebarText, err)
			}
			if got != tt.want {
				t.Errorf("SidebarBoldColorFor(%s) = %s, want %s", tt.sidebarText, got, tt.want)
			}
		})
	}
}

func TestBoldColorFor(t *testing.T) {
	// The default frame must reproduce the default bold colour.
	got, err := BoldColorFor("#757575")
	if err != nil {
		t.Fatalf("BoldColorFor() error = %v", err)
	}
	if got != "#585858" {
		t.Errorf("BoldColorFor(#757575) = %s, want #585858", got)
	}
}
