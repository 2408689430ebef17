package service

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Classic White Tee", "classic-white-tee"},
		{"  Summer   Dress  ", "summer-dress"},
		{"Coat (Winter Edition)!", "coat-winter-edition"},
		{"50% Off -- Hoodie", "50-off-hoodie"},
		{"---", ""},
		{"Déjà Vu", "d-j-vu"},
		{"already-a-slug", "already-a-slug"},
	}
	for _, tc := range cases {
		if got := Slugify(tc.name); got != tc.want {
			t.Fatalf("Slugify(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestIsValidSlug(t *testing.T) {
	valid := []string{"tee", "classic-white-tee", "50-off"}
	for _, s := range valid {
		if !IsValidSlug(s) {
			t.Fatalf("expected %q to be a valid slug", s)
		}
	}
	invalid := []string{"", "White Tee", "tee!", "Tee", "tee_shirt"}
	for _, s := range invalid {
		if IsValidSlug(s) {
			t.Fatalf("expected %q to be rejected", s)
		}
	}
}
