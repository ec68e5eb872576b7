package slug

import "testing"

func TestMake(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Wireless Mouse", "wireless-mouse"},
		{"  Gaming   Laptop  ", "gaming-laptop"},
		{"USB-C Hub (7-in-1)", "usb-c-hub-7-in-1"},
		{"Déjà Vu", "d-j-vu"},
		{"---", ""},
		{"", ""},
		{"Already-Slugged", "already-slugged"},
		{"100% Cotton T-Shirt", "100-cotton-t-shirt"},
	}
	for _, tc := range cases {
		if got := Make(tc.in); got != tc.want {
			t.Errorf("Make(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
