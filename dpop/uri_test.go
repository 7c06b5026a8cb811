package dpop

import "testing"

func TestNormalizeTargetURI(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://resource.example.com/", "https://resource.example.com/"},
		{"https://resource.example.com", "https://resource.example.com/"},
		{"https://resource.example.com/api/v1?sort=name", "https://resource.example.com/api/v1"},
		{"https://resource.example.com/entity#fragment", "https://resource.example.com/entity"},
		{"https://username@resource.example.com:8443/", "https://username@resource.example.com:8443/"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := NormalizeTargetURI(tt.in)
			if !ok {
				t.Fatalf("expected %q to normalize, got ok=false", tt.in)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeTargetURI_idempotent(t *testing.T) {
	in := "https://resource.example.com/api/v1?sort=name#frag"

	once, ok := NormalizeTargetURI(in)
	if !ok {
		t.Fatal("expected normalization to succeed")
	}

	twice, ok := NormalizeTargetURI(once)
	if !ok {
		t.Fatal("expected re-normalization to succeed")
	}

	if once != twice {
		t.Errorf("normalization is not idempotent: %q != %q", once, twice)
	}
}

func TestNormalizeTargetURI_invalid(t *testing.T) {
	tests := []string{"", "not a uri", "/relative/only"}

	for _, in := range tests {
		if _, ok := NormalizeTargetURI(in); ok {
			t.Errorf("expected %q to be rejected", in)
		}
	}
}

func TestHashAccessToken(t *testing.T) {
	token := "Kz~8mXK1EalYznwH-LC-1fBAo4doF1XuNe-kOCAy88FvrXjJUxrlQOf2ySqu9N85pyzLd7pl_6W_fyw"
	got := HashAccessToken(token)
	want := "q3XtF6W6rJdDSaYN1rJYnROnTKAas3NRIolc9Zz97Mc"
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
