package server

import "testing"

func TestAddr(t *testing.T) {
	tests := []struct {
		port string
		want string
	}{
		{"", ":8080"},
		{"9090", ":9090"},
		{":7070", ":7070"},
	}
	for _, tt := range tests {
		if got := Addr(tt.port); got != tt.want {
			t.Fatalf("Addr(%q) = %q, want %q", tt.port, got, tt.want)
		}
	}
}
