package cli

import (
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func TestLoadYAML(t *testing.T) {
	r, err := loadYAML(strings.NewReader("tag: NET\nbaud_rate: 115200\nbytewise: false\n"))
	if err != nil {
		t.Fatalf("loadYAML() error = %v", err)
	}

	tests := []struct {
		flag string
		want any
	}{
		{"tag", "NET"},
		{"baud-rate", "115200"},
		{"bytewise", false},
		{"missing", nil},
	}

	for _, tt := range tests {
		got, err := r.Resolve(nil, nil, &kong.Flag{Value: &kong.Value{Name: tt.flag}})
		if err != nil {
			t.Fatalf("Resolve(%s) error = %v", tt.flag, err)
		}
		if got != tt.want {
			t.Errorf("Resolve(%s) = %#v, want %#v", tt.flag, got, tt.want)
		}
	}
}

func TestLoadYAML_Invalid(t *testing.T) {
	if _, err := loadYAML(strings.NewReader("tag: [unterminated")); err == nil {
		t.Error("loadYAML() accepted malformed YAML")
	}
}

func TestLoadYAML_Empty(t *testing.T) {
	r, err := loadYAML(strings.NewReader(""))
	if err != nil {
		t.Fatalf("loadYAML() error = %v", err)
	}
	if err := r.Validate(nil); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}
