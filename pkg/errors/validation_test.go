package errors

import (
	"testing"
)

func TestValidateSource(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative path", "boxoffice_top50_roi.csv", false},
		{"absolute path", "/data/films.csv", false},
		{"stdin", "-", false},
		{"https", "https://example.com/films.csv", false},
		{"http", "http://localhost:8080/films.csv", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 3000)), true},
		{"null byte", "films\x00.csv", true},
		{"newline", "films\n.csv", true},
		{"ftp scheme", "ftp://example.com/films.csv", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSource(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSource(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "orbit.svg", false},
		{"nested", "out/orbit.png", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 600)), true},
		{"control char", "orbit\x01.svg", true},
		{"directory", "out/", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidateOutputPath(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidPath)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"https://example.com", false},
		{"http://example.com", false},
		{"", true},
		{"file:///etc/passwd", true},
		{"example.com", true},
	}

	for _, tt := range tests {
		if err := ValidateURL(tt.input); (err != nil) != tt.wantErr {
			t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}
