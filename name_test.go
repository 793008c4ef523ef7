package fat12

import (
	"testing"
)

func TestShortName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "name and extension", input: "file.txt", want: "FILE    TXT"},
		{name: "already upper case", input: "FILE.TXT", want: "FILE    TXT"},
		{name: "full length", input: "abcdefgh.ijk", want: "ABCDEFGHIJK"},
		{name: "no extension", input: "readme", want: "README     "},
		{name: "trailing dot", input: "readme.", want: "README     "},
		{name: "digits and symbols", input: "a_1-2~3.$$$", want: "A_1-2~3 $$$"},
		{name: "base too long", input: "abcdefghi.txt", wantErr: true},
		{name: "extension too long", input: "file.text", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "only extension", input: ".txt", wantErr: true},
		{name: "two dots", input: "a.b.c", wantErr: true},
		{name: "space", input: "my file.txt", wantErr: true},
		{name: "forbidden character", input: "a*b.txt", wantErr: true},
		{name: "non ascii", input: "\xE4.txt", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ShortName(tt.input)
			if tt.wantErr {
				checkErrors(t, err, []error{ErrInvalidName}, nil)
				return
			}
			if err != nil {
				t.Fatalf("ShortName() error = %v", err)
			}
			if string(got[:]) != tt.want {
				t.Errorf("ShortName() = %q, want %q", got[:], tt.want)
			}
		})
	}
}

func TestRawName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "padded", input: "FILE    TXT"},
		{name: "lower case is kept", input: "file    txt"},
		{name: "too short", input: "FILE.TXT", wantErr: true},
		{name: "too long", input: "FILE    TXT ", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RawName(tt.input)
			if tt.wantErr {
				checkErrors(t, err, []error{ErrInvalidName}, nil)
				return
			}
			if err != nil {
				t.Fatalf("RawName() error = %v", err)
			}
			if string(got[:]) != tt.input {
				t.Errorf("RawName() = %q, want %q", got[:], tt.input)
			}
		})
	}
}
