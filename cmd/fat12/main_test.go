package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/aligator/fat12"
	"github.com/aligator/fat12/internal/testimage"
	"github.com/spf13/afero"
)

func testFs(t *testing.T) afero.Fs {
	t.Helper()
	modified := time.Date(2021, 3, 14, 15, 9, 26, 0, time.UTC)

	g := testimage.Floppy144()
	image := testimage.Build(g,
		testimage.Entry{Name: "TESTDISK   ", Attributes: fat12.AttrVolumeID},
		testimage.Entry{Name: "FILE    TXT", Attributes: fat12.AttrArchive, FirstCluster: 2, Size: 4096, Modified: modified},
		testimage.Entry{Name: "\xE5LD     TXT", Size: 12},
		testimage.Entry{Name: "DOCS       ", Attributes: fat12.AttrDirectory, FirstCluster: 3},
	)

	fs := afero.NewMemMapFs()
	files := map[string][]byte{
		"floppy.img":    image,
		"boot.img":      image[:32],
		"fat.img":       image[:1024],
		"root.img":      image[:g.RootDirectoryOffset()+512],
		"not-a-fat.img": bytes.Repeat([]byte{0}, 4096),
	}
	for name, data := range files {
		if err := afero.WriteFile(fs, name, data, 0644); err != nil {
			t.Fatal(err)
		}
	}
	return fs
}

func TestRun(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantOut    []string
		wantNotOut []string
		wantErr    string
	}{
		{
			name:     "find by dotted name",
			args:     []string{"find", "floppy.img", "file.txt"},
			wantCode: exitOK,
			wantOut:  []string{"FILE.TXT", "4096", "2021-03-14 15:09:26", "-----A"},
		},
		{
			name:     "find by raw name",
			args:     []string{"find", "--raw", "floppy.img", "FILE    TXT"},
			wantCode: exitOK,
			wantOut:  []string{"FILE.TXT", "4096"},
		},
		{
			name:     "find missing file",
			args:     []string{"find", "floppy.img", "nofile.txt"},
			wantCode: exitNotFound,
			wantErr:  "could not find file nofile.txt",
		},
		{
			name:     "find deleted file with standard lookup",
			args:     []string{"find", "--standard", "--raw", "floppy.img", "\xE5LD     TXT"},
			wantCode: exitNotFound,
		},
		{
			name:     "find deleted file raw",
			args:     []string{"find", "--raw", "floppy.img", "\xE5LD     TXT"},
			wantCode: exitOK,
			wantOut:  []string{"12"},
		},
		{
			name:     "invalid name",
			args:     []string{"find", "floppy.img", "much-too-long.txt"},
			wantCode: exitUsage,
		},
		{
			name:     "missing arguments",
			args:     []string{"find", "floppy.img"},
			wantCode: exitUsage,
		},
		{
			name:     "missing image",
			args:     []string{"find", "nothing.img", "file.txt"},
			wantCode: exitUsage,
			wantErr:  fat12.ErrOpenImage.Error(),
		},
		{
			name:     "truncated boot sector",
			args:     []string{"find", "boot.img", "file.txt"},
			wantCode: exitBootSector,
		},
		{
			name:     "invalid geometry",
			args:     []string{"info", "not-a-fat.img"},
			wantCode: exitBootSector,
		},
		{
			name:     "truncated FAT",
			args:     []string{"find", "fat.img", "file.txt"},
			wantCode: exitFAT,
		},
		{
			name:     "truncated root directory",
			args:     []string{"ls", "root.img"},
			wantCode: exitRootDirectory,
		},
		{
			name:       "list",
			args:       []string{"ls", "floppy.img"},
			wantCode:   exitOK,
			wantOut:    []string{"\"TESTDISK   \"", "\"FILE    TXT\"", "\"DOCS       \"", "----D-"},
			wantNotOut: []string{"LD     TXT"},
		},
		{
			name:     "list all",
			args:     []string{"ls", "--all", "floppy.img"},
			wantCode: exitOK,
			wantOut:  []string{"LD     TXT", "223"},
		},
		{
			name:     "info",
			args:     []string{"info", "floppy.img"},
			wantCode: exitOK,
			wantOut:  []string{"MSWIN4.1", "TESTDISK", "12345678", "FAT12", "lba 19, 14 sectors", "2880"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args, &stdout, &stderr, testFs(t))
			if code != tt.wantCode {
				t.Errorf("run() = %v, want %v (stderr: %s)", code, tt.wantCode, stderr.String())
			}
			for _, want := range tt.wantOut {
				if !strings.Contains(stdout.String(), want) {
					t.Errorf("stdout = %q, want it to contain %q", stdout.String(), want)
				}
			}
			for _, notWant := range tt.wantNotOut {
				if strings.Contains(stdout.String(), notWant) {
					t.Errorf("stdout = %q, want it not to contain %q", stdout.String(), notWant)
				}
			}
			if tt.wantErr != "" && !strings.Contains(stderr.String(), tt.wantErr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr.String(), tt.wantErr)
			}
		})
	}
}

func Test_attributeString(t *testing.T) {
	tests := []struct {
		attr byte
		want string
	}{
		{attr: 0, want: "------"},
		{attr: fat12.AttrArchive | fat12.AttrReadOnly, want: "R----A"},
		{attr: 0x3F, want: "RHSVDA"},
	}
	for _, tt := range tests {
		if got := attributeString(tt.attr); got != tt.want {
			t.Errorf("attributeString(%#x) = %q, want %q", tt.attr, got, tt.want)
		}
	}
}
