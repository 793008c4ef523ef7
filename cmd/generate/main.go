package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aligator/fat12"
	"github.com/aligator/fat12/internal/testimage"
	"github.com/klauspost/compress/zstd"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
)

// main writes a synthetic 1.44MB floppy image to play with the fat12 command:
//  go run ./cmd/generate --out testdata/floppy.img
func main() {
	out := pflag.String("out", "testdata/floppy.img", "path of the generated image")
	compress := pflag.Bool("zstd", false, "compress the image with zstd and append .zst to the path")
	label := pflag.String("label", "TESTDISK", "volume label")
	pflag.Parse()

	if err := generate(afero.NewOsFs(), *out, *label, *compress); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func generate(fs afero.Fs, path, label string, compress bool) error {
	now := time.Now().UTC()

	labelName := fmt.Sprintf("%-11.11s", label)
	g := testimage.Floppy144()
	g.VolumeLabel = label

	image := testimage.Build(g,
		testimage.Entry{Name: labelName, Attributes: fat12.AttrVolumeID | fat12.AttrArchive, Modified: now},
		testimage.Entry{Name: "FILE    TXT", Attributes: fat12.AttrArchive, FirstCluster: 2, Size: 4096, Created: now, Modified: now, Accessed: now},
		testimage.Entry{Name: "README  MD ", Attributes: fat12.AttrArchive | fat12.AttrReadOnly, FirstCluster: 10, Size: 512, Created: now, Modified: now},
		testimage.Entry{Name: "\xE5LD     TXT", Attributes: fat12.AttrArchive, FirstCluster: 11, Size: 12, Modified: now},
		testimage.Entry{Name: "DOCS       ", Attributes: fat12.AttrDirectory, FirstCluster: 12, Created: now, Modified: now},
	)

	if compress {
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			return err
		}
		image = enc.EncodeAll(image, nil)
		enc.Close()
		path += ".zst"
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return afero.WriteFile(fs, path, image, 0644)
}
