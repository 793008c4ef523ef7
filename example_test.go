package fat12_test

import (
	"bytes"
	"fmt"
	"log"

	"github.com/aligator/fat12"
	"github.com/aligator/fat12/internal/testimage"
)

func Example() {
	image := testimage.Build(testimage.Floppy144(),
		testimage.Entry{Name: "FILE    TXT", Attributes: fat12.AttrArchive, FirstCluster: 2, Size: 4096},
	)

	s, err := fat12.Open(bytes.NewReader(image), fat12.Options{})
	if err != nil {
		log.Fatal(err)
	}
	defer s.Close()

	key, err := fat12.ShortName("file.txt")
	if err != nil {
		log.Fatal(err)
	}

	entry, err := s.Find(key)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s: %d bytes starting at cluster %d\n", entry.DisplayName(), entry.Size, entry.FirstCluster())
	// Output: FILE.TXT: 4096 bytes starting at cluster 2
}
